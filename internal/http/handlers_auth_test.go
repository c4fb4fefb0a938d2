package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
	"github.com/jobconnect/jobconnect-web/internal/ports"
)

func TestCallback_PersistsSessionAndLandsWithHandoff(t *testing.T) {
	env := newTestEnv(t)
	env.Identity.ExchangeSessionFunc = func(_ context.Context, sessionID string) (ports.AuthResult, error) {
		assert.Equal(t, "abc123", sessionID)
		return ports.AuthResult{Token: "session-token", Identity: testSeeker}, nil
	}

	rec := env.do(http.MethodPost, "/auth/callback", url.Values{"fragment": {"session_id=abc123&state=x"}})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/jobseeker", rec.Header().Get("Location"))
	cookie := responseCookie(rec, DefaultSessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int32(1), env.Identity.ExchangeCalls.Load())

	sess, err := env.Sessions.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "session-token", sess.Token)
	assert.Equal(t, testSeeker, sess.Identity)
	h, ok := env.Sessions.PeekHandoff(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, "/jobseeker", h.Target)

	// The landing page renders from the handoff without asking the backend.
	env.API.EXPECT().Recommendations(gomock.Any(), "session-token").Return(nil, nil)
	env.API.EXPECT().MyApplications(gomock.Any(), "session-token").Return(nil, nil)
	page := env.do(http.MethodGet, "/jobseeker", nil, sessionCookie(cookie.Value))

	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Welcome back, Sam Seeker")
	assert.Zero(t, env.Identity.MeCalls.Load())
}

func TestCallback_MissingSessionIDNeverCallsExchange(t *testing.T) {
	env := newTestEnv(t)

	for _, fragment := range []string{"", "state=x", "session_id="} {
		rec := env.do(http.MethodPost, "/auth/callback", url.Values{"fragment": {fragment}})

		assert.Equal(t, http.StatusSeeOther, rec.Code, fragment)
		assert.Equal(t, "/login", rec.Header().Get("Location"), fragment)
		assert.Nil(t, responseCookie(rec, DefaultSessionCookieName), fragment)
	}
	assert.Zero(t, env.Identity.ExchangeCalls.Load())
	assert.Zero(t, env.Sessions.Len())
}

func TestCallback_FailureFlashesOnLoginPage(t *testing.T) {
	env := newTestEnv(t)
	env.Identity.ExchangeSessionFunc = func(context.Context, string) (ports.AuthResult, error) {
		return ports.AuthResult{}, apperrors.Unauthenticated("Invalid session")
	}

	rec := env.do(http.MethodPost, "/auth/callback", url.Values{"fragment": {"session_id=bad"}})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	flash := responseCookie(rec, FlashCookieName)
	require.NotNil(t, flash)

	login := env.do(http.MethodGet, "/login", nil, flash)
	assert.Equal(t, http.StatusOK, login.Code)
	assert.Contains(t, login.Body.String(), "Authentication failed")
}

func TestCallback_UnknownRoleLandsOnDefault(t *testing.T) {
	env := newTestEnv(t)
	env.Identity.ExchangeSessionFunc = func(context.Context, string) (ports.AuthResult, error) {
		return ports.AuthResult{Token: "tok", Identity: domainauth.Identity{UserID: "u1", Role: "guest"}}, nil
	}

	rec := env.do(http.MethodPost, "/auth/callback", url.Values{"fragment": {"session_id=abc"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestCallbackPage_RendersProgress(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/auth/callback", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Completing authentication…")
}

func TestPages_FragmentDetectorIsFirstInHead(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/", "/login", "/auth/callback", "/no-such-page"} {
		body := env.do(http.MethodGet, path, nil).Body.String()
		head := strings.Index(body, "<head>")
		require.GreaterOrEqual(t, head, 0, path)
		rest := strings.TrimSpace(body[head+len("<head>"):])
		assert.True(t, strings.HasPrefix(rest, "<script>"), path)
		assert.Less(t, strings.Index(body, "session_id="), strings.Index(body, "<meta charset"), path)
	}
}

func TestLogin_SuccessSetsCookieAndRedirects(t *testing.T) {
	env := newTestEnv(t)
	env.Identity.LoginFunc = func(_ context.Context, email, password string) (ports.AuthResult, error) {
		assert.Equal(t, "rita@example.com", email)
		assert.Equal(t, "hunter22", password)
		return ports.AuthResult{Token: "tok", Identity: testRecruiter}, nil
	}

	rec := env.do(http.MethodPost, "/login", url.Values{"email": {" rita@example.com "}, "password": {"hunter22"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/recruiter", rec.Header().Get("Location"))
	assert.NotNil(t, responseCookie(rec, DefaultSessionCookieName))
	assert.NotNil(t, responseCookie(rec, FlashCookieName))
}

func TestLogin_RejectedRerendersWithMessage(t *testing.T) {
	env := newTestEnv(t)
	env.Identity.LoginFunc = func(context.Context, string, string) (ports.AuthResult, error) {
		return ports.AuthResult{}, apperrors.Unauthenticated("Invalid credentials")
	}

	rec := env.do(http.MethodPost, "/login", url.Values{"email": {"sam@example.com"}, "password": {"nope"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	assert.Contains(t, rec.Body.String(), `value="sam@example.com"`)
	assert.Nil(t, responseCookie(rec, DefaultSessionCookieName))
}

func TestLogin_SocialLinkHiddenWhenUnconfigured(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/login", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Continue with Google")
}

func TestRegister_ValidationErrorShownOnField(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/register", url.Values{
		"name": {"Sam"}, "email": {"sam@example.com"}, "password": {"secret1"}, "role": {"admin"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Choose job seeker or recruiter")
	assert.Zero(t, env.Sessions.Len())
}

func TestLogout_ClearsSessionEvenWhenBackendFails(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testSeeker)
	env.Identity.LogoutFunc = func(context.Context, string) error {
		return apperrors.Transport(assert.AnError)
	}

	rec := env.do(http.MethodPost, "/auth/logout", url.Values{}, sessionCookie(sid))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	cleared := responseCookie(rec, DefaultSessionCookieName)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
	assert.Equal(t, int32(1), env.Identity.LogoutCalls.Load())
	assert.Zero(t, env.Sessions.Len())

	// The old cookie no longer opens guarded pages.
	env.Identity.MeFunc = nil
	page := env.do(http.MethodGet, "/jobseeker", nil, sessionCookie(sid))
	assert.Equal(t, http.StatusSeeOther, page.Code)
	assert.Equal(t, "/login", page.Header().Get("Location"))
}

func TestLogout_ScriptedCallerGetsJSON(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testRecruiter)

	req := formRequest(http.MethodPost, "/auth/logout", url.Values{})
	req.Header.Set("Accept", "application/json")
	req.AddCookie(sessionCookie(sid))
	rec := env.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "/login", body["redirect_to"])
	assert.Zero(t, env.Sessions.Len())
}

func TestStatus_ReportsResolvedIdentity(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/auth/status", nil)
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())

	sid := env.signIn(t, testAdmin)
	rec = env.do(http.MethodGet, "/auth/status", nil, sessionCookie(sid))

	var body struct {
		Authenticated bool                `json:"authenticated"`
		User          domainauth.Identity `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Authenticated)
	assert.Equal(t, testAdmin, body.User)
}

func TestPostWithoutCSRFTokenIsRejected(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(url.Values{"email": {"a@b.c"}, "password": {"x"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := env.serve(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
