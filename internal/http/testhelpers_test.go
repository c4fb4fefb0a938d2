package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
	"github.com/jobconnect/jobconnect-web/internal/mocks"
	mockauth "github.com/jobconnect/jobconnect-web/internal/mocks/auth"
	"github.com/jobconnect/jobconnect-web/internal/service"
)

const (
	testFlashSecret = "0123456789abcdef0123456789abcdef"
	testCSRFToken   = "test-csrf-token"
)

var (
	testSeeker    = domainauth.Identity{UserID: "u-seeker", Email: "sam@example.com", Name: "Sam Seeker", Role: domainauth.RoleJobSeeker}
	testRecruiter = domainauth.Identity{UserID: "u-recruiter", Email: "rita@example.com", Name: "Rita Recruiter", Role: domainauth.RoleRecruiter}
	testAdmin     = domainauth.Identity{UserID: "u-admin", Email: "ada@example.com", Name: "Ada Admin", Role: domainauth.RoleAdmin}
)

// RequireTemplateRenderer creates a TemplateRenderer for tests, skipping the
// test if templates are not available.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

// testEnv wires the full router against in-memory doubles.
type testEnv struct {
	Identity *mockauth.StubIdentityAPI
	Sessions *mockauth.MemorySessionStore
	API      *mocks.MockMarketplaceAPI
	Handler  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); os.IsNotExist(err) {
		t.Skip("Templates not available, skipping integration test")
	}

	ctrl := gomock.NewController(t)
	env := &testEnv{
		Identity: &mockauth.StubIdentityAPI{},
		Sessions: mockauth.NewMemorySessionStore(),
		API:      mocks.NewMockMarketplaceAPI(ctrl),
	}
	resolver := service.NewSessionResolver(service.SessionResolverOptions{
		Identity: env.Identity,
		Sessions: env.Sessions,
	})
	auth := service.NewAuthService(service.AuthServiceOptions{
		Identity: env.Identity,
		Sessions: env.Sessions,
	})

	h, err := NewRouter(RouterServices{
		Auth:       auth,
		Resolver:   resolver,
		API:        env.API,
		Dashboards: service.NewDashboardService(service.DashboardServiceOptions{API: env.API}),
		Flash:      NewFlashStore(FlashOptions{Secret: []byte(testFlashSecret)}),
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	require.NoError(t, err)
	env.Handler = h
	return env
}

// signIn stores a session for id and makes the backend recognise its token.
func (e *testEnv) signIn(t *testing.T, id domainauth.Identity) string {
	t.Helper()
	sid := "sid-" + id.UserID
	token := "token-" + id.UserID
	require.NoError(t, e.Sessions.Save(context.Background(), domainauth.Session{
		ID:        sid,
		Token:     token,
		Identity:  id,
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	e.Identity.MeFunc = func(_ context.Context, got string) (domainauth.Identity, error) {
		if got == token {
			return id, nil
		}
		return domainauth.Identity{}, apperrors.Unauthenticated("Not authenticated")
	}
	return sid
}

// formRequest builds a request carrying the CSRF cookie. Non-nil forms are
// encoded as the body together with the matching token.
func formRequest(method, target string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		form.Set(DefaultCSRFCookieName, testCSRFToken)
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	return req
}

// do sends a request through the router.
func (e *testEnv) do(method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := formRequest(method, target, form)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return e.serve(req)
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.Handler.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(sid string) *http.Cookie {
	return &http.Cookie{Name: DefaultSessionCookieName, Value: sid}
}

// responseCookie returns the named Set-Cookie from rec, or nil.
func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ContainsAll checks if a string contains all the given substrings.
func ContainsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
