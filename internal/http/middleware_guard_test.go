package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
	mockauth "github.com/jobconnect/jobconnect-web/internal/mocks/auth"
	"github.com/jobconnect/jobconnect-web/internal/service"
)

type guardFixture struct {
	identity *mockauth.StubIdentityAPI
	sessions *mockauth.MemorySessionStore
	resolver *service.SessionResolver
	calls    atomic.Int32
	seen     Principal
}

func newGuardFixture() *guardFixture {
	f := &guardFixture{
		identity: &mockauth.StubIdentityAPI{},
		sessions: mockauth.NewMemorySessionStore(),
	}
	f.resolver = service.NewSessionResolver(service.SessionResolverOptions{
		Identity: f.identity,
		Sessions: f.sessions,
	})
	return f
}

func (f *guardFixture) handler(roles ...domainauth.Role) http.Handler {
	guard := RequireRoles(GuardOptions{Resolver: f.resolver}, roles...)
	return guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.seen, _ = PrincipalFromContext(r.Context())
		_, _ = w.Write([]byte("page"))
	}))
}

func (f *guardFixture) store(t *testing.T, sid, token string, id domainauth.Identity) {
	t.Helper()
	require.NoError(t, f.sessions.Save(context.Background(), domainauth.Session{
		ID: sid, Token: token, Identity: id, ExpiresAt: time.Now().Add(time.Hour),
	}))
}

func guardRequest(h http.Handler, path, sid string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sid != "" {
		req.AddCookie(sessionCookie(sid))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireRoles_UnauthenticatedRedirectsToLogin(t *testing.T) {
	f := newGuardFixture()

	rec := guardRequest(f.handler(domainauth.RoleJobSeeker), "/jobseeker", "")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, f.calls.Load())
	assert.Equal(t, int32(1), f.identity.MeCalls.Load())
}

func TestRequireRoles_BackendRejectionGoesToLoginNotDefault(t *testing.T) {
	f := newGuardFixture()
	f.store(t, "s1", "stale", testSeeker)
	f.identity.MeFunc = func(context.Context, string) (domainauth.Identity, error) {
		return domainauth.Identity{}, apperrors.Unauthenticated("Invalid token")
	}

	rec := guardRequest(f.handler(domainauth.RoleJobSeeker), "/jobseeker", "s1")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, f.calls.Load())
}

func TestRequireRoles_WrongRoleRedirectsToDefault(t *testing.T) {
	f := newGuardFixture()
	f.store(t, "s1", "tok", testRecruiter)
	f.identity.MeFunc = func(context.Context, string) (domainauth.Identity, error) { return testRecruiter, nil }

	rec := guardRequest(f.handler(domainauth.RoleJobSeeker), "/jobseeker", "s1")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Zero(t, f.calls.Load())
}

func TestRequireRoles_PermittedRoleRendersWithPrincipal(t *testing.T) {
	f := newGuardFixture()
	f.store(t, "s1", "tok", testAdmin)
	f.identity.MeFunc = func(_ context.Context, token string) (domainauth.Identity, error) {
		assert.Equal(t, "tok", token)
		return testAdmin, nil
	}

	rec := guardRequest(f.handler(domainauth.RoleAdmin), "/admin", "s1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "page", rec.Body.String())
	assert.Equal(t, int32(1), f.calls.Load())
	assert.Equal(t, testAdmin, f.seen.Identity)
	assert.Equal(t, "tok", f.seen.Token)
}

func TestRequireRoles_EmptySetAdmitsAnyAuthenticatedRole(t *testing.T) {
	for _, id := range []domainauth.Identity{testSeeker, testRecruiter, testAdmin} {
		t.Run(string(id.Role), func(t *testing.T) {
			f := newGuardFixture()
			f.store(t, "s1", "tok", id)
			f.identity.MeFunc = func(context.Context, string) (domainauth.Identity, error) { return id, nil }

			rec := guardRequest(f.handler(), "/anywhere", "s1")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, int32(1), f.calls.Load())
		})
	}
}

func TestRequireRoles_UnknownRoleNeverRenders(t *testing.T) {
	f := newGuardFixture()
	odd := domainauth.Identity{UserID: "u1", Role: domainauth.Role("superuser")}
	f.store(t, "s1", "tok", testSeeker)
	f.identity.MeFunc = func(context.Context, string) (domainauth.Identity, error) { return odd, nil }

	rec := guardRequest(f.handler(), "/anywhere", "s1")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, f.calls.Load())
}

func TestRequireRoles_HandoffSkipsBackend(t *testing.T) {
	f := newGuardFixture()
	f.store(t, "s1", "tok", testSeeker)
	require.NoError(t, f.sessions.PutHandoff(context.Background(), "s1", domainauth.Handoff{
		Identity: testSeeker, Target: "/jobseeker", ExpiresAt: time.Now().Add(time.Minute),
	}))

	rec := guardRequest(f.handler(domainauth.RoleJobSeeker), "/jobseeker", "s1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), f.calls.Load())
	assert.Zero(t, f.identity.MeCalls.Load())
	assert.Equal(t, testSeeker, f.seen.Identity)

	// The handoff was consumed; the next request asks the backend.
	f.identity.MeFunc = func(context.Context, string) (domainauth.Identity, error) { return testSeeker, nil }
	rec = guardRequest(f.handler(domainauth.RoleJobSeeker), "/jobseeker", "s1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), f.identity.MeCalls.Load())
}

func TestRequireRoles_HandoffForOtherPathIsIgnored(t *testing.T) {
	f := newGuardFixture()
	f.store(t, "s1", "tok", testSeeker)
	require.NoError(t, f.sessions.PutHandoff(context.Background(), "s1", domainauth.Handoff{
		Identity: testSeeker, Target: "/jobseeker", ExpiresAt: time.Now().Add(time.Minute),
	}))
	f.identity.MeFunc = func(context.Context, string) (domainauth.Identity, error) {
		return domainauth.Identity{}, apperrors.Unauthenticated("expired")
	}

	rec := guardRequest(f.handler(domainauth.RoleJobSeeker), "/jobseeker/profile", "s1")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, int32(1), f.identity.MeCalls.Load())
}

func TestRequireRoles_CanceledRequestWritesNothing(t *testing.T) {
	f := newGuardFixture()
	f.store(t, "s1", "tok", testSeeker)
	release := make(chan struct{})
	defer close(release)
	f.identity.MeFunc = func(context.Context, string) (domainauth.Identity, error) {
		<-release
		return testSeeker, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/jobseeker", nil).WithContext(ctx)
	req.AddCookie(sessionCookie("s1"))
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.handler(domainauth.RoleJobSeeker).ServeHTTP(rec, req)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("guard did not return after cancellation")
	}
	assert.Zero(t, f.calls.Load())
	assert.False(t, rec.Flushed)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestIdentitySnapshot_PublicPagesSeeStoredIdentity(t *testing.T) {
	f := newGuardFixture()
	f.store(t, "s1", "tok", testRecruiter)

	var got domainauth.Identity
	var ok bool
	h := IdentitySnapshot(f.resolver, SessionCookies{})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, ok = SnapshotFromContext(r.Context())
	}))

	guardRequest(h, "/", "s1")

	require.True(t, ok)
	assert.Equal(t, testRecruiter, got)
	assert.Zero(t, f.identity.MeCalls.Load())
}
