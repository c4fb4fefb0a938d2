package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
	"github.com/jobconnect/jobconnect-web/internal/observability/metrics"
	"github.com/jobconnect/jobconnect-web/internal/observability/statsd"
	"github.com/jobconnect/jobconnect-web/internal/ports"
)

const (
	defaultSessionTTL = 7 * 24 * time.Hour
	defaultHandoffTTL = 2 * time.Minute
)

// Auth flow names used for metrics.
const (
	FlowLogin    = "login"
	FlowRegister = "register"
	FlowCallback = "callback"
	FlowLogout   = "logout"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Identity   ports.IdentityAPI
	Sessions   ports.SessionStore
	SessionTTL time.Duration
	HandoffTTL time.Duration
	// CredentialExpiry optionally reports when a backend credential expires.
	CredentialExpiry func(token string) (time.Time, bool)
	Metrics          statsd.Sink
	Logger           *slog.Logger
	Now              func() time.Time
}

// AuthService orchestrates sign-in, the third-party login callback and logout.
type AuthService struct {
	identity   ports.IdentityAPI
	sessions   ports.SessionStore
	sessionTTL time.Duration
	handoffTTL time.Duration
	expiry     func(string) (time.Time, bool)
	metrics    statsd.Sink
	logger     *slog.Logger
	now        func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	s := &AuthService{
		identity:   opts.Identity,
		sessions:   opts.Sessions,
		sessionTTL: opts.SessionTTL,
		handoffTTL: opts.HandoffTTL,
		expiry:     opts.CredentialExpiry,
		metrics:    opts.Metrics,
		logger:     opts.Logger,
		now:        opts.Now,
	}
	if s.sessionTTL <= 0 {
		s.sessionTTL = defaultSessionTTL
	}
	if s.handoffTTL <= 0 {
		s.handoffTTL = defaultHandoffTTL
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// SignInResult is a freshly persisted session and where to send the browser.
type SignInResult struct {
	Session  domainauth.Session
	Redirect string
}

// LoginInput groups the password login form.
type LoginInput struct {
	Email             string
	Password          string
	PreviousSessionID string
}

// Login authenticates with email and password.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (res *SignInResult, err error) {
	defer func() { metrics.EmitAuthFlow(s.metrics, FlowLogin, err) }()

	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, apperrors.Validation("Email and password are required")
	}

	auth, err := s.identity.Login(ctx, email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return s.signIn(ctx, auth, in.PreviousSessionID)
}

// RegisterInput groups the registration form.
type RegisterInput struct {
	ports.RegisterInput
	PreviousSessionID string
}

// Register creates an account and signs it in. Only job seekers and
// recruiters may self-register.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (res *SignInResult, err error) {
	defer func() { metrics.EmitAuthFlow(s.metrics, FlowRegister, err) }()

	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	switch {
	case in.Email == "" || in.Password == "" || in.Name == "":
		return nil, apperrors.Validation("Name, email and password are required")
	case in.Role != domainauth.RoleJobSeeker && in.Role != domainauth.RoleRecruiter:
		return nil, apperrors.ValidationField("role", "Choose job seeker or recruiter")
	}

	auth, err := s.identity.Register(ctx, in.RegisterInput)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return s.signIn(ctx, auth, in.PreviousSessionID)
}

// CallbackInput carries the URL fragment captured by the browser after the
// third-party login redirect.
type CallbackInput struct {
	Fragment          string
	PreviousSessionID string
}

// SessionIDFromFragment extracts session_id from a URL fragment such as
// "#session_id=abc&state=x". It reports false when the key is absent or empty.
func SessionIDFromFragment(fragment string) (string, bool) {
	values, _ := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(fragment), "#"))
	id := strings.TrimSpace(values.Get("session_id"))
	return id, id != ""
}

// CompleteCallback exchanges the one-time session id for a credential,
// persists it and prepares the post-login handoff. Without a session_id the
// backend is not contacted.
func (s *AuthService) CompleteCallback(ctx context.Context, in CallbackInput) (res *SignInResult, err error) {
	defer func() { metrics.EmitAuthFlow(s.metrics, FlowCallback, err) }()

	sessionID, ok := SessionIDFromFragment(in.Fragment)
	if !ok {
		return nil, apperrors.MalformedCallback("missing session_id")
	}

	auth, err := s.identity.ExchangeSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("exchange session: %w", err)
	}
	return s.signIn(ctx, auth, in.PreviousSessionID)
}

// signIn rotates the browser session id, persists the credential with its
// identity and writes a handoff for the role's landing page.
func (s *AuthService) signIn(ctx context.Context, auth ports.AuthResult, previousID string) (*SignInResult, error) {
	if previousID != "" {
		if err := s.sessions.Delete(ctx, previousID); err != nil {
			s.logger.WarnContext(ctx, "failed to discard previous session", "error", err)
		}
	}

	now := s.now()
	expiresAt := now.Add(s.sessionTTL)
	if s.expiry != nil {
		if exp, ok := s.expiry(auth.Token); ok && exp.Before(expiresAt) {
			expiresAt = exp
		}
	}
	if !expiresAt.After(now) {
		return nil, apperrors.Unauthenticated("Session expired")
	}

	sess := domainauth.Session{
		ID:        NewSessionID(),
		Token:     auth.Token,
		Identity:  auth.Identity,
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	redirect := auth.Identity.Role.LandingPath()
	if auth.Identity.Role.Valid() {
		handoffExpiry := now.Add(s.handoffTTL)
		if handoffExpiry.After(expiresAt) {
			handoffExpiry = expiresAt
		}
		h := domainauth.Handoff{Identity: auth.Identity, Target: redirect, ExpiresAt: handoffExpiry}
		if err := s.sessions.PutHandoff(ctx, sess.ID, h); err != nil {
			// The next guarded request falls back to a backend lookup.
			s.logger.WarnContext(ctx, "failed to store navigation handoff", "error", err)
		}
	}

	s.logger.InfoContext(ctx, "session established",
		"user_id", auth.Identity.UserID, "role", string(auth.Identity.Role))
	return &SignInResult{Session: sess, Redirect: redirect}, nil
}

// Logout notifies the backend and clears the stored credential and identity.
// The local state is cleared whatever the backend answers.
func (s *AuthService) Logout(ctx context.Context, sessionID string) (err error) {
	defer func() { metrics.EmitAuthFlow(s.metrics, FlowLogout, err) }()

	if sessionID == "" {
		return nil
	}

	sess, getErr := s.sessions.Get(ctx, sessionID)
	switch {
	case getErr == nil && sess.Token != "":
		if logoutErr := s.identity.Logout(ctx, sess.Token); logoutErr != nil {
			s.logger.InfoContext(ctx, "backend logout failed; clearing local session anyway", "error", logoutErr)
		}
	case getErr != nil && !apperrors.IsNotFound(getErr):
		s.logger.WarnContext(ctx, "session lookup failed during logout", "error", getErr)
	}

	if delErr := s.sessions.Delete(ctx, sessionID); delErr != nil {
		return fmt.Errorf("clear session: %w", delErr)
	}
	return nil
}

// NewSessionID returns a fresh opaque browser session identifier.
func NewSessionID() string {
	return uuid.NewString()
}
