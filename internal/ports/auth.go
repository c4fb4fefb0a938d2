package ports

// Package ports defines interfaces (hexagonal ports) for session and backend behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
)

// SessionStore persists the per-browser credential and identity snapshot.
// Save and Delete always act on both together.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	// Get returns an errors.ErrCodeNotFound AppError when no session exists.
	Get(ctx context.Context, id string) (domainauth.Session, error)
	// Delete clears the credential, the identity snapshot and any pending handoff.
	Delete(ctx context.Context, id string) error

	// PutHandoff stores a single-use navigation handoff for the session.
	PutHandoff(ctx context.Context, id string, h domainauth.Handoff) error
	// TakeHandoff returns and removes the pending handoff; ok is false when none exists.
	TakeHandoff(ctx context.Context, id string) (h domainauth.Handoff, ok bool, err error)
}

// AuthResult is a credential issued by the backend together with its owner.
type AuthResult struct {
	Token    string
	Identity domainauth.Identity
}

// RegisterInput carries the account registration form.
type RegisterInput struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Name     string          `json:"name"`
	Role     domainauth.Role `json:"role"`
}

// IdentityAPI is the backend's authentication surface.
type IdentityAPI interface {
	// Me returns the identity owning token. An empty token is sent without credentials.
	Me(ctx context.Context, token string) (domainauth.Identity, error)
	// ExchangeSession trades a one-time session id from the login redirect for a credential.
	ExchangeSession(ctx context.Context, sessionID string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Logout(ctx context.Context, token string) error
}
