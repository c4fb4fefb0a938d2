// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
	"github.com/jobconnect/jobconnect-web/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityAPI  = (*StubIdentityAPI)(nil)
	_ ports.SessionStore = (*MemorySessionStore)(nil)
)

// ErrNotFound is returned by MemorySessionStore when a session is absent.
var ErrNotFound = apperrors.NotFound("session not found")

// StubIdentityAPI is a func-field double for the backend identity endpoints.
// Unset funcs fail with an unauthenticated error. Call counters are safe
// for concurrent use.
type StubIdentityAPI struct {
	MeFunc              func(ctx context.Context, token string) (domainauth.Identity, error)
	ExchangeSessionFunc func(ctx context.Context, sessionID string) (ports.AuthResult, error)
	LoginFunc           func(ctx context.Context, email, password string) (ports.AuthResult, error)
	RegisterFunc        func(ctx context.Context, in ports.RegisterInput) (ports.AuthResult, error)
	LogoutFunc          func(ctx context.Context, token string) error

	MeCalls       atomic.Int32
	ExchangeCalls atomic.Int32
	LogoutCalls   atomic.Int32
}

var errStubUnset = apperrors.Unauthenticated("Not authenticated")

// StaticIdentity returns a StubIdentityAPI whose Me reports id for token.
func StaticIdentity(token string, id domainauth.Identity) *StubIdentityAPI {
	return &StubIdentityAPI{
		MeFunc: func(_ context.Context, got string) (domainauth.Identity, error) {
			if got != token || token == "" {
				return domainauth.Identity{}, errStubUnset
			}
			return id, nil
		},
	}
}

func (s *StubIdentityAPI) Me(ctx context.Context, token string) (domainauth.Identity, error) {
	s.MeCalls.Add(1)
	if s.MeFunc != nil {
		return s.MeFunc(ctx, token)
	}
	return domainauth.Identity{}, errStubUnset
}

func (s *StubIdentityAPI) ExchangeSession(ctx context.Context, sessionID string) (ports.AuthResult, error) {
	s.ExchangeCalls.Add(1)
	if s.ExchangeSessionFunc != nil {
		return s.ExchangeSessionFunc(ctx, sessionID)
	}
	return ports.AuthResult{}, errStubUnset
}

func (s *StubIdentityAPI) Login(ctx context.Context, email, password string) (ports.AuthResult, error) {
	if s.LoginFunc != nil {
		return s.LoginFunc(ctx, email, password)
	}
	return ports.AuthResult{}, errStubUnset
}

func (s *StubIdentityAPI) Register(ctx context.Context, in ports.RegisterInput) (ports.AuthResult, error) {
	if s.RegisterFunc != nil {
		return s.RegisterFunc(ctx, in)
	}
	return ports.AuthResult{}, errStubUnset
}

func (s *StubIdentityAPI) Logout(ctx context.Context, token string) error {
	s.LogoutCalls.Add(1)
	if s.LogoutFunc != nil {
		return s.LogoutFunc(ctx, token)
	}
	return nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
	handoffs map[string]domainauth.Handoff
	writes   int
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
		handoffs: make(map[string]domainauth.Handoff),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Token == "" {
		return errors.New("session token cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	m.writes++
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok || id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	if !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt) {
		delete(m.sessions, id)
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		m.writes++
	}
	delete(m.sessions, id)
	delete(m.handoffs, id)
	return nil
}

func (m *MemorySessionStore) PutHandoff(_ context.Context, id string, h domainauth.Handoff) error {
	if id == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handoffs[id] = h
	m.writes++
	return nil
}

func (m *MemorySessionStore) TakeHandoff(_ context.Context, id string) (domainauth.Handoff, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.handoffs[id]
	if !ok {
		return domainauth.Handoff{}, false, nil
	}
	delete(m.handoffs, id)
	if !h.ExpiresAt.IsZero() && time.Now().After(h.ExpiresAt) {
		return domainauth.Handoff{}, false, nil
	}
	return h, true, nil
}

// Writes counts successful Save, PutHandoff and effective Delete calls.
func (m *MemorySessionStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Len reports how many sessions are stored.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// PeekHandoff returns the pending handoff without consuming it.
func (m *MemorySessionStore) PeekHandoff(id string) (domainauth.Handoff, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.handoffs[id]
	return h, ok
}
