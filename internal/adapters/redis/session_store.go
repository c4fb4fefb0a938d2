package redis

// Package redis provides Redis-based adapters for jobconnect-web.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
)

const defaultPrefix = "jobconnect:session:"

// ErrNotFound is returned when a session or its credential is missing.
var ErrNotFound = apperrors.NotFound("session not found")

// SessionStore keeps each browser session under three keys sharing a hash tag
// so multi-key commands stay on one cluster slot:
//
//	<prefix>{<id>}:token    bearer credential
//	<prefix>{<id>}:user     identity snapshot (JSON)
//	<prefix>{<id>}:handoff  single-use navigation handoff (JSON)
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

// NewSessionStore creates a Redis session store using the default key prefix.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return NewSessionStoreWithPrefix(client, defaultPrefix)
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &SessionStore{client: client, prefix: prefix}
}

func (s *SessionStore) key(id, slot string) string {
	return s.prefix + "{" + id + "}:" + slot
}

type snapshot struct {
	Identity  domainauth.Identity `json:"identity"`
	ExpiresAt time.Time           `json:"expires_at"`
}

// Save writes the credential and identity snapshot atomically with a TTL
// derived from ExpiresAt.
func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Token == "" {
		return errors.New("session token cannot be empty")
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session is expired")
	}

	data, err := json.Marshal(snapshot{Identity: sess.Identity, ExpiresAt: sess.ExpiresAt})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, s.key(sess.ID, "token"), sess.Token, ttl)
		p.Set(ctx, s.key(sess.ID, "user"), data, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

// Get returns the stored session. A half-written session (one key missing)
// is treated as absent and cleaned up.
func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	vals, err := s.client.MGet(ctx, s.key(id, "token"), s.key(id, "user")).Result()
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("redis get session: %w", err)
	}

	token, tokenOK := vals[0].(string)
	data, userOK := vals[1].(string)
	if !tokenOK && !userOK {
		return domainauth.Session{}, ErrNotFound
	}
	if !tokenOK || !userOK {
		if delErr := s.Delete(ctx, id); delErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup partial session: %w", delErr)
		}
		return domainauth.Session{}, ErrNotFound
	}

	var snap snapshot
	if unmarshalErr := json.Unmarshal([]byte(data), &snap); unmarshalErr != nil {
		return domainauth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	if time.Now().After(snap.ExpiresAt) {
		if delErr := s.Delete(ctx, id); delErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", delErr)
		}
		return domainauth.Session{}, ErrNotFound
	}

	return domainauth.Session{
		ID:        id,
		Token:     token,
		Identity:  snap.Identity,
		ExpiresAt: snap.ExpiresAt,
	}, nil
}

// Delete removes the credential, the identity snapshot and any pending handoff in one command.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.client.Del(ctx, s.key(id, "token"), s.key(id, "user"), s.key(id, "handoff")).Err()
}

// PutHandoff stores h until h.ExpiresAt, replacing any earlier handoff.
func (s *SessionStore) PutHandoff(ctx context.Context, id string, h domainauth.Handoff) error {
	if id == "" {
		return errors.New("session ID cannot be empty")
	}
	ttl := time.Until(h.ExpiresAt)
	if ttl <= 0 {
		return errors.New("handoff is expired")
	}

	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("marshal handoff: %w", err)
	}
	return s.client.Set(ctx, s.key(id, "handoff"), data, ttl).Err()
}

// TakeHandoff atomically reads and deletes the pending handoff.
func (s *SessionStore) TakeHandoff(ctx context.Context, id string) (domainauth.Handoff, bool, error) {
	if id == "" {
		return domainauth.Handoff{}, false, nil
	}

	data, err := s.client.GetDel(ctx, s.key(id, "handoff")).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Handoff{}, false, nil
		}
		return domainauth.Handoff{}, false, fmt.Errorf("redis take handoff: %w", err)
	}

	var h domainauth.Handoff
	if unmarshalErr := json.Unmarshal([]byte(data), &h); unmarshalErr != nil {
		return domainauth.Handoff{}, false, fmt.Errorf("unmarshal handoff: %w", unmarshalErr)
	}
	if time.Now().After(h.ExpiresAt) {
		return domainauth.Handoff{}, false, nil
	}
	return h, true, nil
}

// Ping checks that Redis is reachable.
func (s *SessionStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
