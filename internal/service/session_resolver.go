package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
	obserrors "github.com/jobconnect/jobconnect-web/internal/observability/errors"
	"github.com/jobconnect/jobconnect-web/internal/ports"
)

// Resolution sources.
const (
	SourceHandoff = "handoff"
	SourceBackend = "backend"
)

// SessionResolverOptions groups dependencies for SessionResolver.
type SessionResolverOptions struct {
	Identity ports.IdentityAPI
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// SessionResolver decides whether a browser session is authenticated.
// It never writes to the session store apart from consuming handoffs.
type SessionResolver struct {
	identity ports.IdentityAPI
	sessions ports.SessionStore
	logger   *slog.Logger
	inflight singleflight.Group
}

// NewSessionResolver constructs a SessionResolver.
func NewSessionResolver(opts SessionResolverOptions) *SessionResolver {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionResolver{
		identity: opts.Identity,
		sessions: opts.Sessions,
		logger:   logger,
	}
}

// Resolution is the outcome of resolving one guarded request.
type Resolution struct {
	State domainauth.GuardState
	// Token is the stored bearer credential, empty when none is stored.
	Token    string
	Source   string
	Duration time.Duration
}

// ConsumeHandoff takes the pending handoff for sessionID and returns its
// identity when it targets path. A handoff for another path is discarded.
func (r *SessionResolver) ConsumeHandoff(ctx context.Context, sessionID, path string) *domainauth.Identity {
	if sessionID == "" {
		return nil
	}
	h, ok, err := r.sessions.TakeHandoff(ctx, sessionID)
	if err != nil {
		r.logger.WarnContext(ctx, "handoff lookup failed", "error", err)
		return nil
	}
	if !ok || !h.Matches(path) {
		return nil
	}
	id := h.Identity
	return &id
}

// Resolve determines the guard state for sessionID. With a handoff identity
// it resolves immediately without contacting the backend. Otherwise it makes
// exactly one "who am I" call with the stored credential; any failure of
// that call resolves to unauthenticated and is not retried.
//
// The only error returned is the context's, when the caller went away before
// resolution finished; the caller must then discard the request.
func (r *SessionResolver) Resolve(ctx context.Context, sessionID string, handoff *domainauth.Identity) (Resolution, error) {
	start := time.Now()
	token := r.storedToken(ctx, sessionID)

	if handoff != nil {
		return Resolution{
			State:    domainauth.Authenticated(*handoff),
			Token:    token,
			Source:   SourceHandoff,
			Duration: time.Since(start),
		}, nil
	}

	res := Resolution{Token: token, Source: SourceBackend}

	// Concurrent requests presenting the same credential share one call. The
	// shared call is detached from any single caller's cancellation.
	detached := context.WithoutCancel(ctx)
	ch := r.inflight.DoChan("me:"+token, func() (any, error) {
		return r.identity.Me(detached, token)
	})

	select {
	case <-ctx.Done():
		return Resolution{}, ctx.Err()
	case out := <-ch:
		res.Duration = time.Since(start)
		if out.Err != nil {
			r.logger.DebugContext(ctx, "session resolved unauthenticated",
				"error_class", obserrors.Classify(out.Err), "error", out.Err)
			res.State = domainauth.Unauthenticated()
			return res, nil
		}
		id := out.Val.(domainauth.Identity)
		if err := id.Validate(); err != nil {
			r.logger.DebugContext(ctx, "session resolved unauthenticated", "error", err, "role", string(id.Role))
			res.State = domainauth.Unauthenticated()
			return res, nil
		}
		res.State = domainauth.Authenticated(id)
		return res, nil
	}
}

func (r *SessionResolver) storedToken(ctx context.Context, sessionID string) string {
	if sessionID == "" {
		return ""
	}
	sess, err := r.sessions.Get(ctx, sessionID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			r.logger.WarnContext(ctx, "session lookup failed", "error", err)
		}
		return ""
	}
	return sess.Token
}

// Snapshot returns the stored identity snapshot for sessionID without
// contacting the backend. It is not authoritative and must never gate access.
func (r *SessionResolver) Snapshot(ctx context.Context, sessionID string) (domainauth.Identity, bool) {
	if sessionID == "" {
		return domainauth.Identity{}, false
	}
	sess, err := r.sessions.Get(ctx, sessionID)
	if err != nil {
		return domainauth.Identity{}, false
	}
	return sess.Identity, sess.Identity.Validate() == nil
}
