package httpx

import (
	"context"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
)

// Principal is the authenticated caller of a guarded request.
type Principal struct {
	Identity domainauth.Identity
	// Token is the stored backend credential for this browser session.
	Token string
}

type principalKey struct{}

type snapshotKey struct{}

// SetPrincipalInContext returns a child context carrying the guard-resolved principal.
func SetPrincipalInContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal placed by RequireRoles.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// setSnapshotInContext stores the non-authoritative identity snapshot used by
// public pages for navigation hints. It must never gate access.
func setSnapshotInContext(ctx context.Context, id domainauth.Identity) context.Context {
	return context.WithValue(ctx, snapshotKey{}, id)
}

// SnapshotFromContext returns the identity snapshot, if one was loaded.
func SnapshotFromContext(ctx context.Context) (domainauth.Identity, bool) {
	id, ok := ctx.Value(snapshotKey{}).(domainauth.Identity)
	return id, ok
}

// viewerFromContext prefers the authoritative principal and falls back to the snapshot.
func viewerFromContext(ctx context.Context) (domainauth.Identity, bool) {
	if p, ok := PrincipalFromContext(ctx); ok {
		return p.Identity, true
	}
	return SnapshotFromContext(ctx)
}
