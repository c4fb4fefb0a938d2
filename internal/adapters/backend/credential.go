package backend

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialExpiry reads the exp claim of a JWT credential. The signature is
// not checked: the backend stays authoritative and this only shortens how
// long the credential is cached. Opaque tokens and tokens without exp report false.
func CredentialExpiry(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
