package httpx

import (
	"net/http"
	"strings"
	"time"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
)

// DefaultSessionCookieName names the browser session cookie.
const DefaultSessionCookieName = "jc_session"

// SessionCookies reads and writes the opaque browser session cookie.
type SessionCookies struct {
	Name   string
	Domain string
}

func (c SessionCookies) name() string {
	if c.Name == "" {
		return DefaultSessionCookieName
	}
	return c.Name
}

// Read returns the browser session id, or "" when absent.
func (c SessionCookies) Read(r *http.Request) string {
	cookie, err := r.Cookie(c.name())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

// Set writes the session cookie for s, expiring with the session.
func (c SessionCookies) Set(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    s.ID,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// Clear expires the session cookie. Attributes mirror Set so every browser
// drops the cookie.
func (c SessionCookies) Clear(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// isSecureRequest reports whether the request arrived over HTTPS, directly
// or through a proxy.
func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || isForwardedHTTPS(r)
}
