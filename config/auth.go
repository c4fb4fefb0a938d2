package config

import (
	"strings"
	"time"
)

const (
	defaultSessionTTL = 7 * 24 * time.Hour
	defaultHandoffTTL = 2 * time.Minute
	minFlashSecretLen = 32
)

// AuthConfig groups session and login configuration.
type AuthConfig struct {
	// SocialLoginURL is the entry point of the third-party login flow. It is
	// rendered verbatim on the login page; when empty the social login button
	// is hidden. The redirect target registered with the provider must be a
	// page of this application, which picks up the #session_id fragment.
	SocialLoginURL string `env:"AUTH_SOCIAL_LOGIN_URL"`

	// SessionTTL bounds how long a stored credential and identity snapshot live.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"168h"`

	// HandoffTTL bounds how long a post-login navigation handoff is honoured.
	HandoffTTL time.Duration `env:"AUTH_HANDOFF_TTL" envDefault:"2m"`

	// CookieName is the name of the opaque browser session cookie.
	CookieName string `env:"AUTH_COOKIE_NAME" envDefault:"jc_session"`

	// FlashSecret signs the flash-message cookie. Must be at least 32 bytes.
	FlashSecret string `env:"AUTH_FLASH_SECRET,required"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	a.SocialLoginURL = strings.TrimSpace(a.SocialLoginURL)
	if a.SessionTTL <= 0 {
		a.SessionTTL = defaultSessionTTL
	}
	if a.HandoffTTL <= 0 {
		a.HandoffTTL = defaultHandoffTTL
	}
	if a.HandoffTTL > a.SessionTTL {
		a.HandoffTTL = a.SessionTTL
	}
	if strings.TrimSpace(a.CookieName) == "" {
		a.CookieName = "jc_session"
	}
}

// FlashSecretValid reports whether the flash secret is long enough to sign cookies.
func (a *AuthConfig) FlashSecretValid() bool {
	return len(a.FlashSecret) >= minFlashSecretLen
}
