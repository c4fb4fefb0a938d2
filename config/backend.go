package config

import (
	"strings"
	"time"
)

// BackendConfig configures the REST API client.
type BackendConfig struct {
	// URL is the base URL of the REST API, including the /api prefix.
	URL string `env:"URL" envDefault:"http://localhost:8001/api"`

	// Timeout bounds each backend request. Zero means no client-side timeout;
	// the inbound request context still cancels abandoned calls.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`

	// UserAgent is sent with every backend request.
	UserAgent string `env:"USER_AGENT" envDefault:"jobconnect-web"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.URL = strings.TrimRight(strings.TrimSpace(b.URL), "/")
	if b.Timeout < 0 {
		b.Timeout = 0
	}
	if strings.TrimSpace(b.UserAgent) == "" {
		b.UserAgent = "jobconnect-web"
	}
}
