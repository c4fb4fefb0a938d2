package config

import (
	"os"
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	t.Setenv("AUTH_SOCIAL_LOGIN_URL", "https://login.example.com/?redirect=https%3A%2F%2Fjobs.example.com%2F")
	t.Setenv("AUTH_SESSION_TTL", "24h")
	t.Setenv("AUTH_HANDOFF_TTL", "30s")
	t.Setenv("AUTH_COOKIE_NAME", "sid")
	t.Setenv("AUTH_FLASH_SECRET", "0123456789abcdef0123456789abcdef")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	expected := AuthConfig{
		SocialLoginURL: "https://login.example.com/?redirect=https%3A%2F%2Fjobs.example.com%2F",
		SessionTTL:     24 * time.Hour,
		HandoffTTL:     30 * time.Second,
		CookieName:     "sid",
		FlashSecret:    "0123456789abcdef0123456789abcdef",
	}

	if !reflect.DeepEqual(cfg.Auth, expected) {
		t.Fatalf("unexpected auth configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.Auth)
	}
	if !cfg.Auth.FlashSecretValid() {
		t.Fatalf("expected 32-byte flash secret to be valid")
	}
}

func TestAppConfig_ParseDefaults(t *testing.T) {
	t.Setenv("AUTH_FLASH_SECRET", "short")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Backend.URL != "http://localhost:8001/api" {
		t.Errorf("unexpected backend url %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 0 {
		t.Errorf("expected no backend timeout by default, got %s", cfg.Backend.Timeout)
	}
	if cfg.Auth.SocialLoginURL != "" {
		t.Errorf("expected no social login url by default, got %q", cfg.Auth.SocialLoginURL)
	}
	if cfg.Auth.SessionTTL != 7*24*time.Hour {
		t.Errorf("unexpected session ttl %s", cfg.Auth.SessionTTL)
	}
	if cfg.Redis.KeyPrefix != "jobconnect:session:" {
		t.Errorf("unexpected redis key prefix %q", cfg.Redis.KeyPrefix)
	}
	if cfg.Auth.FlashSecretValid() {
		t.Errorf("expected short flash secret to be rejected")
	}
}

func TestAppConfig_MissingFlashSecret(t *testing.T) {
	t.Setenv("AUTH_FLASH_SECRET", "")
	if err := os.Unsetenv("AUTH_FLASH_SECRET"); err != nil {
		t.Fatalf("unset env: %v", err)
	}

	var cfg AppConfig
	if err := env.Parse(&cfg); err == nil {
		t.Fatalf("expected error when AUTH_FLASH_SECRET is unset")
	}
}

func TestAuthConfig_Sanitize(t *testing.T) {
	cfg := AuthConfig{
		SocialLoginURL: "  https://login.example.com  ",
		SessionTTL:     time.Minute,
		HandoffTTL:     time.Hour,
	}

	cfg.Sanitize()

	if cfg.SocialLoginURL != "https://login.example.com" {
		t.Fatalf("expected social login url to be trimmed, got %q", cfg.SocialLoginURL)
	}
	if cfg.HandoffTTL != time.Minute {
		t.Fatalf("expected handoff ttl clamped to session ttl, got %s", cfg.HandoffTTL)
	}
	if cfg.CookieName != "jc_session" {
		t.Fatalf("expected default cookie name, got %q", cfg.CookieName)
	}

	cfg = AuthConfig{}
	cfg.Sanitize()
	if cfg.SessionTTL != defaultSessionTTL || cfg.HandoffTTL != defaultHandoffTTL {
		t.Fatalf("expected defaults for zero ttls, got %s/%s", cfg.SessionTTL, cfg.HandoffTTL)
	}
}

func TestBackendConfig_Sanitize(t *testing.T) {
	cfg := BackendConfig{URL: " https://api.example.com/api/ ", Timeout: -time.Second}

	cfg.Sanitize()

	if cfg.URL != "https://api.example.com/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.URL)
	}
	if cfg.Timeout != 0 {
		t.Fatalf("expected negative timeout reset to zero, got %s", cfg.Timeout)
	}
	if cfg.UserAgent != "jobconnect-web" {
		t.Fatalf("expected default user agent, got %q", cfg.UserAgent)
	}
}

func TestHTTPConfig_SanitizeCookieDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{name: "empty", domain: "", want: ""},
		{name: "localhost", domain: "localhost", want: "localhost"},
		{name: "registrable domain", domain: "Jobs.Example.com", want: "jobs.example.com"},
		{name: "leading dot", domain: ".example.com", want: "example.com"},
		{name: "bare public suffix", domain: "co.uk", want: ""},
		{name: "bare tld", domain: "com", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := HTTPConfig{CookieDomain: tt.domain, CompressionLevel: 6}
			cfg.Sanitize()
			if cfg.CookieDomain != tt.want {
				t.Errorf("cookie domain = %q, want %q", cfg.CookieDomain, tt.want)
			}
		})
	}
}

func TestHTTPConfig_SanitizeCompressionLevel(t *testing.T) {
	cfg := HTTPConfig{CompressionLevel: 0}
	cfg.Sanitize()
	if cfg.CompressionLevel != 1 {
		t.Fatalf("expected level clamped to 1, got %d", cfg.CompressionLevel)
	}

	cfg = HTTPConfig{CompressionLevel: 12}
	cfg.Sanitize()
	if cfg.CompressionLevel != 9 {
		t.Fatalf("expected level clamped to 9, got %d", cfg.CompressionLevel)
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " ",
	}

	cfg.Sanitize()

	if cfg.Enabled {
		t.Fatalf("expected enabled to be false when address is empty")
	}

	cfg = ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " statsd:1234 ",
	}

	cfg.Sanitize()

	if !cfg.IsEnabled() {
		t.Fatalf("expected metrics to remain enabled")
	}
	if cfg.StatsdAddress != "statsd:1234" {
		t.Fatalf("expected address to be trimmed, got %q", cfg.StatsdAddress)
	}
}
