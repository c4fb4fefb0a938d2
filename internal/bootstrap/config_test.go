package bootstrap

import (
	"testing"

	"github.com/jobconnect/jobconnect-web/config"
)

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(nil); err == nil {
		t.Fatal("expected error for nil config")
	}

	cfg := testConfig()
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("ValidateConfig() unexpected error: %v", err)
	}

	short := *cfg
	short.Auth = config.AuthConfig{FlashSecret: "too-short"}
	if err := ValidateConfig(&short); err == nil {
		t.Fatal("expected short flash secret to be rejected")
	}

	noBackend := *cfg
	noBackend.Backend.URL = ""
	if err := ValidateConfig(&noBackend); err == nil {
		t.Fatal("expected missing backend url to be rejected")
	}
}
