package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token TTL, got %v", cfg.TokenTTL)
	}
	if cfg.AdminUsername != "admin" {
		t.Errorf("expected default admin username, got %s", cfg.AdminUsername)
	}
	if cfg.IsProduction() {
		t.Error("expected non-production by default")
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("expected at least one allowed origin")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("TOKEN_TTL_HOURS", "1")
	t.Setenv("ALLOWED_ORIGINS", "https://example.com, https://www.example.com")

	cfg := Load()

	if !cfg.IsProduction() {
		t.Error("expected production")
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.AdminUsername != "owner" || cfg.AdminPassword != "secret" {
		t.Error("admin credentials not loaded from env")
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected 1h token TTL, got %v", cfg.TokenTTL)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.AllowedOrigins[1] != "https://www.example.com" {
		t.Errorf("origins not trimmed: %v", cfg.AllowedOrigins)
	}
}

func TestInvalidTokenTTLFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "not-a-number")
	if cfg := Load(); cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected fallback to 24h, got %v", cfg.TokenTTL)
	}

	t.Setenv("TOKEN_TTL_HOURS", "-3")
	if cfg := Load(); cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected fallback to 24h for negative value, got %v", cfg.TokenTTL)
	}
}
