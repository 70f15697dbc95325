package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PROVIDERS_FILE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.ProvidersFile != "providers.txt" {
		t.Fatalf("expected default providers file, got %s", cfg.ProvidersFile)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no CORS origins by default, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected default shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PROVIDERS_FILE", "/etc/clinic/providers.txt")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ui.example.com, https://admin.example.com")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	cfg := Load()
	if cfg.Port != 9090 {
		t.Fatalf("expected override port, got %d", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.ProvidersFile != "/etc/clinic/providers.txt" {
		t.Fatalf("expected providers file override, got %s", cfg.ProvidersFile)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://admin.example.com" {
		t.Fatalf("expected trimmed CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected shutdown timeout override, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadIgnoresUnparsablePort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected fallback port, got %d", cfg.Port)
	}
}
