package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/astrodaily")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppPort != 8080 {
		t.Errorf("AppPort = %d, want 8080", cfg.AppPort)
	}
	if cfg.AppEnv != "development" || !cfg.IsDevelopment() {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.ReadTimeout)
	}
	if cfg.AnalyticsPageSize != 1000 {
		t.Errorf("AnalyticsPageSize = %d, want 1000", cfg.AnalyticsPageSize)
	}
	if cfg.AnalyticsMaxPages != 100 {
		t.Errorf("AnalyticsMaxPages = %d, want 100", cfg.AnalyticsMaxPages)
	}
	if cfg.AIEnabled() {
		t.Error("AIEnabled() should be false without a gateway key")
	}
	if !cfg.RateLimitTrackEnabled {
		t.Error("track rate limiting should default to enabled")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail without DATABASE_URL/REDIS_URL")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("AI_GATEWAY_KEY", "sk-test")
	t.Setenv("ANALYTICS_MAX_PAGES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if !cfg.AIEnabled() {
		t.Error("AIEnabled() = false, want true")
	}
	if cfg.AnalyticsMaxPages != 5 {
		t.Errorf("AnalyticsMaxPages = %d, want 5", cfg.AnalyticsMaxPages)
	}
}

func TestGetCORSAllowedOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://astrodaily.app, https://staging.astrodaily.app ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	origins := cfg.GetCORSAllowedOrigins()
	if len(origins) != 2 {
		t.Fatalf("origins = %v, want 2 entries", origins)
	}
	if origins[0] != "https://astrodaily.app" || origins[1] != "https://staging.astrodaily.app" {
		t.Errorf("origins = %v, trimming failed", origins)
	}
}
