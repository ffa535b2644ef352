package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_ParseOrderWorksEnv(t *testing.T) {
	t.Setenv("ORDERWORKS_BASE_URL", "https://orders.example.com/")
	t.Setenv("ORDERWORKS_ADMIN_USERNAME", "admin")
	t.Setenv("ORDERWORKS_ADMIN_PASSWORD", "secret")
	t.Setenv("ORDERWORKS_ROW_LIMIT", "50")
	t.Setenv("ORDERWORKS_TIMEOUT", "5s")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}
	cfg.Sanitize()

	if cfg.OrderWorks.BaseURL != "https://orders.example.com" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.OrderWorks.BaseURL)
	}
	if !cfg.OrderWorks.IsConfigured() {
		t.Error("IsConfigured() = false, want true")
	}
	if cfg.OrderWorks.RowLimit != 50 {
		t.Errorf("RowLimit = %d, want 50", cfg.OrderWorks.RowLimit)
	}
	if cfg.OrderWorks.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.OrderWorks.Timeout)
	}
	if cfg.OrderWorks.DisplayBaseURL != "https://orders.example.com" {
		t.Errorf("DisplayBaseURL = %q, want fallback to BaseURL", cfg.OrderWorks.DisplayBaseURL)
	}
}

func TestAppConfig_OrderWorksDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}
	cfg.Sanitize()

	if cfg.OrderWorks.IsConfigured() {
		t.Error("IsConfigured() = true with no env, want false")
	}
	if cfg.OrderWorks.RowLimit != 200 {
		t.Errorf("RowLimit = %d, want default 200", cfg.OrderWorks.RowLimit)
	}
	if cfg.OrderWorks.Timeout != 20*time.Second {
		t.Errorf("Timeout = %v, want default 20s", cfg.OrderWorks.Timeout)
	}
}

func TestOrderWorksConfig_SanitizeGuardrails(t *testing.T) {
	cfg := OrderWorksConfig{
		BaseURL:        "  https://orders.example.com/  ",
		AdminUsername:  " admin ",
		AdminPassword:  " secret ",
		RowLimit:       -5,
		Timeout:        -time.Second,
		RateRPS:        -1,
		DisplayBaseURL: "https://shop.example.com/",
	}
	cfg.Sanitize()

	if cfg.BaseURL != "https://orders.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "secret" {
		t.Errorf("credentials not trimmed: %q %q", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.RowLimit != 200 {
		t.Errorf("RowLimit = %d, want 200", cfg.RowLimit)
	}
	if cfg.Timeout != 20*time.Second {
		t.Errorf("Timeout = %v, want 20s", cfg.Timeout)
	}
	if cfg.RateRPS != 0 {
		t.Errorf("RateRPS = %v, want 0", cfg.RateRPS)
	}
	if cfg.DisplayBaseURL != "https://shop.example.com" {
		t.Errorf("DisplayBaseURL = %q", cfg.DisplayBaseURL)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Error("IsDev = false with APP_ENV=development, want true")
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "   "}
	cfg.Sanitize()

	if cfg.Enabled {
		t.Error("Enabled = true with blank address, want false")
	}
	if cfg.IsEnabled() {
		t.Error("IsEnabled() = true, want false")
	}
}
