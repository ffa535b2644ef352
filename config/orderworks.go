package config

import (
	"strings"
	"time"
)

// OrderWorksConfig contains configuration for the OrderWorks job-sync
// integration. The integration is optional: when base URL or credentials are
// missing, the remote channel reports itself as not configured and only the
// shared-database channel is used.
type OrderWorksConfig struct {
	// BaseURL is the root of the OrderWorks admin API (e.g., "https://orders.example.com").
	BaseURL string `env:"BASE_URL" envDefault:""`

	// AdminUsername and AdminPassword authenticate against the admin login endpoint.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:""`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:""`

	// RowLimit bounds how many job rows a shared-database fetch returns.
	RowLimit int `env:"ROW_LIMIT" envDefault:"200"`

	// Timeout bounds every outbound OrderWorks request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"20s"`

	// RateRPS optionally limits outbound requests per second. Zero disables limiting.
	RateRPS float64 `env:"RATE_RPS" envDefault:"0"`

	// DisplayBaseURL is surfaced alongside database-sourced job lists so
	// consumers can link back to the OrderWorks UI. Falls back to BaseURL.
	DisplayBaseURL string `env:"DISPLAY_BASE_URL" envDefault:""`
}

// Sanitize applies guardrails to OrderWorks configuration values.
func (c *OrderWorksConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.AdminUsername = strings.TrimSpace(c.AdminUsername)
	c.AdminPassword = strings.TrimSpace(c.AdminPassword)
	c.DisplayBaseURL = strings.TrimRight(strings.TrimSpace(c.DisplayBaseURL), "/")
	if c.DisplayBaseURL == "" {
		c.DisplayBaseURL = c.BaseURL
	}
	if c.RowLimit <= 0 {
		c.RowLimit = 200
	}
	if c.Timeout <= 0 {
		c.Timeout = 20 * time.Second
	}
	if c.RateRPS < 0 {
		c.RateRPS = 0
	}
}

// IsConfigured reports whether the remote admin API settings are complete.
func (c *OrderWorksConfig) IsConfigured() bool {
	return c.BaseURL != "" && c.AdminUsername != "" && c.AdminPassword != ""
}
