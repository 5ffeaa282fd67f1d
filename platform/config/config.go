// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// DiscoveryConfig provides settings for the Ticketmaster Discovery API client.
type DiscoveryConfig interface {
	GetDiscoveryBaseURL() string
	GetDiscoveryAPIKey() string
	GetDiscoveryTimeout() time.Duration
}

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env              string
	HTTPAddr         string
	CORSAllowAll     bool
	CORSOrigins      []string
	CORSAllowCreds   bool
	DiscoveryBaseURL string
	DiscoveryAPIKey  string
	DiscoveryTimeout time.Duration
}

// Load reads configuration from the environment, applying defaults.
// A .env file is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	timeout, err := time.ParseDuration(getEnv("DISCOVERY_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISCOVERY_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		CORSAllowCreds:   strings.EqualFold(getEnv("CORS_ALLOW_CREDS", "true"), "true"),
		DiscoveryBaseURL: getEnv("DISCOVERY_BASE_URL", "https://app.ticketmaster.com/discovery/v2"),
		DiscoveryAPIKey:  getEnv("TICKETMASTER_API_KEY", ""),
		DiscoveryTimeout: timeout,
	}

	if cfg.DiscoveryAPIKey == "" {
		return nil, fmt.Errorf("TICKETMASTER_API_KEY is required")
	}

	return cfg, nil
}

func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

func (c *Config) GetDiscoveryBaseURL() string        { return c.DiscoveryBaseURL }
func (c *Config) GetDiscoveryAPIKey() string         { return c.DiscoveryAPIKey }
func (c *Config) GetDiscoveryTimeout() time.Duration { return c.DiscoveryTimeout }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
