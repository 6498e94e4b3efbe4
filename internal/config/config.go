// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Site identity
	SiteName string
	BaseURL  string // canonical origin used when publishing absolute links

	// Content sources
	ContentDir string // markdown content root
	CVPath     string // resume yaml, optional
	OutputDir  string // static publish target

	// Footer links rendered on every page, "Label=URL" pairs.
	FooterLinks []Link

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible page cache); empty host disables caching.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
}

// Link is one labelled URL passed to the site renderer (footer, socials).
type Link struct {
	Label string
	URL   string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode or fail validation.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", EnvDevelopment),

		SiteName: envOrDefault("SITE_NAME", "Inkwell"),
		BaseURL:  envOrDefault("SITE_BASE_URL", "http://localhost:8080"),

		ContentDir: envOrDefault("CONTENT_DIR", "content"),
		CVPath:     os.Getenv("CV_PATH"),
		OutputDir:  envOrDefault("OUTPUT_DIR", "public"),

		FooterLinks: parseLinks(os.Getenv("FOOTER_LINKS")),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "inkwell"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "inkwell"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	if cfg.Env == EnvProduction && cfg.DBPassword == "changeme" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks structural constraints on the loaded values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.Env, validation.Required,
			validation.In(EnvDevelopment, EnvProduction, EnvTesting)),
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.DBPort, validation.Required, is.Port),
	)
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == EnvDevelopment
}

// CacheEnabled reports whether a Valkey page cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// parseLinks parses "Label=URL,Label=URL" pairs. Malformed pairs are
// skipped rather than failing the whole load.
func parseLinks(raw string) []Link {
	if raw == "" {
		return nil
	}
	var links []Link
	for _, pair := range strings.Split(raw, ",") {
		label, url, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || label == "" || url == "" {
			continue
		}
		links = append(links, Link{Label: label, URL: url})
	}
	return links
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
