// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, JWT) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Identity Schemes

// The principal key of an account is deployment-specific: campus installs key
// accounts by roll number, public installs by free-form username. The scheme
// is a startup choice, never mixed within one deployment.
const (
	IdentitySchemeRollNo   = "rollno"
	IdentitySchemeUsername = "username"
)

// # Configuration Schema

// Config holds all runtime configuration for the Kreeda API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DBHost     string `env:"DB_HOST"      envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT"      envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBDatabase string `env:"DB_DATABASE,required"`

	// Connection pool tuning. QueueLimit bounds how many acquirers may wait
	// for a free connection when WaitForConnections is enabled.
	DBWaitForConnections bool `env:"DB_WAIT_FOR_CONNECTIONS" envDefault:"true"`
	DBConnectionLimit    int  `env:"DB_CONNECTION_LIMIT"     envDefault:"25"`
	DBQueueLimit         int  `env:"DB_QUEUE_LIMIT"          envDefault:"0"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Session and identity signing. SessionSecret is accepted for parity with
	// older deploy manifests that still export it; token signing uses JWTSecret.
	SessionSecret string        `env:"SESSION_SECRET"`
	JWTSecret     string        `env:"JWT_SECRET,required"`
	JWTExpiry     time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	// IdentityScheme selects the principal key kind: "rollno" or "username".
	IdentityScheme string `env:"IDENTITY_SCHEME" envDefault:"rollno"`

	// Object Storage (S3-compatible)
	S3Bucket        string `env:"S3_BUCKET"`
	S3Region        string `env:"S3_REGION"   envDefault:"auto"`
	S3Endpoint      string `env:"S3_ENDPOINT"`
	S3AccessKey     string `env:"S3_ACCESS_KEY"`
	S3SecretKey     string `env:"S3_SECRET_KEY"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`

	// Cross-Origin Resource Sharing: comma-separated origins allowed in
	// addition to the first-party domains, e.g. staging frontends.
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.IdentityScheme != IdentitySchemeRollNo && cfg.IdentityScheme != IdentitySchemeUsername {
		return nil, fmt.Errorf("config: IDENTITY_SCHEME must be %q or %q, got %q",
			IdentitySchemeRollNo, IdentitySchemeUsername, cfg.IdentityScheme)
	}

	return cfg, nil
}

// DatabaseURL assembles a postgres:// connection URL from the discrete DB_*
// variables. Credentials are URL-escaped so special characters survive.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBDatabase,
	)
}

// AllowedOrigins returns the parsed EXTRA_ORIGINS list: comma-separated
// entries, trimmed, empty entries dropped.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
