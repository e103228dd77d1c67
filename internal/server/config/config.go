// Package config handles configuration for the server component,
// including defaults, environment variables, and command-line flags.
package config

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the notes server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Required.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - TokenTTL: token lifetime; zero issues tokens without expiry.
//   - BcryptCost: password hashing work factor.
type Config struct {
	Addr        string
	DatabaseDSN string
	SecretKey   string
	TokenTTL    time.Duration
	BcryptCost  int
}

// LoadDefaults populates Config with development defaults. The database DSN
// and signing secret have no default; both must come from the environment or
// flags.
func (c *Config) LoadDefaults() {
	c.Addr = ":5000"
	c.TokenTTL = 24 * time.Hour
	c.BcryptCost = bcrypt.DefaultCost
}

// Validate reports the startup-fatal omissions.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is required (DATABASE_URL)")
	}
	if c.SecretKey == "" {
		return errors.New("signing secret is required (JWT_SECRET)")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file) and finally from
// command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
