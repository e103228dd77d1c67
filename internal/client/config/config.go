// Package config loads runtime configuration for the notes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (SERVER_ADDR, TOKEN_FILE).
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP endpoint
//	-f string   path of the file used to cache the auth token
package config

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/mayankt25/backend/internal/flagx"
)

type Config struct {
	ServerAddr string
	TokenFile  string
}

// LoadDefaults populates c with sensible defaults. The token cache goes
// under the OS user config dir; if that cannot be resolved the cache is
// disabled and the session token lives in memory only.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:5000"
	if dir, err := os.UserConfigDir(); err == nil {
		c.TokenFile = filepath.Join(dir, "notes-cli", "token")
	}
}

func parseEnv(c *Config) {
	if v, ok := os.LookupEnv("SERVER_ADDR"); ok && v != "" {
		c.ServerAddr = v
	}
	if v, ok := os.LookupEnv("TOKEN_FILE"); ok && v != "" {
		c.TokenFile = v
	}
}

func parseFlags(c *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&c.ServerAddr, "a", c.ServerAddr, "base URL of the backend endpoint")
	fs.StringVar(&c.TokenFile, "f", c.TokenFile, "path of the auth token cache file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
