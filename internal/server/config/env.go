package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the process environment. A .env file
// in the working directory is loaded first (existing variables win); a
// missing file is not an error.
//
// Recognized variables:
//
//	PORT          HTTP port (bound as ":<port>")
//	DATABASE_URL  PostgreSQL DSN
//	JWT_SECRET    token signing secret
//	TOKEN_TTL     token lifetime as a Go duration ("24h", "0" disables expiry)
//	BCRYPT_COST   password hashing work factor
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("PORT"); ok {
		config.Addr = ":" + v
	}
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenTTL = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
