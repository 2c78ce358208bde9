package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Issuer       string   `env:"CREDITS_JWT_ISSUER" envDefault:"lumenart-auth"` // Issuer claim expected on access tokens
	Audience     []string `env:"CREDITS_JWT_AUDIENCE"`                          // Optional: audience claims to enforce, comma separated
	JWTPublicKey string   `env:"CREDITS_JWT_PUBLIC_KEY,notEmpty"` // Required: base64 Ed25519 public key of the auth service

	ServiceKeyHash string `env:"CREDITS_SERVICE_KEY_HASH"` // Optional: argon2id hash; enables X-Service-Key auth for the billing pipeline

	DatabaseFile string `env:"CREDITS_DATABASE_FILE" envDefault:"credits.db"` // Path to SQLite database file

	Env       string `env:"ENV"        envDefault:"dev"`  // Environment (dev, staging, prod)
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"` // Log level (debug, info, warn, error)
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // Log format (json, text)
	Port      int    `env:"PORT"       envDefault:"8080"` // HTTP server port

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD"  envDefault:"10s"` // Graceful shutdown timeout
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL"  envDefault:"1h"`  // Dead invite code sweep interval
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return cfg, nil
}
