package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// Auth endpoint rate limit in ulule/limiter format, e.g. "10-M".
	AuthRateLimit string
	// Transfer idempotency cache bounds.
	IdempotencyCacheSize int
	IdempotencyRetention time.Duration
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "moliya-backend")
	viper.SetDefault("AUTH_RATE_LIMIT", "10-M")
	viper.SetDefault("IDEMPOTENCY_CACHE_SIZE", 1024)
	viper.SetDefault("IDEMPOTENCY_RETENTION", "24h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.IdempotencyCacheSize = viper.GetInt("IDEMPOTENCY_CACHE_SIZE")

	retentionStr := viper.GetString("IDEMPOTENCY_RETENTION")
	retention, err := time.ParseDuration(retentionStr)
	if err != nil {
		retention = 24 * time.Hour
		log.Printf("Warning: Invalid value for IDEMPOTENCY_RETENTION (%q). Defaulting to %s.\n", retentionStr, retention)
	}
	cfg.IdempotencyRetention = retention

	return cfg, nil
}
