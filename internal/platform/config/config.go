package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	JWTSecret      string
	RedisURL       string // rate limit counters are kept in memory when empty
	RateLimit      string // ulule/limiter format, e.g. "300-M"
	DBMaxConns     int32
	MigrationsPath string
	// APIKeys maps static keys of machine clients to the principal they act as.
	APIKeys map[string]string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("API_KEYS", "")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		RedisURL:       v.GetString("REDIS_URL"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		DBMaxConns:     v.GetInt32("DB_MAX_CONNS"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.DBMaxConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", cfg.DBMaxConns)
	}

	keys, err := parseAPIKeys(v.GetString("API_KEYS"))
	if err != nil {
		return nil, err
	}
	cfg.APIKeys = keys

	return cfg, nil
}

// parseAPIKeys reads "principal:key,principal2:key2".
func parseAPIKeys(raw string) (map[string]string, error) {
	keys := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		principal, key, ok := strings.Cut(pair, ":")
		principal, key = strings.TrimSpace(principal), strings.TrimSpace(key)
		if !ok || principal == "" || key == "" {
			return nil, fmt.Errorf("invalid API_KEYS entry %q, expected principal:key", pair)
		}
		keys[key] = principal
	}
	return keys, nil
}
