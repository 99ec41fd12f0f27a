package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// TrustedProxies are remote addresses whose X-Forwarded-For header is believed
	TrustedProxies []string `validate:"dive,ip"`

	StorageBackend string `validate:"oneof=memory postgres"`

	DBUser            string        `validate:"required_if=StorageBackend postgres"`
	DBPassword        string
	DBHost            string        `validate:"required_if=StorageBackend postgres"`
	DBPort            string        `validate:"required_if=StorageBackend postgres"`
	DBName            string        `validate:"required_if=StorageBackend postgres"`
	DBMaxConns        int           `validate:"min=1"`
	DBMaxConnIdleTime time.Duration `validate:"min=0"`
	DBMaxConnLifetime time.Duration `validate:"min=0"`

	RecipeSeedPath string
	// RecipeReloadInterval re-syncs RecipeSeedPath periodically; zero disables it
	RecipeReloadInterval time.Duration `validate:"min=0"`
	RecipeCacheSize      int           `validate:"min=1"`
	RecipeCacheTTL       time.Duration `validate:"min=0"`
	MaxExpansionDepth    int           `validate:"min=1"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "craft-planner"),
		Version:     getEnv("VERSION", "dev"),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		StorageBackend: getEnv("STORAGE_BACKEND", StorageMemory),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "craftplanner"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		RecipeSeedPath:       getEnv("RECIPE_SEED_PATH", ""),
		RecipeReloadInterval: getEnvAsDuration("RECIPE_RELOAD_INTERVAL", 0),
		RecipeCacheSize:      getEnvAsInt("RECIPE_CACHE_SIZE", DefaultRecipeCacheSize),
		RecipeCacheTTL:       getEnvAsDuration("RECIPE_CACHE_TTL", DefaultRecipeCacheTTL),
		MaxExpansionDepth:    getEnvAsInt("MAX_EXPANSION_DEPTH", DefaultMaxExpansionDepth),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// UsesPostgres reports whether projects and recipes are stored in PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.StorageBackend == StoragePostgres
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
