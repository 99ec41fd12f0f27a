package config

import "time"

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultRecipeCacheSize   = 1024
	DefaultRecipeCacheTTL    = 10 * time.Minute
	DefaultMaxExpansionDepth = 64
)

// ExamplePassword is the placeholder shipped in .env.example
const ExamplePassword = "change_this_secure_password"
