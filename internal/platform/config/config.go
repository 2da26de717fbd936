package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	StorageBackend string
	MigrationsPath string

	// Locking
	RedisAddress  string
	RedisPassword string
	RedisDB       int
	LockTTL       time.Duration
	LockWait      time.Duration

	// HTTP
	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	// Name-based control account fallback for charts imported from older installations
	LegacyControlAccountLookup bool
	LegacyReceivableHints      []string
	LegacyPayableHints         []string
	LegacyRevenueGroupHints    []string
	LegacyExpenseGroupHints    []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("STORAGE_BACKEND", StoragePostgres)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("REDIS_ADDRESS", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LOCK_TTL", "10s")
	viper.SetDefault("LOCK_WAIT", "2s")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LEGACY_CONTROL_ACCOUNT_LOOKUP", false)
	viper.SetDefault("LEGACY_RECEIVABLE_HINTS", "receb")
	viper.SetDefault("LEGACY_PAYABLE_HINTS", "pag")
	viper.SetDefault("LEGACY_REVENUE_GROUP_HINTS", "Receitas")
	viper.SetDefault("LEGACY_EXPENSE_GROUP_HINTS", "Despesas")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.StorageBackend = strings.ToLower(viper.GetString("STORAGE_BACKEND"))
	if cfg.StorageBackend != StoragePostgres && cfg.StorageBackend != StorageMemory {
		log.Printf("Warning: unknown STORAGE_BACKEND ('%s'). Defaulting to %s.\n", cfg.StorageBackend, StoragePostgres)
		cfg.StorageBackend = StoragePostgres
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" && cfg.StorageBackend == StoragePostgres {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.LockTTL = durationOr("LOCK_TTL", 10*time.Second)
	cfg.LockWait = durationOr("LOCK_WAIT", 2*time.Second)

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.RedisAddress = viper.GetString("REDIS_ADDRESS")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.LegacyControlAccountLookup = viper.GetBool("LEGACY_CONTROL_ACCOUNT_LOOKUP")
	cfg.LegacyReceivableHints = splitList(viper.GetString("LEGACY_RECEIVABLE_HINTS"))
	cfg.LegacyPayableHints = splitList(viper.GetString("LEGACY_PAYABLE_HINTS"))
	cfg.LegacyRevenueGroupHints = splitList(viper.GetString("LEGACY_REVENUE_GROUP_HINTS"))
	cfg.LegacyExpenseGroupHints = splitList(viper.GetString("LEGACY_EXPENSE_GROUP_HINTS"))

	return cfg, nil
}

func durationOr(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

// splitList parses a comma separated value, dropping blanks.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
