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
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// HTTP
	TrustedProxies  []string
	MaxRequestBytes int64

	// Storage
	StoreBackend      string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdle     time.Duration
	DBMaxConnLifetime time.Duration
	RedisAddr         string
	RedisPassword     string
	RedisDB           int

	// Sessions
	MaxActivePlayers     int
	SessionIdleTimeout   time.Duration
	SessionSweepInterval time.Duration

	// Persistence
	PlayerCacheSize   int
	PlayerCacheTTL    time.Duration
	PersistMaxRetries int
	PersistRetryDelay time.Duration

	// World
	WorldSeedPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),

		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
		MaxRequestBytes: int64(getEnvAsInt("MAX_REQUEST_BYTES", DefaultMaxRequestBytes)),

		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", BackendPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "questbot"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdle:     getEnvAsDuration("DB_MAX_CONN_IDLE", DefaultDBMaxConnIdle),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),

		MaxActivePlayers:     getEnvAsInt("MAX_ACTIVE_PLAYERS", DefaultMaxActivePlayers),
		SessionIdleTimeout:   getEnvAsDuration("SESSION_IDLE_TIMEOUT", 0),
		SessionSweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", DefaultSessionSweepInterval),

		PlayerCacheSize:   getEnvAsInt("PLAYER_CACHE_SIZE", DefaultPlayerCacheSize),
		PlayerCacheTTL:    getEnvAsDuration("PLAYER_CACHE_TTL", DefaultPlayerCacheTTL),
		PersistMaxRetries: getEnvAsInt("PERSIST_MAX_RETRIES", DefaultPersistMaxRetries),
		PersistRetryDelay: getEnvAsDuration("PERSIST_RETRY_DELAY", DefaultPersistRetryDelay),

		WorldSeedPath: getEnv("WORLD_SEED_PATH", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendPostgres, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q: must be one of %s, %s, %s",
			c.StoreBackend, BackendPostgres, BackendRedis, BackendMemory)
	}
	if c.MaxActivePlayers < 1 {
		return fmt.Errorf("MAX_ACTIVE_PLAYERS must be at least 1, got %d", c.MaxActivePlayers)
	}
	if c.MaxRequestBytes <= 0 {
		return fmt.Errorf("MAX_REQUEST_BYTES must be positive, got %d", c.MaxRequestBytes)
	}
	if c.PersistMaxRetries < 0 {
		return fmt.Errorf("PERSIST_MAX_RETRIES must not be negative, got %d", c.PersistMaxRetries)
	}
	if c.SessionIdleTimeout < 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must not be negative")
	}
	if c.SessionIdleTimeout > 0 && c.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive when SESSION_IDLE_TIMEOUT is set")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the
// default when it is unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a time.Duration environment variable ("90s", "5m")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
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
