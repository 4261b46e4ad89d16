package config

import "time"

// Storage backends selectable with STORE_BACKEND
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Defaults
const (
	DefaultServiceName          = "questbot"
	DefaultLogDir               = "logs"
	DefaultMaxRequestBytes      = 1 << 20
	DefaultDBMaxConns           = 10
	DefaultDBMaxConnIdle        = time.Minute
	DefaultDBMaxConnLifetime    = 30 * time.Minute
	DefaultMaxActivePlayers     = 3
	DefaultSessionSweepInterval = time.Minute
	DefaultPlayerCacheSize      = 64
	DefaultPlayerCacheTTL       = 10 * time.Minute
	DefaultPersistMaxRetries    = 3
	DefaultPersistRetryDelay    = 100 * time.Millisecond
)
