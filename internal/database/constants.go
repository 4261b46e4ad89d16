package database

import "time"

const (
	// DefaultMinConnections is kept warm unless MaxConns is lower
	DefaultMinConnections int32 = 2
	// DefaultPingTimeout bounds the startup connectivity check
	DefaultPingTimeout = 10 * time.Second
)

// Migration Constants
const (
	MigrationsDir     = "migrations"
	MigrationsDialect = "postgres"
)

// Error Messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToReadVersion     = "failed to read schema version"
)

// Log Messages
const (
	LogMsgConnectedToDatabase = "Connected to database"
	LogMsgMigrationsApplied   = "Database migrations applied"
)
