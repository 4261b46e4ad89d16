package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the number of log files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingQuestBot    = "Starting QuestBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Storage
// =============================================================================

const (
	// StorageConnectTimeout bounds connecting, migrating and seeding at startup
	StorageConnectTimeout = 30 * time.Second

	// Dependency names reported by /readyz
	DependencyDatabase = "database"
	DependencyRedis    = "redis"
)

// Log and error messages for storage setup
const (
	LogMsgStorageReady        = "Storage ready"
	LogMsgWorldSeeded         = "World catalog seeded"
	LogMsgWorldLoaded         = "World catalog loaded"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrate       = "failed to migrate database"
	ErrMsgFailedConnectRedis  = "failed to connect to redis"
	ErrMsgFailedLoadSeedWorld = "failed to load seed world"
	ErrMsgFailedSyncWorld     = "failed to sync world catalog"
	ErrMsgFailedBuildCatalog  = "failed to build catalog"
	ErrMsgUnknownBackend      = "unknown store backend"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgEndingSessions       = "Saving and ending active sessions..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgReaperShutdownFailed = "Idle session reaper shutdown failed"
	LogMsgSessionsNotSaved     = "Some sessions could not be saved"
	LogMsgStorageCloseFailed   = "Storage close failed"
)
