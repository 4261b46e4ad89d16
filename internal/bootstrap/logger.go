package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/QuestBot_Go/internal/config"
	"github.com/osse101/QuestBot_Go/internal/logger"
)

// SetupLogger installs the process logger writing to stdout and a
// timestamped file under cfg.LogDir. Older log files beyond the retention
// limit are removed. The caller must close the returned file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	initLogger(cfg, io.MultiWriter(os.Stdout, logFile))
	return logFile, nil
}

// SetupConsoleLogger installs the process logger on stdout only
func SetupConsoleLogger(cfg *config.Config) {
	initLogger(cfg, os.Stdout)
}

func initLogger(cfg *config.Config, w io.Writer) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingQuestBot,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"store_backend", cfg.StoreBackend)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"max_active_players", cfg.MaxActivePlayers,
		"session_idle_timeout", cfg.SessionIdleTimeout,
		"player_cache_size", cfg.PlayerCacheSize)
}

// cleanupLogs keeps only the most recent log files. Names embed a sortable
// timestamp, so lexical order is age order.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) < LogFileRetentionLimit {
		return
	}

	slices.Sort(names)
	for _, name := range names[:len(names)-LogFileRetentionCount] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
