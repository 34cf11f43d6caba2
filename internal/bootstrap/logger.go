package bootstrap

import (
	"log/slog"

	"github.com/nt-jambaa/toktok-mini-game/internal/config"
	"github.com/nt-jambaa/toktok-mini-game/internal/logger"
)

// SetupLogger installs the process logger from configuration and logs the startup banner
func SetupLogger(cfg *config.Config) *slog.Logger {
	l := logger.InitLogger(logger.ForEnvironment(cfg.Environment).Override(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.LogAddSource,
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingService, "environment", cfg.Environment, "version", cfg.Version)
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"storage_driver", cfg.StorageDriver,
		"storage_path", cfg.StoragePath,
		"time_mode", cfg.TimeMode,
		"poll_interval", cfg.PollInterval)

	for _, w := range config.Warnings(cfg) {
		l.Warn(LogMsgConfigWarning, "warning", w)
	}
	return l
}
