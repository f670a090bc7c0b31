package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"github.com/osse101/PhoneTycoon_Go/internal/config"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
)

// SetupLogger installs the process-wide structured logger and logs the
// startup banner. Source locations are only attached in development.
func SetupLogger(cfg *config.Config) *slog.Logger {
	return SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger with an explicit output.
func SetupLoggerWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		logger.IsDevelopment(cfg.Environment),
	)
	l := logger.InitLoggerWithWriter(loggerConfig, w)

	l.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel().String())
	l.Info(LogMsgStartingApp,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"catalog_path", cfg.CatalogPath,
		"starting_balance", cfg.StartingBalance,
		"history_size", cfg.HistorySize,
		"admin_enabled", cfg.APIKey != "")

	return l
}
