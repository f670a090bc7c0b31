package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `toml:"port" validate:"min=1,max=65535"`
	LogLevel    string `toml:"log_level" validate:"required"`
	LogFormat   string `toml:"log_format" validate:"oneof=text json"`
	Environment string `toml:"environment" validate:"required"`
	ServiceName string `toml:"service_name" validate:"required"`
	Version     string `toml:"version"`

	// APIKey guards admin routes. Empty disables them.
	APIKey         string   `toml:"api_key"`
	TrustedProxies []string `toml:"trusted_proxies"`
	AllowedOrigins []string `toml:"allowed_origins" validate:"min=1"`

	// CatalogPath overrides the embedded case catalog when set
	CatalogPath     string `toml:"catalog_path"`
	StartingBalance int64  `toml:"starting_balance" validate:"gte=0"`

	HistorySize          int           `toml:"history_size" validate:"min=1,max=100000"`
	HistoryRetention     time.Duration `toml:"history_retention" validate:"gt=0"`
	DeadLetterPath       string        `toml:"dead_letter_path"`
	IdempotencyCacheSize int           `toml:"idempotency_cache_size" validate:"min=1"`
	IdempotencyTTL       time.Duration `toml:"idempotency_ttl" validate:"gt=0"`
	RateLimitPerWindow   int           `toml:"rate_limit_per_window" validate:"min=1"`
	ShutdownTimeout      time.Duration `toml:"shutdown_timeout" validate:"gt=0"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Port:                 DefaultPort,
		LogLevel:             DefaultLogLevel,
		LogFormat:            DefaultLogFormat,
		Environment:          DefaultEnvironment,
		ServiceName:          DefaultServiceName,
		Version:              DefaultVersion,
		AllowedOrigins:       []string{"*"},
		StartingBalance:      DefaultStartingBalance,
		HistorySize:          DefaultHistorySize,
		HistoryRetention:     DefaultHistoryRetention,
		IdempotencyCacheSize: DefaultIdempotencyCacheSize,
		IdempotencyTTL:       DefaultIdempotencyTTL,
		RateLimitPerWindow:   DefaultRateLimitPerWindow,
		ShutdownTimeout:      DefaultShutdownTimeout,
	}
}

// Load builds the configuration from defaults, an optional TOML file named by
// CONFIG_FILE, a .env file and finally environment variables, then validates it.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := Defaults()

	if path := getEnv(EnvConfigFile, ""); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgReadConfigFile, path, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if portStr, ok := os.LookupEnv(EnvPort); ok && portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
		}
		cfg.Port = port
	}

	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(EnvLogFormat, cfg.LogFormat)
	cfg.Environment = getEnv(EnvEnvironment, cfg.Environment)
	cfg.ServiceName = getEnv(EnvServiceName, cfg.ServiceName)
	cfg.Version = getEnv(EnvVersion, cfg.Version)
	cfg.APIKey = getEnv(EnvAPIKey, cfg.APIKey)
	cfg.TrustedProxies = getEnvAsSlice(EnvTrustedProxies, cfg.TrustedProxies)
	cfg.AllowedOrigins = getEnvAsSlice(EnvAllowedOrigins, cfg.AllowedOrigins)
	cfg.CatalogPath = getEnv(EnvCatalogPath, cfg.CatalogPath)
	cfg.StartingBalance = int64(getEnvAsInt(EnvStartingBalance, int(cfg.StartingBalance)))
	cfg.HistorySize = getEnvAsInt(EnvHistorySize, cfg.HistorySize)
	cfg.HistoryRetention = getEnvAsDuration(EnvHistoryRetention, cfg.HistoryRetention)
	cfg.DeadLetterPath = getEnv(EnvDeadLetterPath, cfg.DeadLetterPath)
	cfg.IdempotencyCacheSize = getEnvAsInt(EnvIdempotencyCacheSize, cfg.IdempotencyCacheSize)
	cfg.IdempotencyTTL = getEnvAsDuration(EnvIdempotencyTTL, cfg.IdempotencyTTL)
	cfg.RateLimitPerWindow = getEnvAsInt(EnvRateLimitPerWindow, cfg.RateLimitPerWindow)
	cfg.ShutdownTimeout = getEnvAsDuration(EnvShutdownTimeout, cfg.ShutdownTimeout)
	return nil
}

// AdminEnabled reports whether admin routes should be mounted
func (c *Config) AdminEnabled() bool {
	return c.APIKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default on absence or error
func getEnvAsInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a Go duration string, falling back to the default on absence or error
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsSlice splits a comma separated variable, dropping blanks
func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
