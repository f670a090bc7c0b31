package config

import "time"

// Environment variable names
const (
	EnvConfigFile           = "CONFIG_FILE"
	EnvPort                 = "PORT"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvEnvironment          = "ENVIRONMENT"
	EnvServiceName          = "SERVICE_NAME"
	EnvVersion              = "VERSION"
	EnvAPIKey               = "API_KEY"
	EnvTrustedProxies       = "TRUSTED_PROXIES"
	EnvAllowedOrigins       = "ALLOWED_ORIGINS"
	EnvCatalogPath          = "CATALOG_PATH"
	EnvStartingBalance      = "STARTING_BALANCE"
	EnvHistorySize          = "HISTORY_SIZE"
	EnvHistoryRetention     = "HISTORY_RETENTION"
	EnvDeadLetterPath       = "EVENT_DEADLETTER_PATH"
	EnvIdempotencyCacheSize = "IDEMPOTENCY_CACHE_SIZE"
	EnvIdempotencyTTL       = "IDEMPOTENCY_TTL"
	EnvRateLimitPerWindow   = "RATE_LIMIT_PER_WINDOW"
	EnvShutdownTimeout      = "SHUTDOWN_TIMEOUT"
)

// Defaults
const (
	DefaultPort                 = 8080
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultEnvironment          = "dev"
	DefaultServiceName          = "phone-tycoon"
	DefaultVersion              = "dev"
	DefaultStartingBalance      = 1000
	DefaultHistorySize          = 200
	DefaultHistoryRetention     = 24 * time.Hour
	DefaultIdempotencyCacheSize = 10000
	DefaultIdempotencyTTL       = 10 * time.Minute
	DefaultRateLimitPerWindow   = 1000
	DefaultShutdownTimeout      = 10 * time.Second
	EnvironmentProduction       = "prod"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleAPIKey   = "generate_with_openssl_rand_hex_32"
	MinAPIKeyLength = 16
)

// Error and warning messages
const (
	ErrMsgInvalidPort      = "invalid PORT value"
	ErrMsgReadConfigFile   = "failed to read config file"
	ErrMsgInvalidConfig    = "invalid configuration"
	WarnMsgExampleAPIKey   = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgShortAPIKey     = "API_KEY is shorter than 16 characters"
	WarnMsgWildcardOrigins = "ALLOWED_ORIGINS is '*' in production"
	WarnMsgAdminDisabled   = "API_KEY is not set - admin routes are disabled"
)
