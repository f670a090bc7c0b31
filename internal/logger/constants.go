package logger

const ctxKeyRequestID ctxKey = "request_id"

// Recognized level names. Anything else logs at info.
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelWarning = "warning"
	LevelError   = "error"
)

// FormatJSON selects the JSON handler; every other value is logfmt text.
const FormatJSON = "json"

// Attribute keys attached to every record or derived from the request context
const (
	AttrService     = "service"
	AttrVersion     = "version"
	AttrEnvironment = "environment"
	AttrRequestID   = "request_id"
)

var developmentEnvironments = []string{"dev", "development", "local"}
