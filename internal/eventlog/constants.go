package eventlog

import "time"

// DefaultCleanupInterval is how often the cleanup job prunes old entries
const DefaultCleanupInterval = 10 * time.Minute

// Log messages - service events
const (
	LogMsgUnknownPayload = "Unrecognized event payload, skipping log"
	LogMsgEventLogged    = "Event logged"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
	LogMsgCleanupLoopStopped  = "Event log cleanup loop stopped"
)

// Log field keys - structured logging fields
const (
	LogFieldType         = "type"
	LogFieldUserID       = "user_id"
	LogFieldError        = "error"
	LogFieldRetention    = "retention"
	LogFieldDuration     = "duration"
	LogFieldDeletedCount = "deletedCount"
)
