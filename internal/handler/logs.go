package handler

import (
	"log/slog"
	"net/http"

	"github.com/osse101/PhoneTycoon_Go/internal/logger"
)

const (
	LogMsgClientLog = "Client log"
	LogFieldSource  = "source"
	ClientSource    = "webapp"
)

// ClientLogRequest is a log line shipped by the Mini App
type ClientLogRequest struct {
	Level   string                 `json:"level" validate:"omitempty,oneof=debug info warn error"`
	Message string                 `json:"message" validate:"required,max=2000"`
	Context map[string]interface{} `json:"context" validate:"omitempty,max=32"`
}

// HandleClientLog writes client log lines to the server log. forceLevel, when
// not empty, overrides the level sent by the client.
// @Summary Client log sink
// @Tags logs
// @Accept json
// @Produce json
// @Param request body ClientLogRequest true "Log line"
// @Success 200 {object} OKResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /logs [post]
// @Router /logs/error [post]
func HandleClientLog(forceLevel string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClientLogRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Client log"); err != nil {
			return
		}

		level := req.Level
		if forceLevel != "" {
			level = forceLevel
		}

		attrs := []any{
			LogFieldSource, ClientSource,
			"message", req.Message,
		}
		if id := UserIDFromRequest(r); id != "" {
			attrs = append(attrs, "user_id", id)
		}
		if len(req.Context) > 0 {
			attrs = append(attrs, "context", req.Context)
		}

		log := logger.FromContext(r.Context())
		log.Log(r.Context(), clientLevel(level), LogMsgClientLog, attrs...)

		respondJSON(w, http.StatusOK, OKResponse{OK: true})
	}
}

func clientLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
