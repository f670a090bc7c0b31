package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func TestHandleClientLog(t *testing.T) {
	tests := []struct {
		name           string
		forceLevel     string
		body           interface{}
		expectedStatus int
		expectedLog    string
	}{
		{
			name:           "Info line",
			body:           ClientLogRequest{Message: "opened market tab"},
			expectedStatus: http.StatusOK,
			expectedLog:    `"level":"INFO"`,
		},
		{
			name:           "Client chosen level",
			body:           ClientLogRequest{Level: "warn", Message: "slow image"},
			expectedStatus: http.StatusOK,
			expectedLog:    `"level":"WARN"`,
		},
		{
			name:           "Error endpoint forces level",
			forceLevel:     "error",
			body:           ClientLogRequest{Level: "debug", Message: "TypeError: x is undefined", Context: map[string]interface{}{"line": 12}},
			expectedStatus: http.StatusOK,
			expectedLog:    `"level":"ERROR"`,
		},
		{
			name:           "Missing message",
			body:           ClientLogRequest{Level: "info"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown level",
			body:           ClientLogRequest{Level: "fatal", Message: "x"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Oversized message",
			body:           ClientLogRequest{Message: strings.Repeat("m", 2001)},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)

			w := serve(HandleClientLog(tt.forceLevel), newRequest(t, http.MethodPost, "/logs", tt.body, testUserID))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"ok":true}`, w.Body.String())
				assert.Contains(t, logs.String(), tt.expectedLog)
				assert.Contains(t, logs.String(), `"source":"webapp"`)
				assert.Contains(t, logs.String(), `"user_id":"`+testUserID+`"`)
			}
		})
	}
}
