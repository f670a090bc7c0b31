package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/eventlog"
	"github.com/osse101/PhoneTycoon_Go/internal/lootbox"
)

// Every response body carries "ok". Failures add "error".

// OKResponse is the bare success envelope
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	OK    bool   `json:"ok" example:"false"`
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	OK     bool              `json:"ok" example:"false"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type UserResponse struct {
	OK   bool         `json:"ok"`
	User *domain.User `json:"user"`
}

type InventoryResponse struct {
	OK        bool                   `json:"ok"`
	Inventory []domain.InventoryItem `json:"inventory"`
}

type CasesResponse struct {
	OK    bool                 `json:"ok"`
	Cases []domain.CaseSummary `json:"cases"`
}

type CaseOddsResponse struct {
	OK   bool             `json:"ok"`
	Odds *domain.CaseOdds `json:"odds"`
}

type OpenCaseResponse struct {
	OK bool `json:"ok"`
	lootbox.OpenCaseResult
}

type ListingsResponse struct {
	OK    bool             `json:"ok"`
	Items []domain.Listing `json:"items"`
}

type ListingResponse struct {
	OK      bool            `json:"ok"`
	Listing *domain.Listing `json:"listing"`
}

type BuyResponse struct {
	OK         bool                 `json:"ok"`
	NewBalance int64                `json:"newBalance"`
	Item       domain.InventoryItem `json:"item"`
}

type ItemResponse struct {
	OK   bool                  `json:"ok"`
	Item *domain.InventoryItem `json:"item"`
}

type HistoryResponse struct {
	OK      bool             `json:"ok"`
	History []eventlog.Entry `json:"history"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"ok":false,"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{OK: false, Error: message})
}
