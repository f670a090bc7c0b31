package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/user"
	"github.com/osse101/PhoneTycoon_Go/internal/utils"
)

const (
	// HeaderUserID names the acting player
	HeaderUserID = "X-User-ID"
	// QueryUserID is the query fallback for HeaderUserID
	QueryUserID = "user_id"

	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// UserIDFromRequest returns the acting user id, preferring the header over the
// query parameter. The result may be empty.
func UserIDFromRequest(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(HeaderUserID)); id != "" {
		return id
	}
	return strings.TrimSpace(r.URL.Query().Get(QueryUserID))
}

// requireUserID extracts and validates the acting user id.
// If ok is false, the HTTP response has already been written and the handler should return.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := UserIDFromRequest(r)
	if id == "" {
		logger.FromContext(r.Context()).Warn(LogMsgInvalidRequest, "reason", "missing user id")
		respondError(w, http.StatusBadRequest, ErrMsgMissingUserID)
		return "", false
	}
	if err := user.ValidateUserID(id); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgInvalidRequest, "reason", "invalid user id")
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUserIDError)
		return "", false
	}
	return id, true
}

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// An empty body decodes as the zero value so that validation can name the missing fields.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req SellRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Sell"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgInvalidRequest, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			OK:     false,
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// parseLimit reads the optional "limit" query parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
func parseLimit(w http.ResponseWriter, r *http.Request, def, max int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return utils.ClampLimit(n, def, max), true
}
