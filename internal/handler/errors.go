package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
)

const ContentTypeJSON = "application/json; charset=utf-8"

// Generic HTTP error messages for client responses.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingUserID         = "Missing user id. Send the X-User-ID header or user_id query parameter"
	ErrMsgInvalidCaseID         = "Invalid case id"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgNotFound              = "Not Found"
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgUnavailable           = "unavailable"
	ErrMsgStoreUnavailable      = "store unavailable"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Internal Server Error"

	ErrMsgUserNotFoundError     = "User not found"
	ErrMsgItemNotFoundError     = "Item not found in your inventory"
	ErrMsgCaseNotFoundError     = "Case not found"
	ErrMsgListingNotFoundError  = "Listing not found"
	ErrMsgNotEnoughSignalsError = "Not enough signals"
	ErrMsgInvalidPriceError     = "Price must be a positive whole number"
	ErrMsgPriceTooHighError     = "Price is too high"
	ErrMsgInvalidUserIDError    = "Invalid user id"
	ErrMsgInvalidAmountError    = "Amount must be positive"
	ErrMsgOwnListingError       = "You cannot buy your own listing"
	ErrMsgNotOwnerError         = "Only the seller can cancel this listing"
	ErrMsgForbiddenError        = "Forbidden"
	ErrMsgInvalidInputError     = "Invalid input"
	ErrMsgInvalidOperationError = "Operation not allowed"
)

// Log messages
const (
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
	LogMsgServiceError   = "Service call failed"
	LogMsgClientError    = "Request rejected"
	LogMsgDecodeFailed   = "Failed to decode request"
	LogMsgRequestDecoded = "Request decoded"
	LogMsgInvalidRequest = "Invalid request"
	LogMsgReadyzFailed   = "Readiness check failed"

	// Request-level traces; the services log the committed result at info
	LogMsgSellHandled   = "Sell request handled"
	LogMsgBuyHandled    = "Buy request handled"
	LogMsgCancelHandled = "Cancel request handled"
	LogMsgOpenHandled   = "Open case request handled"
)

// specificMessages lists errors with a dedicated user-facing message.
// Order matters only between errors of the same kind.
var specificMessages = []struct {
	err error
	msg string
}{
	{domain.ErrUserNotFound, ErrMsgUserNotFoundError},
	{domain.ErrItemNotFound, ErrMsgItemNotFoundError},
	{domain.ErrCaseNotFound, ErrMsgCaseNotFoundError},
	{domain.ErrListingNotFound, ErrMsgListingNotFoundError},
	{domain.ErrInvalidPrice, ErrMsgInvalidPriceError},
	{domain.ErrPriceTooHigh, ErrMsgPriceTooHighError},
	{domain.ErrInvalidUserID, ErrMsgInvalidUserIDError},
	{domain.ErrInvalidAmount, ErrMsgInvalidAmountError},
	{domain.ErrCannotBuyOwnListing, ErrMsgOwnListingError},
	{domain.ErrNotListingOwner, ErrMsgNotOwnerError},
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message safe to show to players. Unknown errors become a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	status := statusForKind(err)
	if status == http.StatusInternalServerError {
		return status, ErrMsgGenericServerError
	}

	for _, s := range specificMessages {
		if errors.Is(err, s.err) {
			return status, s.msg
		}
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return status, ErrMsgNotEnoughSignalsError
	case errors.Is(err, domain.ErrForbidden):
		return status, ErrMsgForbiddenError
	case errors.Is(err, domain.ErrInvalidOperation):
		return status, ErrMsgInvalidOperationError
	case errors.Is(err, domain.ErrNotFound):
		return status, ErrMsgNotFound
	default:
		return status, ErrMsgInvalidInputError
	}
}

func statusForKind(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError logs err and writes the mapped envelope.
// Client errors log at warn, everything else at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgClientError, "operation", opName, "status", status, "error", err)
	}
	respondError(w, status, msg)
}
