package handler

import (
	"net/http"

	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/user"
)

// GrantSignalsRequest credits a player's balance
type GrantSignalsRequest struct {
	UserID string `json:"userId" validate:"required,userid"`
	Amount int64  `json:"amount" validate:"gt=0,max=1000000"`
}

// HandleGrantSignals credits signals to a user (admin only)
// @Summary Grant signals
// @Tags admin
// @Accept json
// @Produce json
// @Param request body GrantSignalsRequest true "Recipient and amount"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /admin/signals/grant [post]
// @Security ApiKeyAuth
func HandleGrantSignals(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GrantSignalsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant signals"); err != nil {
			return
		}

		u, err := svc.GrantSignals(r.Context(), req.UserID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "grant signals", err)
			return
		}

		logger.FromContext(r.Context()).Info("Signals granted by admin",
			"user_id", req.UserID, "amount", req.Amount, "new_balance", u.Signals)
		respondJSON(w, http.StatusOK, UserResponse{OK: true, User: u})
	}
}
