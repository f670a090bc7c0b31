package handler

import (
	"net/http"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/user"
)

// UpdateProfileRequest carries presentation fields from the Telegram client.
// Empty fields keep their stored value.
type UpdateProfileRequest struct {
	FirstName string  `json:"firstName" validate:"max=64,printable"`
	Username  string  `json:"username" validate:"max=32,printable"`
	PhotoURL  *string `json:"photoUrl" validate:"omitempty,max=512,url"`
}

// HandleGetUser returns the acting user, creating the account on first contact
// @Summary Get current user
// @Tags user
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Router /user [get]
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		u, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "get user", err)
			return
		}

		respondJSON(w, http.StatusOK, UserResponse{OK: true, User: u})
	}
}

// HandleUpdateProfile stores the user's Telegram profile fields
// @Summary Update profile
// @Tags user
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /user/profile [post]
func HandleUpdateProfile(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
			return
		}

		u, err := svc.UpdateProfile(r.Context(), userID, domain.Profile{
			FirstName: req.FirstName,
			Username:  req.Username,
			PhotoURL:  req.PhotoURL,
		})
		if err != nil {
			respondServiceError(w, r, "update profile", err)
			return
		}

		logger.FromContext(r.Context()).Info("Profile updated", "user_id", userID)
		respondJSON(w, http.StatusOK, UserResponse{OK: true, User: u})
	}
}
