package handler

import (
	"net/http"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/user"
)

// HandleGetInventory lists the acting user's phones in acquisition order
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		items, err := svc.GetInventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "get inventory", err)
			return
		}
		if items == nil {
			items = []domain.InventoryItem{}
		}

		respondJSON(w, http.StatusOK, InventoryResponse{OK: true, Inventory: items})
	}
}
