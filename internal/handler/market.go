package handler

import (
	"net/http"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/eventlog"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/market"
)

// SellRequest lists an owned item. "inventoryItemId" is accepted as an alias
// of "itemId".
type SellRequest struct {
	ItemID          string `json:"itemId" validate:"required_without=InventoryItemID,max=64,printable"`
	InventoryItemID string `json:"inventoryItemId" validate:"max=64,printable"`
	Price           int64  `json:"price" validate:"gt=0"`
}

func (r SellRequest) itemID() string {
	if r.ItemID != "" {
		return r.ItemID
	}
	return r.InventoryItemID
}

// ListingActionRequest names a listing to buy or cancel
type ListingActionRequest struct {
	ListingID int64 `json:"listingId" validate:"required,gt=0"`
}

// HandleListMarket lists other players' active listings, newest first
// @Summary Browse market
// @Tags market
// @Produce json
// @Param X-User-ID header string false "Acting user id; own listings are excluded"
// @Success 200 {object} ListingsResponse
// @Router /market [get]
func HandleListMarket(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.ListActive(r.Context(), UserIDFromRequest(r))
		if err != nil {
			respondServiceError(w, r, "list market", err)
			return
		}
		respondJSON(w, http.StatusOK, ListingsResponse{OK: true, Items: nonNilListings(listings)})
	}
}

// HandleListMine lists the acting user's active listings, newest first
// @Summary My listings
// @Tags market
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Success 200 {object} ListingsResponse
// @Failure 400 {object} ErrorResponse
// @Router /market/mine [get]
func HandleListMine(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		listings, err := svc.ListMine(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "list mine", err)
			return
		}
		respondJSON(w, http.StatusOK, ListingsResponse{OK: true, Items: nonNilListings(listings)})
	}
}

// HandleMarketHistory returns recent listings, sales and cancellations
// @Summary Market history
// @Tags market
// @Produce json
// @Param limit query int false "Max entries (default 50, max 200)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /market/history [get]
func HandleMarketHistory(svc eventlog.Service) http.HandlerFunc {
	return handleHistory(svc, "market history", eventlog.MarketEventTypes...)
}

// HandleSell moves an inventory item into a new listing
// @Summary Sell item
// @Tags market
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param Idempotency-Key header string false "Replays the first response when repeated"
// @Param request body SellRequest true "Item and price"
// @Success 200 {object} ListingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Item not in inventory"
// @Router /market/sell [post]
func HandleSell(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req SellRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell"); err != nil {
			return
		}

		listing, err := svc.Sell(r.Context(), userID, req.itemID(), req.Price)
		if err != nil {
			respondServiceError(w, r, "sell", err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgSellHandled,
			"user_id", userID, "listing_id", listing.ID, "price", listing.Price)
		respondJSON(w, http.StatusOK, ListingResponse{OK: true, Listing: listing})
	}
}

// HandleBuy purchases a listing
// @Summary Buy listing
// @Tags market
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param Idempotency-Key header string false "Replays the first response when repeated"
// @Param request body ListingActionRequest true "Listing to buy"
// @Success 200 {object} BuyResponse
// @Failure 400 {object} ErrorResponse "Not enough signals or own listing"
// @Failure 404 {object} ErrorResponse "Listing gone"
// @Router /market/buy [post]
func HandleBuy(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req ListingActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy"); err != nil {
			return
		}

		res, err := svc.Buy(r.Context(), userID, req.ListingID)
		if err != nil {
			respondServiceError(w, r, "buy", err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgBuyHandled,
			"user_id", userID, "listing_id", req.ListingID, "new_balance", res.NewBalance)
		respondJSON(w, http.StatusOK, BuyResponse{OK: true, NewBalance: res.NewBalance, Item: res.Item})
	}
}

// HandleCancel withdraws a listing and returns the item to the seller
// @Summary Cancel listing
// @Tags market
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param request body ListingActionRequest true "Listing to cancel"
// @Success 200 {object} ItemResponse
// @Failure 403 {object} ErrorResponse "Not the seller"
// @Failure 404 {object} ErrorResponse "Listing gone"
// @Router /market/cancel [post]
func HandleCancel(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req ListingActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cancel"); err != nil {
			return
		}

		item, err := svc.Cancel(r.Context(), userID, req.ListingID)
		if err != nil {
			respondServiceError(w, r, "cancel", err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgCancelHandled, "user_id", userID, "listing_id", req.ListingID)
		respondJSON(w, http.StatusOK, ItemResponse{OK: true, Item: item})
	}
}

func nonNilListings(l []domain.Listing) []domain.Listing {
	if l == nil {
		return []domain.Listing{}
	}
	return l
}
