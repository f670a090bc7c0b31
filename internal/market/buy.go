package market

import (
	"context"
	"fmt"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/repository"
)

// Buy pays the seller, hands the listed item to the buyer and removes the
// listing. Either every step applies or none does.
func (s *service) Buy(ctx context.Context, buyerID string, listingID int64) (*BuyResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgBuyCalled, "user_id", buyerID, "listing_id", listingID)

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	buyer, created, err := s.accounts.EnsureUser(ctx, tx, buyerID)
	if err != nil {
		return nil, err
	}

	// 1. Check eligibility
	listing, err := tx.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListingNotFoundFmt, listingID, err)
	}
	if listing.SellerID == buyer.ID {
		return nil, domain.ErrCannotBuyOwnListing
	}

	// 2. Move signals
	balance, err := tx.AdjustBalance(ctx, buyer.ID, -listing.Price)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuyerChargeFailedFmt, listingID, listing.Price, err)
	}
	if _, err := tx.AdjustBalance(ctx, listing.SellerID, listing.Price); err != nil {
		return nil, fmt.Errorf(ErrMsgCreditSellerFailed, err)
	}

	// 3. Move the item and retire the listing
	if err := tx.AddItem(ctx, buyer.ID, listing.Item); err != nil {
		return nil, fmt.Errorf(ErrMsgTransferItemFailed, err)
	}
	if err := tx.DeleteListing(ctx, listing.ID); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteListingFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgListingSold, "listing_id", listing.ID, "buyer_id", buyer.ID, "seller_id", listing.SellerID, "price", listing.Price)
	s.finish(ctx, newlyCreated(created, buyer), event.NewListingSoldEvent(ctx, *listing, buyer.ID, s.now()))

	return &BuyResult{NewBalance: balance, Item: listing.Item}, nil
}
