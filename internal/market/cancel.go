package market

import (
	"context"
	"fmt"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/repository"
)

// Cancel withdraws a listing and returns its item to the seller.
func (s *service) Cancel(ctx context.Context, userID string, listingID int64) (*domain.InventoryItem, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCancelCalled, "user_id", userID, "listing_id", listingID)

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	caller, created, err := s.accounts.EnsureUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	listing, err := tx.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListingNotFoundFmt, listingID, err)
	}
	if listing.SellerID != caller.ID {
		return nil, domain.ErrNotListingOwner
	}

	if err := tx.DeleteListing(ctx, listing.ID); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteListingFailed, err)
	}
	if err := tx.AddItem(ctx, caller.ID, listing.Item); err != nil {
		return nil, fmt.Errorf(ErrMsgTransferItemFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgListingCanceled, "listing_id", listing.ID, "user_id", caller.ID)
	s.finish(ctx, newlyCreated(created, caller), event.NewListingCancelledEvent(ctx, *listing, s.now()))

	item := listing.Item
	return &item, nil
}
