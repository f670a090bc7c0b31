package market

import (
	"context"
	"fmt"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/repository"
)

// Sell moves an item from the seller's inventory into a new listing.
func (s *service) Sell(ctx context.Context, userID, itemID string, price int64) (*domain.Listing, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSellCalled, "user_id", userID, "item_id", itemID, "price", price)

	// 1. Validate request
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	// 2. Begin transaction
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	seller, created, err := s.accounts.EnsureUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	// 3. Take the item out of the inventory
	item, err := tx.RemoveItem(ctx, seller.ID, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgItemNotInInventory, itemID, err)
	}

	// 4. Store the listing
	listing, err := tx.CreateListing(ctx, domain.Listing{
		Item:       item,
		Price:      price,
		SellerID:   seller.ID,
		SellerName: seller.DisplayName(),
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateListingFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Info(LogMsgItemListed, "user_id", seller.ID, "listing_id", listing.ID, "item", item.TemplateID, "price", price)
	s.finish(ctx, newlyCreated(created, seller), event.NewListingCreatedEvent(ctx, listing))
	return &listing, nil
}

func newlyCreated(created bool, u *domain.User) []*domain.User {
	if !created {
		return nil
	}
	return []*domain.User{u}
}
