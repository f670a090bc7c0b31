package market

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/repository"
)

func (s *service) ListActive(ctx context.Context, excludeUserID string) ([]domain.Listing, error) {
	all, err := s.readListings(ctx, func(tx repository.Tx) ([]domain.Listing, error) {
		return tx.GetListings(ctx)
	})
	if err != nil {
		return nil, err
	}

	out := slices.DeleteFunc(all, func(l domain.Listing) bool {
		return excludeUserID != "" && l.SellerID == excludeUserID
	})
	sortNewestFirst(out)
	return out, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]domain.Listing, error) {
	mine, err := s.readListings(ctx, func(tx repository.Tx) ([]domain.Listing, error) {
		return tx.GetListingsBySeller(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(mine)
	return mine, nil
}

// readListings runs a read-only query in its own transaction.
func (s *service) readListings(ctx context.Context, query func(tx repository.Tx) ([]domain.Listing, error)) ([]domain.Listing, error) {
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	listings, err := query(tx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetListingsFailed, err)
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	return listings, nil
}

// sortNewestFirst orders by creation time, breaking ties by the higher id.
func sortNewestFirst(listings []domain.Listing) {
	slices.SortFunc(listings, func(a, b domain.Listing) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
