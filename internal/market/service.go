package market

import (
	"context"
	"time"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/repository"
)

// BuyResult contains the result of a purchase
type BuyResult struct {
	NewBalance int64                `json:"newBalance"`
	Item       domain.InventoryItem `json:"item"`
}

// AccountProvider creates accounts lazily inside a transaction
type AccountProvider interface {
	EnsureUser(ctx context.Context, tx repository.Tx, userID string) (*domain.User, bool, error)
	AnnounceCreated(ctx context.Context, user *domain.User)
}

// Service defines the peer-to-peer market operations
type Service interface {
	Sell(ctx context.Context, userID, itemID string, price int64) (*domain.Listing, error)
	Buy(ctx context.Context, buyerID string, listingID int64) (*BuyResult, error)
	Cancel(ctx context.Context, userID string, listingID int64) (*domain.InventoryItem, error)
	// ListActive returns listings not owned by excludeUserID, newest first.
	ListActive(ctx context.Context, excludeUserID string) ([]domain.Listing, error)
	// ListMine returns userID's own listings, newest first.
	ListMine(ctx context.Context, userID string) ([]domain.Listing, error)
}

type service struct {
	store     repository.Store
	accounts  AccountProvider
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a new market service
func NewService(store repository.Store, accounts AccountProvider, publisher event.Publisher) Service {
	return &service{
		store:     store,
		accounts:  accounts,
		publisher: publisher,
		now:       time.Now,
	}
}

// finish announces lazily created accounts and then publishes evt. It must
// only be called after commit.
func (s *service) finish(ctx context.Context, created []*domain.User, evt event.Event) {
	for _, u := range created {
		s.accounts.AnnounceCreated(ctx, u)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, evt)
	}
}
