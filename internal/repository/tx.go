package repository

import (
	"context"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
)

// Store opens transactions over the shared game state.
type Store interface {
	// BeginTx blocks until the caller holds the store's exclusive scope or ctx is done.
	BeginTx(ctx context.Context) (Tx, error)
	Ping(ctx context.Context) error
}

// AccountTx covers user accounts and balances
type AccountTx interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.User) error
	UpdateProfile(ctx context.Context, userID string, profile domain.Profile) (*domain.User, error)
	// AdjustBalance adds delta to the user's signals and returns the new balance.
	// A result below zero fails with domain.ErrInsufficientFunds and changes nothing.
	AdjustBalance(ctx context.Context, userID string, delta int64) (int64, error)
}

// InventoryTx covers per-user item collections
type InventoryTx interface {
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error)
	AddItem(ctx context.Context, userID string, item domain.InventoryItem) error
	RemoveItem(ctx context.Context, userID, itemID string) (domain.InventoryItem, error)
}

// ListingTx covers market listings
type ListingTx interface {
	// CreateListing assigns the next listing id and stores the listing.
	CreateListing(ctx context.Context, listing domain.Listing) (domain.Listing, error)
	GetListing(ctx context.Context, listingID int64) (*domain.Listing, error)
	DeleteListing(ctx context.Context, listingID int64) error
	GetListings(ctx context.Context) ([]domain.Listing, error)
	GetListingsBySeller(ctx context.Context, sellerID string) ([]domain.Listing, error)
}

// Tx defines the interface for transactional operations
type Tx interface {
	AccountTx
	InventoryTx
	ListingTx
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
