// Package memory is the process-local game state store. All state lives for
// the lifetime of the process; a restart resets every account, inventory and
// listing.
package memory

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/repository"
)

// Store holds users, inventories and listings behind a single exclusive scope.
// Every read or write goes through a transaction obtained from BeginTx.
type Store struct {
	// sem has capacity one; holding the token is holding the store
	sem chan struct{}

	users       map[string]*domain.User
	inventories map[string][]domain.InventoryItem
	listings    map[int64]*domain.Listing
	bySeller    map[string]map[int64]struct{}

	lastListingID atomic.Int64
}

var _ repository.Store = (*Store)(nil)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		sem:         make(chan struct{}, 1),
		users:       make(map[string]*domain.User),
		inventories: make(map[string][]domain.InventoryItem),
		listings:    make(map[int64]*domain.Listing),
		bySeller:    make(map[string]map[int64]struct{}),
	}
}

// BeginTx waits for exclusive access to the store.
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	select {
	case s.sem <- struct{}{}:
		return &Tx{store: s}, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, ctx.Err())
	}
}

// Ping reports whether the store can be entered before ctx expires.
func (s *Store) Ping(ctx context.Context) error {
	tx, err := s.BeginTx(ctx)
	if err != nil {
		return err
	}
	return tx.Rollback(ctx)
}

// Stats is a point-in-time count of stored entities
type Stats struct {
	Users          int
	ActiveListings int
	Items          int
}

// Stats counts users, listings and inventory items.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
	defer func() { <-s.sem }()

	st := Stats{
		Users:          len(s.users),
		ActiveListings: len(s.listings),
	}
	for _, items := range s.inventories {
		st.Items += len(items)
	}
	return st, nil
}

func (s *Store) release() {
	<-s.sem
}
