package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/repository"
)

var _ repository.Tx = (*Tx)(nil)

// Tx is an open transaction on a Store. It records an undo step for every
// mutation so Rollback can restore the exact prior state.
type Tx struct {
	store  *Store
	undo   []func()
	closed bool
}

// Commit keeps all changes and releases the store
func (t *Tx) Commit(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true
	t.undo = nil
	t.store.release()
	return nil
}

// Rollback reverts all changes made in this transaction and releases the store
func (t *Tx) Rollback(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.closed = true
	t.undo = nil
	t.store.release()
	return nil
}

func (t *Tx) check() error {
	if t.closed {
		return domain.ErrTxClosed
	}
	return nil
}

// ---- Accounts ----

func (t *Tx) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	u, ok := t.store.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (t *Tx) CreateUser(ctx context.Context, user domain.User) error {
	if err := t.check(); err != nil {
		return err
	}
	if _, ok := t.store.users[user.ID]; ok {
		return fmt.Errorf("%s: %s", ErrMsgUserAlreadyExists, user.ID)
	}
	u := user
	t.store.users[user.ID] = &u
	t.undo = append(t.undo, func() { delete(t.store.users, user.ID) })
	return nil
}

func (t *Tx) UpdateProfile(ctx context.Context, userID string, profile domain.Profile) (*domain.User, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	u, ok := t.store.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	prev := *u
	u.FirstName = profile.FirstName
	u.Username = profile.Username
	u.PhotoURL = profile.PhotoURL
	t.undo = append(t.undo, func() { *u = prev })

	cp := *u
	return &cp, nil
}

func (t *Tx) AdjustBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	u, ok := t.store.users[userID]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	next := u.Signals + delta
	if next < 0 {
		return u.Signals, fmt.Errorf("%w: %s", domain.ErrInsufficientFunds, ErrMsgNegativeBalance)
	}
	prev := u.Signals
	u.Signals = next
	t.undo = append(t.undo, func() { u.Signals = prev })
	return next, nil
}

// ---- Inventories ----

func (t *Tx) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	items := t.store.inventories[userID]
	out := make([]domain.InventoryItem, len(items))
	copy(out, items)
	return out, nil
}

func (t *Tx) AddItem(ctx context.Context, userID string, item domain.InventoryItem) error {
	if err := t.check(); err != nil {
		return err
	}
	t.store.inventories[userID] = append(t.store.inventories[userID], item)
	t.undo = append(t.undo, func() {
		items := t.store.inventories[userID]
		t.store.inventories[userID] = items[:len(items)-1]
	})
	return nil
}

func (t *Tx) RemoveItem(ctx context.Context, userID, itemID string) (domain.InventoryItem, error) {
	if err := t.check(); err != nil {
		return domain.InventoryItem{}, err
	}
	items := t.store.inventories[userID]
	idx := slices.IndexFunc(items, func(it domain.InventoryItem) bool { return it.ID == itemID })
	if idx < 0 {
		return domain.InventoryItem{}, domain.ErrItemNotFound
	}
	removed := items[idx]
	t.store.inventories[userID] = slices.Delete(slices.Clone(items), idx, idx+1)
	t.undo = append(t.undo, func() {
		t.store.inventories[userID] = slices.Insert(t.store.inventories[userID], idx, removed)
	})
	return removed, nil
}

// ---- Listings ----

func (t *Tx) CreateListing(ctx context.Context, listing domain.Listing) (domain.Listing, error) {
	if err := t.check(); err != nil {
		return domain.Listing{}, err
	}
	// Ids are never reused, even when the creating transaction rolls back
	listing.ID = t.store.lastListingID.Add(1)

	l := listing
	t.store.listings[l.ID] = &l
	seller := t.store.bySeller[l.SellerID]
	if seller == nil {
		seller = make(map[int64]struct{})
		t.store.bySeller[l.SellerID] = seller
	}
	seller[l.ID] = struct{}{}

	t.undo = append(t.undo, func() { t.unindex(l.ID, l.SellerID) })
	return listing, nil
}

func (t *Tx) GetListing(ctx context.Context, listingID int64) (*domain.Listing, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	l, ok := t.store.listings[listingID]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	cp := *l
	return &cp, nil
}

func (t *Tx) DeleteListing(ctx context.Context, listingID int64) error {
	if err := t.check(); err != nil {
		return err
	}
	l, ok := t.store.listings[listingID]
	if !ok {
		return domain.ErrListingNotFound
	}
	t.unindex(listingID, l.SellerID)
	t.undo = append(t.undo, func() {
		t.store.listings[l.ID] = l
		seller := t.store.bySeller[l.SellerID]
		if seller == nil {
			seller = make(map[int64]struct{})
			t.store.bySeller[l.SellerID] = seller
		}
		seller[l.ID] = struct{}{}
	})
	return nil
}

func (t *Tx) GetListings(ctx context.Context) ([]domain.Listing, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	out := make([]domain.Listing, 0, len(t.store.listings))
	for _, l := range t.store.listings {
		out = append(out, *l)
	}
	return out, nil
}

func (t *Tx) GetListingsBySeller(ctx context.Context, sellerID string) ([]domain.Listing, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	ids := t.store.bySeller[sellerID]
	out := make([]domain.Listing, 0, len(ids))
	for id := range ids {
		out = append(out, *t.store.listings[id])
	}
	return out, nil
}

func (t *Tx) unindex(listingID int64, sellerID string) {
	delete(t.store.listings, listingID)
	if seller := t.store.bySeller[sellerID]; seller != nil {
		delete(seller, listingID)
		if len(seller) == 0 {
			delete(t.store.bySeller, sellerID)
		}
	}
}
