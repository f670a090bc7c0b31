package market

import (
	"context"
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
)

var propertyUsers = []string{"alice", "bob", "carol"}

type ledgerSnapshot struct {
	balances map[string]int64
	items    map[string][]string
	listings []domain.Listing
}

func (f *fixture) snapshot(rt *rapid.T) ledgerSnapshot {
	ctx := context.Background()
	tx, err := f.store.BeginTx(ctx)
	if err != nil {
		rt.Fatalf("begin: %v", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	snap := ledgerSnapshot{balances: map[string]int64{}, items: map[string][]string{}}
	for _, id := range propertyUsers {
		u, err := tx.GetUser(ctx, id)
		if err != nil {
			rt.Fatalf("get user %s: %v", id, err)
		}
		snap.balances[id] = u.Signals
		inv, err := tx.GetInventory(ctx, id)
		if err != nil {
			rt.Fatalf("get inventory %s: %v", id, err)
		}
		for _, it := range inv {
			snap.items[id] = append(snap.items[id], it.ID)
		}
	}
	if snap.listings, err = tx.GetListings(ctx); err != nil {
		rt.Fatalf("get listings: %v", err)
	}
	return snap
}

func checkLedgerInvariants(rt *rapid.T, snap ledgerSnapshot, totalSignals int64, totalItems int) {
	var sum int64
	for id, b := range snap.balances {
		if b < 0 {
			rt.Fatalf("balance of %s is negative: %d", id, b)
		}
		sum += b
	}
	if sum != totalSignals {
		rt.Fatalf("signals not conserved: have %d, want %d", sum, totalSignals)
	}

	seen := map[string]string{}
	for owner, ids := range snap.items {
		for _, id := range ids {
			if prev, dup := seen[id]; dup {
				rt.Fatalf("item %s held by %s and %s", id, prev, owner)
			}
			seen[id] = owner
		}
	}
	for _, l := range snap.listings {
		if prev, dup := seen[l.Item.ID]; dup {
			rt.Fatalf("item %s held by %s and listing %d", l.Item.ID, prev, l.ID)
		}
		seen[l.Item.ID] = "listing"
	}
	if len(seen) != totalItems {
		rt.Fatalf("items not conserved: have %d, want %d", len(seen), totalItems)
	}
}

// TestLedgerProperties drives random sell/buy/cancel sequences and checks the
// ledger invariants after every step.
func TestLedgerProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := newFixture(t)
		ctx := context.Background()
		for _, id := range propertyUsers {
			if _, err := f.users.GetUser(ctx, id); err != nil {
				rt.Fatalf("create %s: %v", id, err)
			}
		}
		totalSignals := int64(len(propertyUsers)) * domain.DefaultStartingBalance
		totalItems := len(propertyUsers)
		removed := map[int64]bool{}
		var lastID int64

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			actor := rapid.SampledFrom(propertyUsers).Draw(rt, "actor")
			snap := f.snapshot(rt)

			switch rapid.IntRange(0, 2).Draw(rt, "op") {
			case 0:
				candidates := append([]string{"bogus"}, snap.items[actor]...)
				itemID := rapid.SampledFrom(candidates).Draw(rt, "item")
				price := rapid.Int64Range(-5, 1500).Draw(rt, "price")
				l, err := f.svc.Sell(ctx, actor, itemID, price)
				if err == nil {
					if l.ID <= lastID {
						rt.Fatalf("listing id %d not greater than %d", l.ID, lastID)
					}
					lastID = l.ID
				} else if !errors.Is(err, domain.ErrInvalidInput) && !errors.Is(err, domain.ErrNotFound) {
					rt.Fatalf("unexpected sell error: %v", err)
				}
			case 1:
				id := rapid.Int64Range(1, lastID+1).Draw(rt, "listing")
				_, err := f.svc.Buy(ctx, actor, id)
				if err == nil {
					if removed[id] {
						rt.Fatalf("listing %d bought after removal", id)
					}
					removed[id] = true
				} else if removed[id] && !errors.Is(err, domain.ErrNotFound) {
					rt.Fatalf("removed listing %d gave %v", id, err)
				}
			case 2:
				id := rapid.Int64Range(1, lastID+1).Draw(rt, "listing")
				_, err := f.svc.Cancel(ctx, actor, id)
				if err == nil {
					if removed[id] {
						rt.Fatalf("listing %d cancelled after removal", id)
					}
					removed[id] = true
				} else if removed[id] && !errors.Is(err, domain.ErrNotFound) {
					rt.Fatalf("removed listing %d gave %v", id, err)
				}
			}

			checkLedgerInvariants(rt, f.snapshot(rt), totalSignals, totalItems)
		}
	})
}

// TestSellThenCancelRestoresInventory checks that a sell/cancel round trip is
// invisible in the seller's inventory contents and balance.
func TestSellThenCancelRestoresInventory(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := newFixture(t)
		ctx := context.Background()
		price := rapid.Int64Range(1, domain.MaxListingPrice).Draw(rt, "price")

		inv, err := f.users.GetInventory(ctx, "alice")
		if err != nil {
			rt.Fatalf("inventory: %v", err)
		}
		l, err := f.svc.Sell(ctx, "alice", inv[0].ID, price)
		if err != nil {
			rt.Fatalf("sell: %v", err)
		}
		if _, err := f.svc.Cancel(ctx, "alice", l.ID); err != nil {
			rt.Fatalf("cancel: %v", err)
		}

		after, err := f.users.GetInventory(ctx, "alice")
		if err != nil {
			rt.Fatalf("inventory: %v", err)
		}
		if len(after) != 1 || after[0] != inv[0] {
			rt.Fatalf("inventory changed: %+v -> %+v", inv, after)
		}
		u, err := f.users.GetUser(ctx, "alice")
		if err != nil {
			rt.Fatalf("user: %v", err)
		}
		if u.Signals != domain.DefaultStartingBalance {
			rt.Fatalf("balance changed to %d", u.Signals)
		}
	})
}
