package ledger_bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/osse101/PhoneTycoon_Go/internal/catalog"
	"github.com/osse101/PhoneTycoon_Go/internal/database/memory"
	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/lootbox"
	"github.com/osse101/PhoneTycoon_Go/internal/market"
	"github.com/osse101/PhoneTycoon_Go/internal/user"
)

type fixture struct {
	users   user.Service
	lootbox lootbox.Service
	market  market.Service
}

// newFixture wires the real services over the in-memory store with a bus
// that has no subscribers, so only ledger work is measured.
func newFixture(b *testing.B, startingBalance int64) *fixture {
	b.Helper()

	loader, err := catalog.NewLoader()
	if err != nil {
		b.Fatalf("catalog loader: %v", err)
	}
	cat, err := loader.Load("")
	if err != nil {
		b.Fatalf("catalog: %v", err)
	}

	store := memory.NewStore()
	bus := event.NewMemoryBus()
	users := user.NewService(store, bus, user.Config{StartingBalance: startingBalance, Starter: cat.Starter()})
	cases, err := lootbox.NewService(store, cat, users, bus)
	if err != nil {
		b.Fatalf("lootbox: %v", err)
	}
	return &fixture{users: users, lootbox: cases, market: market.NewService(store, users, bus)}
}

// BenchmarkOpenCase measures a full debit-draw-grant cycle for one account.
func BenchmarkOpenCase(b *testing.B) {
	f := newFixture(b, 1<<40)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.lootbox.OpenCase(ctx, "bench-user", 1); err != nil {
			b.Fatalf("OpenCase failed: %v", err)
		}
	}
}

// BenchmarkOpenCase_Parallel opens cases for many accounts at once, all
// contending on the single store lock.
func BenchmarkOpenCase_Parallel(b *testing.B) {
	f := newFixture(b, 1<<40)
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		userID := fmt.Sprintf("bench-%d", rand.Uint64())
		for pb.Next() {
			if _, err := f.lootbox.OpenCase(ctx, userID, 1); err != nil {
				b.Errorf("OpenCase failed: %v", err)
				return
			}
		}
	})
}

// BenchmarkSellBuy passes one phone back and forth between two accounts at
// a fixed price, so balances never drift.
func BenchmarkSellBuy(b *testing.B) {
	f := newFixture(b, domain.MaxListingPrice)
	ctx := context.Background()

	inv, err := f.users.GetInventory(ctx, "alice")
	if err != nil || len(inv) == 0 {
		b.Fatalf("seed inventory: %v", err)
	}
	itemID := inv[0].ID
	seller, buyer := "alice", "bob"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		listing, err := f.market.Sell(ctx, seller, itemID, 10)
		if err != nil {
			b.Fatalf("Sell failed: %v", err)
		}
		res, err := f.market.Buy(ctx, buyer, listing.ID)
		if err != nil {
			b.Fatalf("Buy failed: %v", err)
		}
		itemID = res.Item.ID
		seller, buyer = buyer, seller
	}
}

// BenchmarkListActive measures the newest-first market scan with a
// populated book.
func BenchmarkListActive(b *testing.B) {
	f := newFixture(b, 1<<40)
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		res, err := f.lootbox.OpenCase(ctx, "seller", 1)
		if err != nil {
			b.Fatalf("OpenCase failed: %v", err)
		}
		if _, err := f.market.Sell(ctx, "seller", res.Prize.ID, int64(i+1)); err != nil {
			b.Fatalf("Sell failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.market.ListActive(ctx, "viewer"); err != nil {
			b.Fatalf("ListActive failed: %v", err)
		}
	}
}
