package lootbox

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PhoneTycoon_Go/internal/database/memory"
	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/testing/eventtest"
	"github.com/osse101/PhoneTycoon_Go/internal/user"
)

type fakeCatalog struct {
	cases []domain.Case
}

func (f *fakeCatalog) Cases() []domain.Case { return f.cases }

func (f *fakeCatalog) Case(id int) (domain.Case, error) {
	for _, c := range f.cases {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Case{}, domain.ErrCaseNotFound
}

var phoneX = domain.ItemTemplate{ID: "phone_x", Name: "Phone X", Rarity: domain.RarityCommon, Value: 40}

func newTestCatalog() *fakeCatalog {
	return &fakeCatalog{cases: []domain.Case{
		{ID: 1, Name: "Basic", Price: 50, Pool: []domain.PoolEntry{{Item: phoneX, Weight: 1.0}}},
		{ID: 2, Name: "Premium", Price: 200, Pool: []domain.PoolEntry{
			{Item: domain.ItemTemplate{ID: "p1", Name: "Pixel", Rarity: domain.RarityRare}, Weight: 0.7},
			{Item: domain.ItemTemplate{ID: "p2", Name: "Galaxy", Rarity: domain.RarityEpic}, Weight: 0.3},
		}},
		{ID: 3, Name: "Whale", Price: 5000, Pool: []domain.PoolEntry{{Item: phoneX, Weight: 1}}},
	}}
}

type fixture struct {
	svc   *service
	users user.Service
	store *memory.Store
	rec   *eventtest.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	rec := eventtest.NewRecorder()
	users := user.NewService(store, rec, user.Config{
		StartingBalance: domain.DefaultStartingBalance,
		Starter:         domain.ItemTemplate{ID: domain.StarterItemID, Name: "Samsung Galaxy A01", Rarity: domain.RarityCommon},
	})
	svc, err := newService(store, newTestCatalog(), users, rec, fixed(0.5))
	require.NoError(t, err)
	return &fixture{svc: svc, users: users, store: store, rec: rec}
}

func TestOpenCase_HappyPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.OpenCase(ctx, "u1", 1)

	require.NoError(t, err)
	assert.Equal(t, "Phone X", res.Prize.Name)
	assert.Equal(t, domain.RarityCommon, res.Prize.Rarity)
	assert.NotEmpty(t, res.Prize.ID)
	assert.Equal(t, int64(950), res.NewBalance)

	inv, err := f.users.GetInventory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, inv, 2)
	assert.Equal(t, res.Prize.ID, inv[1].ID)

	opened := f.rec.OfType(event.CaseOpened)
	require.Len(t, opened, 1)
	payload, err := event.DecodePayload[event.CaseOpenedPayloadV1](opened[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(950), payload.NewBalance)
	assert.Equal(t, "phone_x", payload.TemplateID)
	assert.Len(t, f.rec.OfType(event.UserCreated), 1)
}

func TestOpenCase_FreshInstanceIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		res, err := f.svc.OpenCase(ctx, "u1", 1)
		require.NoError(t, err)
		assert.False(t, seen[res.Prize.ID], "duplicate instance id")
		seen[res.Prize.ID] = true
	}
}

func TestOpenCase_UsesSelector(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.selector = NewSelector(fixed(0.9))
	res, err := f.svc.OpenCase(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, "p2", res.Prize.TemplateID)
	assert.Equal(t, int64(800), res.NewBalance)
}

func TestOpenCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		caseID  int
		wantErr error
	}{
		{"unknown case", "u1", 99, domain.ErrNotFound},
		{"insufficient funds", "u1", 3, domain.ErrInsufficientFunds},
		{"invalid user", "", 1, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			_, err := f.svc.OpenCase(ctx, tt.userID, tt.caseID)
			assert.ErrorIs(t, err, tt.wantErr)

			// nothing half-applied
			stats, err := f.store.Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, stats.Users)
			assert.Empty(t, f.rec.Events())
		})
	}
}

func TestOpenCase_InsufficientFundsKeepsState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before, err := f.users.GetUser(ctx, "u1")
	require.NoError(t, err)

	_, err = f.svc.OpenCase(ctx, "u1", 3)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	after, err := f.users.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, before.Signals, after.Signals)
	inv, err := f.users.GetInventory(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, inv, 1)
}

func TestOpenCase_DrainsBalanceExactly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 1000 / 50 = 20 openings, the 21st fails
	for i := 0; i < 20; i++ {
		_, err := f.svc.OpenCase(ctx, "u1", 1)
		require.NoError(t, err)
	}
	_, err := f.svc.OpenCase(ctx, "u1", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	u, err := f.users.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.Signals)
}

func TestOpenCase_Concurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.OpenCase(ctx, "u1", 1); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, successes)
	u, err := f.users.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.Signals)
}

func TestListCasesAndOdds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := f.svc.ListCases(ctx)
	require.Len(t, cases, 3)
	assert.Equal(t, "Basic", cases[0].Name)

	odds, err := f.svc.GetCaseOdds(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, odds.Case.ID)
	require.Len(t, odds.Chances, 2)
	assert.InDelta(t, 70.0, odds.Chances[0].Percent, 1e-9)

	_, err = f.svc.GetCaseOdds(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
}

func TestNewService_RejectsEmptyPool(t *testing.T) {
	catalog := &fakeCatalog{cases: []domain.Case{{ID: 7, Name: "Empty", Price: 1}}}
	_, err := NewService(memory.NewStore(), catalog, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("case %d", 7))
}
