package user

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PhoneTycoon_Go/internal/database/memory"
	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/testing/eventtest"
)

var testStarter = domain.ItemTemplate{
	ID:     domain.StarterItemID,
	Name:   "Samsung Galaxy A01",
	Rarity: domain.RarityCommon,
	Value:  20,
}

func newTestService(t *testing.T) (*service, *memory.Store, *eventtest.Recorder) {
	t.Helper()
	store := memory.NewStore()
	rec := eventtest.NewRecorder()
	svc := NewService(store, rec, Config{
		StartingBalance: domain.DefaultStartingBalance,
		Starter:         testStarter,
	}).(*service)
	ids := 0
	svc.newID = func() string {
		ids++
		return "item-" + strings.Repeat("x", ids)
	}
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, store, rec
}

func TestGetUser_CreatesOnFirstAccess(t *testing.T) {
	svc, _, rec := newTestService(t)
	ctx := context.Background()

	user, err := svc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, domain.DefaultStartingBalance, user.Signals)

	inv, err := svc.GetInventory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, inv, 1)
	assert.Equal(t, domain.StarterItemID, inv[0].TemplateID)
	assert.Equal(t, "Samsung Galaxy A01", inv[0].Name)

	created := rec.OfType(event.UserCreated)
	require.Len(t, created, 1)
	payload, err := event.DecodePayload[event.UserCreatedPayloadV1](created[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "u1", payload.UserID)
	assert.Equal(t, domain.StarterItemID, payload.StarterItemID)
}

func TestGetUser_Idempotent(t *testing.T) {
	svc, store, rec := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.GetUser(ctx, "u1")
		require.NoError(t, err)
	}

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Users)
	assert.Equal(t, 1, stats.Items)
	assert.Len(t, rec.OfType(event.UserCreated), 1)
}

func TestGetInventory_UnknownUserGetsStarter(t *testing.T) {
	svc, _, _ := newTestService(t)

	inv, err := svc.GetInventory(context.Background(), "fresh")

	require.NoError(t, err)
	assert.Len(t, inv, 1)
}

func TestInvalidUserID(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"too long", strings.Repeat("a", domain.MaxUserIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetUser(ctx, tt.id)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			_, err = svc.GetInventory(ctx, tt.id)
			assert.ErrorIs(t, err, domain.ErrInvalidUserID)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	photo := "https://t.me/i/userpic/1.jpg"

	user, err := svc.UpdateProfile(ctx, "u1", domain.Profile{FirstName: "Anna", Username: "anna", PhotoURL: &photo})
	require.NoError(t, err)
	assert.Equal(t, "Anna", user.FirstName)
	assert.Equal(t, "anna", user.Username)
	require.NotNil(t, user.PhotoURL)
	assert.Equal(t, photo, *user.PhotoURL)
	assert.Equal(t, domain.DefaultStartingBalance, user.Signals)

	// empty fields keep what is stored
	user, err = svc.UpdateProfile(ctx, "u1", domain.Profile{Username: "anna_k"})
	require.NoError(t, err)
	assert.Equal(t, "Anna", user.FirstName)
	assert.Equal(t, "anna_k", user.Username)
	assert.NotNil(t, user.PhotoURL)

	_, err = svc.UpdateProfile(ctx, "u1", domain.Profile{FirstName: strings.Repeat("n", MaxFirstNameLength+1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGrantSignals(t *testing.T) {
	svc, _, rec := newTestService(t)
	ctx := context.Background()

	user, err := svc.GrantSignals(ctx, "u1", 250)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), user.Signals)

	again, err := svc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1250), again.Signals)

	granted := rec.OfType(event.SignalsGranted)
	require.Len(t, granted, 1)
	payload, err := event.DecodePayload[event.SignalsGrantedPayloadV1](granted[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), payload.NewBalance)
}

func TestGrantSignals_InvalidAmount(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	for _, amount := range []int64{0, -5, domain.MaxGrantAmount + 1} {
		_, err := svc.GrantSignals(ctx, "u1", amount)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Users)
}

func TestEnsureUser_RolledBackWithCaller(t *testing.T) {
	svc, store, rec := newTestService(t)
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	user, created, err := svc.EnsureUser(ctx, tx, "u1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "u1", user.ID)
	require.NoError(t, tx.Rollback(ctx))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Users)
	assert.Equal(t, 0, stats.Items)
	assert.Empty(t, rec.Events())
}

func TestValidateUserID(t *testing.T) {
	assert.NoError(t, ValidateUserID("123456789"))
	assert.NoError(t, ValidateUserID(strings.Repeat("й", domain.MaxUserIDLength)))
	assert.Error(t, ValidateUserID(""))
}
