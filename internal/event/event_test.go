package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}
	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody.listens"}))
}

func TestMemoryBus_PublishErrorDoesNotStopOthers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	reached := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		panic("boom")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		reached = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "encountered 2 errors")
	assert.Contains(t, err.Error(), "handler error")
	assert.Contains(t, err.Error(), "boom")
	assert.True(t, reached)
}

func TestConstructors_CarryRequestID(t *testing.T) {
	ctx := logger.WithRequestID(context.Background(), "req-1")
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	listing := domain.Listing{
		ID:        9,
		SellerID:  "s",
		Price:     120,
		Item:      domain.InventoryItem{ID: "it", Name: "iPhone 13", Rarity: domain.RarityUncommon},
		CreatedAt: at,
	}

	evt := NewListingSoldEvent(ctx, listing, "b", at)

	assert.Equal(t, ListingSold, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "req-1", evt.GetMetadataValue(MetadataKeyRequestID))
	assert.Equal(t, at, evt.Timestamp)

	payload, err := DecodePayload[ListingPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(9), payload.ListingID)
	assert.Equal(t, "b", payload.BuyerID)
	assert.Equal(t, int64(120), payload.Price)

	plain := NewListingCreatedEvent(context.Background(), listing)
	assert.Nil(t, plain.GetMetadataValue(MetadataKeyRequestID))
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"user_id": "u1", "amount": 50, "new_balance": 1050}

	p, err := DecodePayload[SignalsGrantedPayloadV1](raw)

	require.NoError(t, err)
	assert.Equal(t, SignalsGrantedPayloadV1{UserID: "u1", Amount: 50, NewBalance: 1050}, p)
}

func TestDecodePayload_Pointer(t *testing.T) {
	in := &SignalsGrantedPayloadV1{UserID: "u2", Amount: 5, NewBalance: 15}

	p, err := DecodePayload[SignalsGrantedPayloadV1](in)

	require.NoError(t, err)
	assert.Equal(t, *in, p)
}

func TestDecodePayload_Nil(t *testing.T) {
	_, err := DecodePayload[SignalsGrantedPayloadV1](nil)
	require.Error(t, err)

	var missing *SignalsGrantedPayloadV1
	_, err = DecodePayload[SignalsGrantedPayloadV1](missing)
	require.Error(t, err)
}
