package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Metadata  Metadata    `json:"metadata,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	UserCreated      Type = domain.EventTypeUserCreated
	CaseOpened       Type = domain.EventTypeCaseOpened
	ListingCreated   Type = domain.EventTypeListingCreated
	ListingSold      Type = domain.EventTypeListingSold
	ListingCancelled Type = domain.EventTypeListingCancelled
	SignalsGranted   Type = domain.EventTypeSignalsGranted
)

// Typed event payloads

// UserCreatedPayloadV1 is published when an account is lazily created
type UserCreatedPayloadV1 struct {
	UserID          string `json:"user_id"`
	StartingBalance int64  `json:"starting_balance"`
	StarterItemID   string `json:"starter_item_id"`
}

// CaseOpenedPayloadV1 is published after a case opening commits
type CaseOpenedPayloadV1 struct {
	UserID     string        `json:"user_id"`
	CaseID     int           `json:"case_id"`
	CaseName   string        `json:"case_name"`
	Price      int64         `json:"price"`
	Rarity     domain.Rarity `json:"rarity"`
	ItemID     string        `json:"item_id"`
	TemplateID string        `json:"template_id"`
	ItemName   string        `json:"item_name"`
	NewBalance int64         `json:"new_balance"`
}

// ListingPayloadV1 describes a listing lifecycle change. BuyerID is set only
// for sales.
type ListingPayloadV1 struct {
	ListingID int64         `json:"listing_id"`
	SellerID  string        `json:"seller_id"`
	BuyerID   string        `json:"buyer_id,omitempty"`
	ItemID    string        `json:"item_id"`
	ItemName  string        `json:"item_name"`
	Rarity    domain.Rarity `json:"rarity"`
	Price     int64         `json:"price"`
}

// SignalsGrantedPayloadV1 is published when an admin credits a user
type SignalsGrantedPayloadV1 struct {
	UserID     string `json:"user_id"`
	Amount     int64  `json:"amount"`
	NewBalance int64  `json:"new_balance"`
}

// Type-safe event constructors

func newEvent(ctx context.Context, t Type, payload interface{}, now time.Time) Event {
	evt := Event{
		Version:   EventSchemaVersion,
		Type:      t,
		Payload:   payload,
		Timestamp: now,
	}
	if id, ok := logger.RequestIDFromContext(ctx); ok {
		evt.Metadata = Metadata{MetadataKeyRequestID: id}
	}
	return evt
}

// NewUserCreatedEvent creates a user.created event
func NewUserCreatedEvent(ctx context.Context, user domain.User, starterItemID string) Event {
	return newEvent(ctx, UserCreated, UserCreatedPayloadV1{
		UserID:          user.ID,
		StartingBalance: user.Signals,
		StarterItemID:   starterItemID,
	}, user.CreatedAt)
}

// NewCaseOpenedEvent creates a case.opened event
func NewCaseOpenedEvent(ctx context.Context, userID string, c domain.Case, prize domain.InventoryItem, newBalance int64) Event {
	return newEvent(ctx, CaseOpened, CaseOpenedPayloadV1{
		UserID:     userID,
		CaseID:     c.ID,
		CaseName:   c.Name,
		Price:      c.Price,
		Rarity:     prize.Rarity,
		ItemID:     prize.ID,
		TemplateID: prize.TemplateID,
		ItemName:   prize.Name,
		NewBalance: newBalance,
	}, prize.AcquiredAt)
}

func listingPayload(l domain.Listing, buyerID string) ListingPayloadV1 {
	return ListingPayloadV1{
		ListingID: l.ID,
		SellerID:  l.SellerID,
		BuyerID:   buyerID,
		ItemID:    l.Item.ID,
		ItemName:  l.Item.Name,
		Rarity:    l.Item.Rarity,
		Price:     l.Price,
	}
}

// NewListingCreatedEvent creates a listing.created event
func NewListingCreatedEvent(ctx context.Context, l domain.Listing) Event {
	return newEvent(ctx, ListingCreated, listingPayload(l, ""), l.CreatedAt)
}

// NewListingSoldEvent creates a listing.sold event
func NewListingSoldEvent(ctx context.Context, l domain.Listing, buyerID string, at time.Time) Event {
	return newEvent(ctx, ListingSold, listingPayload(l, buyerID), at)
}

// NewListingCancelledEvent creates a listing.cancelled event
func NewListingCancelledEvent(ctx context.Context, l domain.Listing, at time.Time) Event {
	return newEvent(ctx, ListingCancelled, listingPayload(l, ""), at)
}

// NewSignalsGrantedEvent creates a signals.granted event
func NewSignalsGrantedEvent(ctx context.Context, userID string, amount, newBalance int64, at time.Time) Event {
	return newEvent(ctx, SignalsGranted, SignalsGrantedPayloadV1{
		UserID:     userID,
		Amount:     amount,
		NewBalance: newBalance,
	}, at)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the narrow dependency services use to emit events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously. A failing or panicking handler
// does not stop the remaining ones; all failures are joined into the result.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := safeCall(ctx, handler, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

func safeCall(ctx context.Context, handler Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgHandlerPanicked, "type", event.Type, "panic", r)
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return handler(ctx, event)
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
