package eventlog

import (
	"context"
	"time"

	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
)

// MarketEventTypes are the journal types shown as market history
var MarketEventTypes = []event.Type{event.ListingCreated, event.ListingSold, event.ListingCancelled}

// Service records completed game actions from the event bus
type Service interface {
	// Subscribe registers the event logger to listen to journaled event types
	Subscribe(bus event.Bus) error

	// Recent returns up to limit entries newest first, optionally narrowed to types
	Recent(ctx context.Context, limit int, types ...event.Type) ([]Entry, error)

	// CleanupOldEvents removes entries older than the retention period
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Subscribe registers event handlers for all journaled event types
func (s *service) Subscribe(bus event.Bus) error {
	bus.Subscribe(event.CaseOpened, s.handleEvent)
	for _, eventType := range MarketEventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent converts a typed payload into a journal entry
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	entry, ok := toEntry(evt)
	if !ok {
		log.Debug(LogMsgUnknownPayload, LogFieldType, evt.Type)
		return nil
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	if err := s.repo.LogEvent(ctx, entry); err != nil {
		return err
	}
	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldUserID, entry.UserID)
	return nil
}

func toEntry(evt event.Event) (Entry, bool) {
	switch evt.Type {
	case event.CaseOpened:
		p, err := event.DecodePayload[event.CaseOpenedPayloadV1](evt.Payload)
		if err != nil {
			return Entry{}, false
		}
		return Entry{
			Type:      evt.Type,
			UserID:    p.UserID,
			CaseName:  p.CaseName,
			ItemName:  p.ItemName,
			Rarity:    p.Rarity,
			Price:     p.Price,
			CreatedAt: evt.Timestamp,
		}, true
	case event.ListingCreated, event.ListingSold, event.ListingCancelled:
		p, err := event.DecodePayload[event.ListingPayloadV1](evt.Payload)
		if err != nil {
			return Entry{}, false
		}
		return Entry{
			Type:           evt.Type,
			UserID:         p.SellerID,
			CounterpartyID: p.BuyerID,
			ListingID:      p.ListingID,
			ItemName:       p.ItemName,
			Rarity:         p.Rarity,
			Price:          p.Price,
			CreatedAt:      evt.Timestamp,
		}, true
	}
	return Entry{}, false
}

func (s *service) Recent(ctx context.Context, limit int, types ...event.Type) ([]Entry, error) {
	return s.repo.GetEvents(ctx, EventFilter{Types: types, Limit: limit})
}

// CleanupOldEvents removes entries older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, s.now().Add(-retention))
}
