package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.UserCreated,
		event.CaseOpened,
		event.ListingCreated,
		event.ListingSold,
		event.ListingCancelled,
		event.SignalsGranted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.UserCreated:
		UsersCreated.Inc()

	case event.CaseOpened:
		p, err := event.DecodePayload[event.CaseOpenedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnknownPayload, "type", evt.Type)
			return nil
		}
		CasesOpened.WithLabelValues(strconv.Itoa(p.CaseID), string(p.Rarity)).Inc()
		SignalsSpentOnCases.Add(float64(p.Price))

	case event.ListingCreated, event.ListingSold, event.ListingCancelled:
		p, err := event.DecodePayload[event.ListingPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnknownPayload, "type", evt.Type)
			return nil
		}
		switch evt.Type {
		case event.ListingCreated:
			ListingsCreated.WithLabelValues(string(p.Rarity)).Inc()
		case event.ListingSold:
			ListingsSold.WithLabelValues(string(p.Rarity)).Inc()
			MarketVolume.Add(float64(p.Price))
		default:
			ListingsCancelled.Inc()
		}

	case event.SignalsGranted:
		p, err := event.DecodePayload[event.SignalsGrantedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnknownPayload, "type", evt.Type)
			return nil
		}
		SignalsGranted.Add(float64(p.Amount))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
