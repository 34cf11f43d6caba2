package metrics

import (
	"context"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
	"github.com/nt-jambaa/toktok-mini-game/internal/event"
	"github.com/nt-jambaa/toktok-mini-game/internal/logger"
)

// EventMetricsCollector subscribes to farm events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all farm events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.FarmTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.FarmStarted:
		payload, err := event.DecodePayload[domain.FarmStartedPayload](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		GamesStarted.WithLabelValues(payload.AnimalType).Inc()

	case event.FarmFed, event.FarmOrderPlaced:
		payload, err := event.DecodePayload[domain.FarmActionPayload](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		if evt.Type == event.FarmFed {
			Feeds.WithLabelValues(payload.AnimalType).Inc()
		} else {
			OrdersPlaced.WithLabelValues(payload.AnimalType).Inc()
		}

	case event.FarmReadyToHarvest, event.FarmAbandoned, event.FarmHarvested:
		payload, err := event.DecodePayload[domain.FarmEndedPayload](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		switch evt.Type {
		case event.FarmReadyToHarvest:
			ReadyToHarvest.WithLabelValues(payload.AnimalType).Inc()
		case event.FarmAbandoned:
			AnimalsAbandoned.WithLabelValues(payload.AnimalType).Inc()
		default:
			Harvests.WithLabelValues(payload.AnimalType).Inc()
			ExperienceAwarded.Add(float64(payload.ExperienceEarned))
		}

	case event.FarmTick:
		snapshot, err := event.DecodePayload[domain.FarmSnapshot](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		PollTicks.WithLabelValues(string(snapshot.Outcome)).Inc()
		GrowthProgress.Set(snapshot.Progress)
		HungerPercent.Set(snapshot.HungerPercent)
		TimeScale.Set(snapshot.TimeScale)

	case event.TimeModeChanged:
		payload, err := event.DecodePayload[domain.TimeModeChangedPayload](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		TimeScale.Set(payload.Scale)
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// unexpected counts a malformed payload without failing the publish
func (e *EventMetricsCollector) unexpected(ctx context.Context, evt event.Event, err error) error {
	EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
	return nil
}
