package sse

import (
	"context"

	"github.com/nt-jambaa/toktok-mini-game/internal/event"
	"github.com/nt-jambaa/toktok-mini-game/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every farm event type to connected clients
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.FarmTypes))
	for _, eventType := range event.FarmTypes {
		s.bus.Subscribe(eventType, s.forward)
		types = append(types, string(eventType))
	}

	logger.FromContext(context.Background()).Info(LogMsgSubscribed, "types", types)
}

// forward relays the payload unchanged; farm payloads are already JSON-ready structs
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)

	if evt.Type != event.FarmTick {
		logger.FromContext(ctx).Debug(LogMsgEventBroadcast, logger.AttrKeyEventType, evt.Type)
	}
	return nil
}
