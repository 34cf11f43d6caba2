package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
	Metadata  Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Farm event types
const (
	FarmStarted        Type = domain.EventTypeFarmStarted
	FarmFed            Type = domain.EventTypeFarmFed
	FarmOrderPlaced    Type = domain.EventTypeFarmOrderPlaced
	FarmReadyToHarvest Type = domain.EventTypeFarmReadyToHarvest
	FarmAbandoned      Type = domain.EventTypeFarmAbandoned
	FarmHarvested      Type = domain.EventTypeFarmHarvested
	FarmTick           Type = domain.EventTypeFarmTick
	TimeModeChanged    Type = domain.EventTypeTimeModeChanged
)

// FarmTypes lists every farm event type, for subscribers that want all of them
var FarmTypes = []Type{
	FarmStarted,
	FarmFed,
	FarmOrderPlaced,
	FarmReadyToHarvest,
	FarmAbandoned,
	FarmHarvested,
	FarmTick,
	TimeModeChanged,
}

// New creates an event of the current schema version
func New(eventType Type, payload interface{}) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
}

// NewFarmStartedEvent creates a farm started event
func NewFarmStartedEvent(state domain.GameState) Event {
	return New(FarmStarted, domain.FarmStartedPayload{
		AnimalType: state.AnimalType,
		StartTime:  state.StartTime,
	})
}

// NewFarmActionEvent creates a feed or order event carrying the updated state
func NewFarmActionEvent(eventType Type, state domain.GameState) Event {
	return New(eventType, domain.FarmActionPayload{
		AnimalType:            state.AnimalType,
		LastFedAt:             state.LastFedAt,
		BonusReductionSeconds: state.BonusReductionSeconds,
		OrdersPlaced:          state.OrdersPlaced,
	})
}

// NewFarmEndedEvent creates a ready, abandoned or harvested event
func NewFarmEndedEvent(eventType Type, state domain.GameState, earned, total int) Event {
	return New(eventType, domain.FarmEndedPayload{
		AnimalType:       state.AnimalType,
		OrdersPlaced:     state.OrdersPlaced,
		ExperienceEarned: earned,
		TotalExperience:  total,
	})
}

// NewFarmTickEvent creates a tick event carrying the derived snapshot
func NewFarmTickEvent(snapshot domain.FarmSnapshot) Event {
	return New(FarmTick, snapshot)
}

// NewTimeModeChangedEvent creates a time mode change event
func NewTimeModeChangedEvent(mode domain.TimeMode) Event {
	return New(TimeModeChanged, domain.TimeModeChangedPayload{
		Mode:  mode,
		Scale: mode.Scale(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
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

// Publish runs every subscriber of the event type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
