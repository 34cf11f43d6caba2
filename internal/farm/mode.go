package farm

import (
	"context"
	"fmt"
	"sync"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
	"github.com/nt-jambaa/toktok-mini-game/internal/event"
	"github.com/nt-jambaa/toktok-mini-game/internal/logger"
)

// ModeSwitch holds the demo/real time mode the driver polls with
type ModeSwitch struct {
	mu   sync.RWMutex
	mode domain.TimeMode
	bus  event.Bus
}

// NewModeSwitch creates a switch starting in mode
func NewModeSwitch(mode domain.TimeMode, bus event.Bus) (*ModeSwitch, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimeMode, mode)
	}
	return &ModeSwitch{mode: mode, bus: bus}, nil
}

// Mode returns the current mode
func (m *ModeSwitch) Mode() domain.TimeMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// Scale returns the time scale of the current mode
func (m *ModeSwitch) Scale() float64 {
	return m.Mode().Scale()
}

// Set changes the mode and announces it
func (m *ModeSwitch) Set(ctx context.Context, mode domain.TimeMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTimeMode, mode)
	}

	m.mu.Lock()
	previous := m.mode
	m.mode = mode
	m.mu.Unlock()

	if previous == mode {
		return nil
	}

	logger.FromContext(ctx).Info(LogMsgTimeModeChanged, "from", previous, "to", mode, "scale", mode.Scale())
	if m.bus != nil {
		if err := m.bus.Publish(ctx, event.NewTimeModeChangedEvent(mode)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, logger.AttrKeyEventType, event.TimeModeChanged, "error", err)
		}
	}
	return nil
}
