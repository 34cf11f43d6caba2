// Package growth computes time-scaled growth progress for the active animal.
package growth

import (
	"fmt"
	"math"

	"github.com/nt-jambaa/toktok-mini-game/internal/clock"
	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
)

// AnimalLookup resolves animal definitions by key
type AnimalLookup interface {
	Get(key string) (domain.Animal, bool)
}

// Engine derives progress values from a game state. It holds no game state of its own.
type Engine struct {
	animals AnimalLookup
	clock   clock.Clock
}

// NewEngine creates a growth engine
func NewEngine(animals AnimalLookup, clk clock.Clock) *Engine {
	return &Engine{animals: animals, clock: clk}
}

// Progress returns growth completion in [0, 100]. Unknown animals report 0.
func (e *Engine) Progress(state domain.GameState, scale float64) float64 {
	animal, ok := e.animals.Get(state.AnimalType)
	if !ok {
		return 0
	}

	fraction := e.effectiveSeconds(state, scale) / float64(animal.DurationSeconds)
	return clamp01(fraction) * 100
}

// RemainingTimeText renders the real time left until harvest, e.g. "3h remaining".
// Unknown animals report an empty string.
func (e *Engine) RemainingTimeText(state domain.GameState, scale float64) string {
	animal, ok := e.animals.Get(state.AnimalType)
	if !ok {
		return ""
	}

	remaining := float64(animal.DurationSeconds) - e.effectiveSeconds(state, scale)
	if remaining <= 0 {
		return domain.MsgReadyToHarvest
	}

	return FormatRemaining(remaining / NormalizeScale(scale))
}

// IsReadyToHarvest reports whether growth has reached 100%
func (e *Engine) IsReadyToHarvest(state domain.GameState, scale float64) bool {
	return e.Progress(state, scale) >= 100
}

// ApplyOrderSpeedUp returns state with one order's worth of growth added.
// The reduction is not capped; Progress clamps instead.
func (e *Engine) ApplyOrderSpeedUp(state domain.GameState) domain.GameState {
	state.BonusReductionSeconds += domain.OrderSpeedUpSeconds
	state.OrdersPlaced++
	return state
}

func (e *Engine) effectiveSeconds(state domain.GameState, scale float64) float64 {
	elapsed := float64(e.clock.Now().UnixMilli()-state.StartTime) / 1000
	return elapsed*NormalizeScale(scale) + state.BonusReductionSeconds
}

// FormatRemaining renders real seconds in the coarsest whole unit, rounding up
func FormatRemaining(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf(domain.MsgRemainingFmt, int64(math.Ceil(seconds)), "s")
	case seconds < 3600:
		return fmt.Sprintf(domain.MsgRemainingFmt, int64(math.Ceil(seconds/60)), "m")
	case seconds < domain.SecondsPerDay:
		return fmt.Sprintf(domain.MsgRemainingFmt, int64(math.Ceil(seconds/3600)), "h")
	default:
		return fmt.Sprintf(domain.MsgRemainingFmt, int64(math.Ceil(seconds/domain.SecondsPerDay)), "d")
	}
}

// NormalizeScale maps non-positive or non-finite scales to real time
func NormalizeScale(scale float64) float64 {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return domain.TimeScaleReal
	}
	return scale
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
