// Package hunger computes hunger decay and abandonment for the active animal.
package hunger

import (
	"math"

	"github.com/nt-jambaa/toktok-mini-game/internal/clock"
	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
	"github.com/nt-jambaa/toktok-mini-game/internal/growth"
)

// Hunger bar thresholds, in percent
const (
	StarvingBelow = 20.0
	HungryBelow   = 50.0
	HealthyAbove  = 60.0
	WarningAbove  = 30.0
)

// Engine derives hunger values from a game state
type Engine struct {
	clock clock.Clock
}

// NewEngine creates a hunger engine
func NewEngine(clk clock.Clock) *Engine {
	return &Engine{clock: clk}
}

// Percent returns how full the animal is, from 100 (just fed) to 0 (gone)
func (e *Engine) Percent(state domain.GameState, scale float64) float64 {
	elapsed := float64(e.clock.Now().UnixMilli()-state.LastFedAt) / 1000 * growth.NormalizeScale(scale)
	fraction := 1 - elapsed/domain.HungerTimeoutSeconds

	switch {
	case math.IsNaN(fraction) || fraction < 0:
		return 0
	case fraction > 1:
		return 100
	default:
		return fraction * 100
	}
}

// HasLeft reports whether the animal ran away from hunger
func (e *Engine) HasLeft(state domain.GameState, scale float64) bool {
	return e.Percent(state, scale) <= 0
}

// Feed returns state with the hunger clock reset to now
func (e *Engine) Feed(state domain.GameState) domain.GameState {
	state.LastFedAt = e.clock.Now().UnixMilli()
	return state
}

// StatusText describes a hunger percentage
func StatusText(percent float64) string {
	switch {
	case percent <= 0:
		return domain.MsgHungerLeft
	case percent < StarvingBelow:
		return domain.MsgHungerStarving
	case percent < HungryBelow:
		return domain.MsgHungerHungry
	default:
		return domain.MsgHungerFull
	}
}

// ColorTier buckets a hunger percentage into a bar colour band
func ColorTier(percent float64) domain.HungerTier {
	switch {
	case percent > HealthyAbove:
		return domain.HungerTierHealthy
	case percent > WarningAbove:
		return domain.HungerTierWarning
	default:
		return domain.HungerTierCritical
	}
}
