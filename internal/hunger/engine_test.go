package hunger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nt-jambaa/toktok-mini-game/internal/clock"
	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
)

var fedAt = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func setup() (*Engine, *clock.Manual, domain.GameState) {
	clk := clock.NewManual(fedAt)
	state := domain.GameState{
		AnimalType: "sheep",
		StartTime:  fedAt.UnixMilli(),
		LastFedAt:  fedAt.UnixMilli(),
		Status:     domain.StatusActive,
	}
	return NewEngine(clk), clk, state
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		scale   float64
		want    float64
	}{
		{"just fed", 0, 1, 100},
		{"half way", 36 * time.Hour, 1, 50},
		{"quarter left", 54 * time.Hour, 1, 25},
		{"exactly timed out", 72 * time.Hour, 1, 0},
		{"long gone", 500 * time.Hour, 1, 0},
		{"demo mode timeout", 12 * time.Minute, domain.TimeScaleDemo, 0},
		{"demo mode half", 6 * time.Minute, domain.TimeScaleDemo, 50},
		{"fed in the future clamps", -time.Hour, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, clk, state := setup()
			clk.Set(fedAt.Add(tt.elapsed))

			assert.InDelta(t, tt.want, engine.Percent(state, tt.scale), 1e-9)
		})
	}
}

func TestPercent_BoundedAndMonotonic(t *testing.T) {
	for _, scale := range []float64{1, 24, domain.TimeScaleDemo} {
		engine, clk, state := setup()

		prev := 101.0
		for i := 0; i < 300; i++ {
			p := engine.Percent(state, scale)
			require.GreaterOrEqual(t, p, 0.0)
			require.LessOrEqual(t, p, 100.0)
			require.LessOrEqual(t, p, prev, "scale %v step %d", scale, i)
			prev = p
			clk.Advance(23 * time.Minute)
		}
	}
}

func TestHasLeft(t *testing.T) {
	engine, clk, state := setup()

	clk.Set(fedAt.Add(72*time.Hour - time.Millisecond))
	assert.False(t, engine.HasLeft(state, 1))

	clk.Set(fedAt.Add(72 * time.Hour))
	assert.Zero(t, engine.Percent(state, 1))
	assert.True(t, engine.HasLeft(state, 1))
}

func TestFeed(t *testing.T) {
	engine, clk, state := setup()
	clk.Advance(71 * time.Hour)
	require.Less(t, engine.Percent(state, 1), StarvingBelow)

	fed := engine.Feed(state)

	assert.Equal(t, clk.Now().UnixMilli(), fed.LastFedAt)
	assert.Equal(t, 100.0, engine.Percent(fed, 1))
	assert.Equal(t, state.StartTime, fed.StartTime, "feeding does not touch growth")
	assert.Equal(t, fedAt.UnixMilli(), state.LastFedAt, "input is not mutated")
}

func TestFeed_AtZeroBeforeDetection(t *testing.T) {
	engine, clk, state := setup()
	clk.Advance(80 * time.Hour)
	require.True(t, engine.HasLeft(state, 1))

	fed := engine.Feed(state)
	assert.False(t, engine.HasLeft(fed, 1))
	assert.Equal(t, 100.0, engine.Percent(fed, 1))
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, domain.MsgHungerLeft},
		{-3, domain.MsgHungerLeft},
		{0.01, domain.MsgHungerStarving},
		{19.99, domain.MsgHungerStarving},
		{20, domain.MsgHungerHungry},
		{49.9, domain.MsgHungerHungry},
		{50, domain.MsgHungerFull},
		{100, domain.MsgHungerFull},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusText(tt.percent), "percent %v", tt.percent)
	}
}

func TestColorTier(t *testing.T) {
	tests := []struct {
		percent float64
		want    domain.HungerTier
		color   uint32
	}{
		{100, domain.HungerTierHealthy, 0x4caf50},
		{60.01, domain.HungerTierHealthy, 0x4caf50},
		{60, domain.HungerTierWarning, 0xff9800},
		{30.01, domain.HungerTierWarning, 0xff9800},
		{30, domain.HungerTierCritical, 0xf44336},
		{0, domain.HungerTierCritical, 0xf44336},
	}

	for _, tt := range tests {
		tier := ColorTier(tt.percent)
		assert.Equal(t, tt.want, tier, "percent %v", tt.percent)
		assert.Equal(t, tt.color, tier.Color())
	}
}
