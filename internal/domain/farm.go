package domain

import "time"

// GameStatus is the stored lifecycle status of a game record.
// Abandonment is never stored; it is derived from hunger on each poll.
type GameStatus string

const (
	StatusActive         GameStatus = "ACTIVE"
	StatusReadyToHarvest GameStatus = "READY_TO_HARVEST"
)

// GameState is the single persisted game record.
// Field names and units match the persisted JSON layout (timestamps in ms since epoch).
type GameState struct {
	AnimalType            string     `json:"animalType" validate:"required"`
	StartTime             int64      `json:"startTime" validate:"gte=0"`
	LastFedAt             int64      `json:"lastFedAt" validate:"gte=0"`
	BonusReductionSeconds float64    `json:"bonusReductionSeconds" validate:"gte=0"`
	OrdersPlaced          int        `json:"ordersPlaced" validate:"gte=0"`
	Status                GameStatus `json:"status" validate:"required,oneof=ACTIVE READY_TO_HARVEST"`
}

// StartedAt returns StartTime as a time.Time
func (s GameState) StartedAt() time.Time {
	return time.UnixMilli(s.StartTime)
}

// LastFed returns LastFedAt as a time.Time
func (s GameState) LastFed() time.Time {
	return time.UnixMilli(s.LastFedAt)
}

// IsActive reports whether the animal is still growing
func (s GameState) IsActive() bool {
	return s.Status == StatusActive
}

// TimeMode selects the time scale used by the driver
type TimeMode string

const (
	TimeModeDemo TimeMode = "demo"
	TimeModeReal TimeMode = "real"
)

// Scale returns the effective-seconds-per-real-second multiplier for the mode
func (m TimeMode) Scale() float64 {
	if m == TimeModeReal {
		return TimeScaleReal
	}
	return TimeScaleDemo
}

// Valid reports whether m is a known mode
func (m TimeMode) Valid() bool {
	return m == TimeModeDemo || m == TimeModeReal
}

// HungerTier is the colour band of the hunger bar
type HungerTier string

const (
	HungerTierHealthy  HungerTier = "healthy"
	HungerTierWarning  HungerTier = "warning"
	HungerTierCritical HungerTier = "critical"
)

// Color returns the RGB colour the renderer uses for the tier
func (t HungerTier) Color() uint32 {
	switch t {
	case HungerTierHealthy:
		return 0x4caf50
	case HungerTierWarning:
		return 0xff9800
	default:
		return 0xf44336
	}
}

// Outcome is what a driver tick concluded about the current game
type Outcome string

const (
	OutcomeNone           Outcome = "none"
	OutcomeGrowing        Outcome = "growing"
	OutcomeReadyToHarvest Outcome = "ready_to_harvest"
	OutcomeAbandoned      Outcome = "abandoned"
)

// FarmSnapshot carries every derived value the renderer needs for one frame
type FarmSnapshot struct {
	Active        bool       `json:"active"`
	State         *GameState `json:"state,omitempty"`
	Animal        *Animal    `json:"animal,omitempty"`
	TimeScale     float64    `json:"time_scale"`
	Progress      float64    `json:"progress"`
	RemainingText string     `json:"remaining_text"`
	HungerPercent float64    `json:"hunger_percent"`
	HungerStatus  string     `json:"hunger_status"`
	HungerTier    HungerTier `json:"hunger_tier"`
	HungerColor   uint32     `json:"hunger_color"`
	Outcome       Outcome    `json:"outcome"`
	Experience    int        `json:"experience"`
}
