package domain

// FarmStartedPayload is the payload for EventTypeFarmStarted
type FarmStartedPayload struct {
	AnimalType string `json:"animal_type"`
	StartTime  int64  `json:"start_time"`
}

// FarmActionPayload is the payload for feed and order events
type FarmActionPayload struct {
	AnimalType            string  `json:"animal_type"`
	LastFedAt             int64   `json:"last_fed_at"`
	BonusReductionSeconds float64 `json:"bonus_reduction_seconds"`
	OrdersPlaced          int     `json:"orders_placed"`
}

// FarmEndedPayload is the payload for ready, abandoned and harvested events
type FarmEndedPayload struct {
	AnimalType       string `json:"animal_type"`
	OrdersPlaced     int    `json:"orders_placed"`
	ExperienceEarned int    `json:"experience_earned,omitempty"`
	TotalExperience  int    `json:"total_experience,omitempty"`
}

// TimeModeChangedPayload is the payload for EventTypeTimeModeChanged
type TimeModeChangedPayload struct {
	Mode  TimeMode `json:"mode"`
	Scale float64  `json:"scale"`
}
