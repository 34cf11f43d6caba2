package domain

// Animal is a raisable animal definition from the static catalog
type Animal struct {
	Key             string `json:"key" validate:"required,max=32"`
	Name            string `json:"name" validate:"required,max=64"`
	Emoji           string `json:"emoji,omitempty"`
	DurationDays    int    `json:"durationDays" validate:"gte=0"`
	DurationSeconds int64  `json:"durationSeconds" validate:"gt=0"`
	RewardCategory  string `json:"rewardCategory" validate:"required"`
	RewardAmount    string `json:"rewardAmount" validate:"required"`
	Description     string `json:"description,omitempty"`
	Color           uint32 `json:"color,omitempty"`
	BodyColor       uint32 `json:"bodyColor,omitempty"`
}

// ExperienceReward returns the farm XP granted when this animal is harvested.
// Definitions without whole days fall back to rounding the duration down to days.
func (a Animal) ExperienceReward() int {
	days := a.DurationDays
	if days <= 0 {
		days = int(a.DurationSeconds / SecondsPerDay)
	}
	return days * ExperiencePerGrowthDay
}
