package domain

import "time"

// Growth and hunger tuning. These are design constants, not runtime configuration.
const (
	// OrderSpeedUpSeconds is the effective growth time removed by one placed order (24h)
	OrderSpeedUpSeconds = 24 * 60 * 60

	// HungerTimeoutSeconds is how long an unfed animal stays before it runs away (72h)
	HungerTimeoutSeconds = 72 * 60 * 60

	// ExperiencePerGrowthDay is the farm XP awarded per day of growth duration on harvest
	ExperiencePerGrowthDay = 100

	// SecondsPerDay is used to derive DurationSeconds from DurationDays
	SecondsPerDay = 24 * 60 * 60
)

// Time scales (1 real second = N effective game seconds)
const (
	// TimeScaleDemo finishes a 3-day chicken in about 12 minutes
	TimeScaleDemo = 360.0
	TimeScaleReal = 1.0
)

// Display messages produced by the engines
const (
	MsgReadyToHarvest = "Ready to harvest!"
	MsgRemainingFmt   = "%d%s remaining"

	MsgHungerLeft     = "LEFT! Animal ran away!"
	MsgHungerStarving = "Starving!"
	MsgHungerHungry   = "Getting hungry..."
	MsgHungerFull     = "Happy & Full"

	MsgHarvestFmt = "+%d Farm XP earned!"
)

// Harvest coupon codes look like TOKTOK-FARM-3F9A1C
const (
	CouponPrefix     = "TOKTOK-FARM-"
	CouponCodeLength = 6
)

// DefaultPollInterval matches the renderer refresh cadence
const DefaultPollInterval = 500 * time.Millisecond
