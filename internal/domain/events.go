package domain

// Event type constants published by the farm service.
// They are forwarded to SSE subscribers and counted in metrics.
//
// Event types follow the pattern: <entity>.<action> (e.g., "farm.fed")
const (
	// EventTypeFarmStarted is published when a new animal is placed on the farm
	EventTypeFarmStarted = "farm.started"

	// EventTypeFarmFed is published when the animal is fed
	EventTypeFarmFed = "farm.fed"

	// EventTypeFarmOrderPlaced is published when an order speeds up growth
	EventTypeFarmOrderPlaced = "farm.order_placed"

	// EventTypeFarmReadyToHarvest is published once when growth reaches 100%
	EventTypeFarmReadyToHarvest = "farm.ready_to_harvest"

	// EventTypeFarmAbandoned is published when the animal runs away from hunger
	EventTypeFarmAbandoned = "farm.abandoned"

	// EventTypeFarmHarvested is published when the reward is collected
	EventTypeFarmHarvested = "farm.harvested"

	// EventTypeFarmTick is published on every driver poll with the fresh snapshot
	EventTypeFarmTick = "farm.tick"

	// EventTypeTimeModeChanged is published when the demo/real toggle flips
	EventTypeTimeModeChanged = "farm.time_mode_changed"
)
