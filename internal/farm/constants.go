package farm

// Log messages
const (
	LogMsgGameStarted     = "Game started"
	LogMsgAnimalFed       = "Animal fed"
	LogMsgOrderPlaced     = "Order placed"
	LogMsgReadyToHarvest  = "Animal ready to harvest"
	LogMsgAnimalAbandoned = "Animal ran away from hunger"
	LogMsgHarvested       = "Harvest collected"
	LogMsgUnknownAnimal   = "Game references an animal missing from the catalog"
	LogMsgPublishFailed   = "Failed to publish farm event"
	LogMsgTimeModeChanged = "Time mode changed"
)

// Error messages
const (
	ErrMsgLoadFailed       = "failed to load game"
	ErrMsgSaveFailed       = "failed to save game"
	ErrMsgClearFailed      = "failed to clear game"
	ErrMsgExperienceFailed = "failed to award experience"
	ErrMsgPollFailed       = "farm poll failed"

	// PollJobName identifies the driver job in logs
	PollJobName = "farm.poll"
)
