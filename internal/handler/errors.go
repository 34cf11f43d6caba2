package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Health messages
	ErrMsgStorageUnavailable = "storage unavailable"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgAnimalNotFoundError = "Animal not found"
	ErrMsgNoActiveGameError   = "There is no animal on the farm"
	ErrMsgGameInProgressError = "An animal is already growing on the farm"
	ErrMsgHarvestPendingError = "Harvest the grown animal before starting a new one"
	ErrMsgNotReadyError       = "The animal is not ready to harvest yet"
	ErrMsgInvalidModeError    = "Mode must be demo or real"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
