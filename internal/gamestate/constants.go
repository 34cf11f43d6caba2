package gamestate

// Persisted keys. These match the keys the browser build of the game used in localStorage
// so exported saves stay readable.
const (
	StateKey      = "toktok_farm_state"
	ExperienceKey = "toktok_farm_xp"
)

// Error messages
const (
	ErrMsgFailedToReadState       = "failed to read game state"
	ErrMsgFailedToWriteState      = "failed to write game state"
	ErrMsgFailedToClearState      = "failed to clear game state"
	ErrMsgFailedToEncodeState     = "failed to encode game state"
	ErrMsgFailedToReadExperience  = "failed to read experience"
	ErrMsgFailedToWriteExperience = "failed to write experience"
)

// Log messages
const (
	LogMsgCorruptState      = "Discarding unreadable game state"
	LogMsgInvalidState      = "Discarding invalid game state"
	LogMsgCorruptExperience = "Treating unreadable experience value as zero"
	LogMsgGameCreated       = "Game state created"
	LogMsgExperienceAdded   = "Experience added"
)
