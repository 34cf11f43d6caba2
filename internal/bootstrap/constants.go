package bootstrap

import "time"

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "data/deadletter.jsonl"
)

// =============================================================================
// Driver Configuration
// =============================================================================

const (
	// PollWorkers is fixed at one so driver ticks never overlap
	PollWorkers = 1

	// PollQueueSize is fixed at one; a tick that finds the queue full is skipped
	PollQueueSize = 1

	// PollTimeout bounds one poll, storage round trip included
	PollTimeout = 5 * time.Second
)

// Log messages
const (
	LogMsgLoggingInitialized     = "Logging initialized"
	LogMsgStartingService        = "Starting TokTok farm"
	LogMsgConfigurationLoaded    = "Configuration loaded"
	LogMsgConfigWarning          = "Configuration warning"
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgStorageInitialized     = "Storage initialized"
	LogMsgCatalogLoaded          = "Animal catalog loaded"
	LogMsgEventHandlersReady     = "Event handlers registered"
	LogMsgDriverStarted          = "Poll driver started"
	LogMsgDeadLettersPending     = "Undelivered events found in dead-letter file"
	LogMsgDeadLetterScanFailed   = "Could not scan dead-letter file"

	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgStoppingDriver             = "Stopping poll driver..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgStorageCloseFailed         = "Storage close failed"
)

// Error messages
const (
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	ErrMsgFailedOpenStorage              = "failed to open storage"
	ErrMsgFailedLoadCatalog              = "failed to load animal catalog"
	ErrMsgFailedInitMode                 = "failed to initialize time mode"
)
