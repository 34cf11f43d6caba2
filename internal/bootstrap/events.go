package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/nt-jambaa/toktok-mini-game/internal/config"
	"github.com/nt-jambaa/toktok-mini-game/internal/event"
)

// InitializeEventSystem creates the in-memory bus and wraps it in a resilient publisher
// that retries failed deliveries with exponential backoff before dead-lettering them.
// Subscribers register on the bus; producers publish through the resilient publisher.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	warnPendingDeadLetters(deadLetterPath)

	resilientPublisher, err := event.NewResilientPublisher(eventBus, EventDefaultMaxRetries, EventDefaultRetryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}

// warnPendingDeadLetters reports events left undelivered by a previous run
func warnPendingDeadLetters(path string) {
	entries, skipped, err := event.ReadDeadLetters(path)
	if err != nil {
		slog.Warn(LogMsgDeadLetterScanFailed, "path", path, "error", err)
		return
	}
	if len(entries) > 0 || skipped > 0 {
		slog.Warn(LogMsgDeadLettersPending, "path", path, "count", len(entries), "unreadable", skipped)
	}
}
