package bootstrap

import (
	"context"
	"log/slog"

	"github.com/nt-jambaa/toktok-mini-game/internal/event"
	"github.com/nt-jambaa/toktok-mini-game/internal/repository"
	"github.com/nt-jambaa/toktok-mini-game/internal/scheduler"
	"github.com/nt-jambaa/toktok-mini-game/internal/server"
	"github.com/nt-jambaa/toktok-mini-game/internal/sse"
	"github.com/nt-jambaa/toktok-mini-game/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	Pool               *worker.Pool
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Storage            repository.KeyValueStore
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Poll driver (no new ticks, finish the running one)
// 3. SSE hub (disconnect clients)
// 4. Event publisher (dead-letter anything still retrying)
// 5. Storage (flush and close)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgStoppingDriver)
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Storage != nil {
		if err := c.Storage.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
