package bootstrap

import (
	"log/slog"

	"github.com/nt-jambaa/toktok-mini-game/internal/event"
	"github.com/nt-jambaa/toktok-mini-game/internal/metrics"
	"github.com/nt-jambaa/toktok-mini-game/internal/sse"
)

// RegisterEventHandlers subscribes the metrics collector and the SSE forwarder to the bus
func RegisterEventHandlers(bus event.Bus, hub *sse.Hub) {
	metrics.NewEventMetricsCollector().Register(bus)
	sse.NewSubscriber(hub, bus).Subscribe()

	slog.Info(LogMsgEventHandlersReady, "event_types", len(event.FarmTypes))
}
