package sse

import "time"

const (
	// BroadcastBufferSize bounds events queued for the hub loop
	BroadcastBufferSize = 100

	// ClientEventBuffer bounds events queued per client; a slower reader loses events
	ClientEventBuffer = 50

	ClientChannelBuffer = 10
)

const (
	KeepaliveInterval = 30 * time.Second

	// ClientRetry is the reconnect delay advertised to browsers
	ClientRetry = 3 * time.Second
)

// Event types written by the handler itself
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

const ErrMsgUnknownEventType = "unknown event type %q"

const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgFlushUnsupported   = "Response writer cannot flush; SSE unavailable"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)
