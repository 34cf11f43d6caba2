package sse

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/nt-jambaa/toktok-mini-game/internal/event"
	"github.com/nt-jambaa/toktok-mini-game/internal/logger"
)

// parseTypes reads "?types=a,b". Unknown names are rejected so a typo does not
// silently produce an idle stream.
func parseTypes(r *http.Request) ([]string, error) {
	raw := r.URL.Query().Get("types")
	if raw == "" {
		return nil, nil
	}

	var types []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !slices.Contains(event.FarmTypes, event.Type(t)) {
			return nil, fmt.Errorf(ErrMsgUnknownEventType, t)
		}
		types = append(types, t)
	}
	return types, nil
}

// Handler streams hub events as text/event-stream. "?types=a,b" limits the event types.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		rc := http.NewResponseController(w)

		eventTypes, err := parseTypes(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("X-Accel-Buffering", "no")

		if _, err := fmt.Fprintf(w, "retry: %d\n\n", ClientRetry.Milliseconds()); err != nil {
			return
		}
		if err := rc.Flush(); err != nil {
			if errors.Is(err, http.ErrNotSupported) {
				log.Error(LogMsgFlushUnsupported)
			}
			return
		}

		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(evt Event) bool {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Debug(LogMsgWriteError, "error", err)
				return false
			}
			return rc.Flush() == nil
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes},
		}) {
			return
		}

		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case evt, ok := <-client.EventChannel:
				if !ok || !send(evt) {
					return
				}
			case <-keepalive.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
