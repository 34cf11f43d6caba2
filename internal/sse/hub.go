package sse

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
)

// ReplayTypes are remembered by the hub and sent to each client as it joins,
// so a freshly opened game screen renders the current farm without waiting a tick.
var ReplayTypes = []string{
	domain.EventTypeFarmTick,
	domain.EventTypeTimeModeChanged,
}

// Event is one message on the stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected stream consumer
type Client struct {
	ID           string
	EventChannel chan Event
	// nil accepts every type
	EventFilter map[string]bool
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// offer delivers without blocking; a full channel drops the event for this client only
func (c *Client) offer(evt Event) {
	select {
	case c.EventChannel <- evt:
	default:
	}
}

// Hub fans farm events out to stream clients. A single goroutine owns
// membership changes and the replay cache.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	latest  map[string]Event

	broadcast  chan Event
	register   chan *Client
	unregister chan string
	shutdown   chan struct{}

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewHub creates a hub; call Start before use
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		latest:     make(map[string]Event, len(ReplayTypes)),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start launches the hub loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the loop and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for id, client := range h.clients {
			close(client.EventChannel)
			delete(h.clients, id)
		}
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.join(client)
		case clientID := <-h.unregister:
			h.leave(clientID)
		case evt := <-h.broadcast:
			h.fanOut(evt)
		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) join(client *Client) {
	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()

	for _, eventType := range ReplayTypes {
		if evt, ok := h.latest[eventType]; ok && client.wants(eventType) {
			client.offer(evt)
		}
	}
}

func (h *Hub) leave(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.EventChannel)
		delete(h.clients, clientID)
	}
}

func (h *Hub) fanOut(evt Event) {
	if slices.Contains(ReplayTypes, evt.Type) {
		h.latest[evt.Type] = evt
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if client.wants(evt.Type) {
			client.offer(evt)
		}
	}
}

// Register adds a client receiving eventTypes, or everything when eventTypes is empty
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.EventChannel)
	}
	return client
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- evt:
	default:
		slog.Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders evt in text/event-stream framing with the whole event as data
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(evt.ID) + len(evt.Type) + 24)
	if evt.ID != "" {
		buf.WriteString("id: " + evt.ID + "\n")
	}
	buf.WriteString("event: " + evt.Type + "\n")
	buf.WriteString("data: ")
	buf.Write(data)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}
