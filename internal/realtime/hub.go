// Package realtime pushes change events to connected clients. Events
// carry no payload; clients react by re-fetching the named collection.
package realtime

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"oktodeck-backend/internal/store"
)

type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	events  chan store.Event
	log     *zap.SugaredLogger
}

func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		events:  make(chan store.Event, 64),
		log:     log,
	}
}

// Publish queues an event for broadcast. Never blocks the mutating
// caller; if the queue is full the event is dropped — clients resync on
// the next one.
func (h *Hub) Publish(e store.Event) {
	select {
	case h.events <- e:
	default:
		h.log.Warnw("event queue full, dropping", "collection", e.Collection, "action", e.Action)
	}
}

// Run broadcasts queued events until the event channel is closed.
// Intended to run as a goroutine for the process lifetime.
func (h *Hub) Run() {
	for e := range h.events {
		h.broadcast(e)
	}
}

func (h *Hub) broadcast(e store.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(e); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Handler registers the connection and parks on reads until the client
// goes away. Inbound messages are ignored; the stream is one-way.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
