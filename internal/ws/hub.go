package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// Message types published to event subscribers.
const (
	EventAttendeeAdded     = "attendee_added"
	EventAttendeeCheckedIn = "attendee_checked_in"
	EventAttendeeUnchecked = "attendee_unchecked"
	EventAttendeeDeleted   = "attendee_deleted"
	EventAttendeesImported = "attendees_imported"
	EventAttendeesCleared  = "attendees_cleared"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans out roster changes to every subscriber of an event's
// channel. There is no history replay: a client that subscribes after
// a mutation re-fetches the roster over HTTP.
type Hub struct {
	mu     sync.RWMutex
	events map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		events: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(eventID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.events[eventID] == nil {
		h.events[eventID] = make(map[*websocket.Conn]bool)
	}
	h.events[eventID][conn] = true
	slog.Info("ws: client connected", "event_id", eventID, "total", len(h.events[eventID]))
}

func (h *Hub) RemoveConnection(eventID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.events[eventID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.events, eventID)
		}
		slog.Info("ws: client disconnected", "event_id", eventID)
	}
}

func (h *Hub) Broadcast(eventID uint, message WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.events[eventID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		slog.Error("ws: marshal error", "err", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Warn("ws: write error", "err", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
