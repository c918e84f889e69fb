package realtime

import (
	"sync"

	"fixify/models"

	"go.uber.org/zap"
)

// Event is the frame pushed to subscribers.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Publisher is the write side of the hub. Services push through this; only
// the hub itself touches the room registry.
type Publisher interface {
	Publish(room string, event string, data any)
}

// subscriber is satisfied by *websocket.Conn.
type subscriber interface {
	WriteJSON(v any) error
}

// lockedConn serializes writes to one connection. gorilla/websocket allows a
// single concurrent writer, and a connection can sit in several rooms whose
// publishes race. Publish holds only the registry read lock, so the write
// lock lives on the connection.
type lockedConn struct {
	mu sync.Mutex
	c  subscriber
}

func (lc *lockedConn) WriteJSON(v any) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.c.WriteJSON(v)
}

// Hub is the process-wide room registry: {room name -> set of connections}.
// Join and Leave are the only mutators. The hub has no persistence semantics;
// anything durable is written to storage independently of fan-out.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[subscriber]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[subscriber]bool)}
}

// UserRoom names the per-user notification room.
func UserRoom(id models.UserID) string {
	return "user_" + string(id)
}

// Join subscribes c to the named room.
func (h *Hub) Join(room string, c subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.rooms[room]
	if !ok {
		set = make(map[subscriber]bool)
		h.rooms[room] = set
	}
	set[c] = true
}

// Leave unsubscribes c from the named room.
func (h *Hub) Leave(room string, c subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.rooms[room]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.rooms, room)
		}
	}
}

// LeaveAll unsubscribes c from every room it joined.
func (h *Hub) LeaveAll(c subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, set := range h.rooms {
		delete(set, c)
		if len(set) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Publish fans data out to every current subscriber of the room. Delivery is
// at-most-once; a write failure drops that subscriber's frame and is logged.
func (h *Hub) Publish(room string, event string, data any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[room] {
		if err := c.WriteJSON(Event{Event: event, Data: data}); err != nil {
			zap.L().Warn("realtime publish failed", zap.String("room", room), zap.Error(err))
		}
	}
}
