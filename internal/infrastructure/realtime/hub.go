package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"fellowship_escrow/internal/domain/errs"
	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var _ interfaces.IRoomBroadcaster = (*Hub)(nil)

// Publisher carries encoded frames to every instance, including this one.
type Publisher interface {
	Publish(ctx context.Context, roomID string, frame []byte) error
}

// Hub fans room events out to the websocket clients connected to this
// instance. Frames for one room reach each client in Emit order.
type Hub struct {
	mu        sync.RWMutex
	rooms     map[string]map[*Client]struct{}
	publisher Publisher
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]struct{})}
}

// UsePublisher routes Emit through a cross-instance relay. Frames then
// reach local clients through the relay's subscription (see Deliver).
func (h *Hub) UsePublisher(p Publisher) {
	h.mu.Lock()
	h.publisher = p
	h.mu.Unlock()
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.rooms[c.roomID]
	if !ok {
		set = make(map[*Client]struct{})
		h.rooms[c.roomID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if set, ok := h.rooms[c.roomID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.rooms, c.roomID)
		}
	}
	h.mu.Unlock()
	c.close()
}

// ConnectionCount is the number of local connections in a room.
func (h *Hub) ConnectionCount(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

func (h *Hub) Emit(ctx context.Context, roomID string, event interfaces.RoomEvent) error {
	frame, err := json.Marshal(event)
	if err != nil {
		return errs.Transport("encode room event", err)
	}

	h.mu.RLock()
	pub := h.publisher
	h.mu.RUnlock()

	if pub == nil {
		h.Deliver(roomID, frame)
		return nil
	}
	if err := pub.Publish(ctx, roomID, frame); err != nil {
		// Local clients still get it; remote instances catch up on replay.
		h.Deliver(roomID, frame)
		return errs.Transport("publish room event", err)
	}
	return nil
}

// Deliver writes an encoded frame to every local client of the room. A
// client whose buffer is full is disconnected and will resync by replay.
func (h *Hub) Deliver(roomID string, frame []byte) {
	var slow []*Client
	h.mu.RLock()
	for c := range h.rooms[roomID] {
		if !c.enqueue(frame) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		logger.Warn("[realtime][hub] dropping slow client", zap.String("room_id", roomID), zap.String("user_id", c.userID))
		h.Unregister(c)
	}
}
