package interfaces

import "context"

const (
	EventMessage  = "message"
	EventTyping   = "typing"
	EventPresence = "presence"
	EventEscrow   = "escrow"
)

// RoomEvent is one frame pushed to the connections of a room.
type RoomEvent struct {
	Event   string `json:"event"`
	RoomID  string `json:"room_id"`
	Payload any    `json:"payload"`
}

// IRoomBroadcaster delivers events to the live connections of a room in the
// order Emit is called. It is best effort: the durable log stays the source
// of truth.
type IRoomBroadcaster interface {
	Emit(ctx context.Context, roomID string, event RoomEvent) error
}

// IPresenceTracker is the read side of the live connection registry.
type IPresenceTracker interface {
	OnlineUsers(roomID string) []string
	TypingUsers(roomID string) []string
}
