package realtime

import (
	"context"
	"sort"
	"sync"
	"time"

	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var _ interfaces.IPresenceTracker = (*Presence)(nil)

// PresencePayload accompanies interfaces.EventPresence.
type PresencePayload struct {
	UserID      string   `json:"user_id"`
	Online      bool     `json:"online"`
	OnlineUsers []string `json:"online_users"`
}

// TypingPayload accompanies interfaces.EventTyping. Clients drop the
// indicator after ExpiresInMs without a refresh.
type TypingPayload struct {
	UserID      string `json:"user_id"`
	IsTyping    bool   `json:"is_typing"`
	ExpiresInMs int64  `json:"expires_in_ms,omitempty"`
}

type roomPresence struct {
	conns  map[string]int
	typing map[string]time.Time
}

// Presence is the per-room registry of live connections. A user with
// several tabs open counts once until the last connection leaves. It is a
// cache held per process; room membership lives on the ProjectRoom.
type Presence struct {
	mu          sync.Mutex
	rooms       map[string]*roomPresence
	typingTTL   time.Duration
	broadcaster interfaces.IRoomBroadcaster
	now         func() time.Time
}

func NewPresence(broadcaster interfaces.IRoomBroadcaster, typingTTL time.Duration) *Presence {
	if typingTTL <= 0 {
		typingTTL = 5 * time.Second
	}
	return &Presence{
		rooms:       make(map[string]*roomPresence),
		typingTTL:   typingTTL,
		broadcaster: broadcaster,
		now:         time.Now,
	}
}

// Join registers one connection. The presence event goes out only when the
// user goes from offline to online.
func (p *Presence) Join(ctx context.Context, roomID, userID string) {
	p.mu.Lock()
	rp, ok := p.rooms[roomID]
	if !ok {
		rp = &roomPresence{conns: make(map[string]int), typing: make(map[string]time.Time)}
		p.rooms[roomID] = rp
	}
	rp.conns[userID]++
	first := rp.conns[userID] == 1
	online := sortedKeys(rp.conns)
	p.mu.Unlock()

	if first {
		p.emit(ctx, roomID, interfaces.EventPresence, PresencePayload{UserID: userID, Online: true, OnlineUsers: online})
	}
}

// Leave drops one connection, on explicit close and on heartbeat timeout
// alike. A user who was typing is announced as stopped.
func (p *Presence) Leave(ctx context.Context, roomID, userID string) {
	p.mu.Lock()
	rp, ok := p.rooms[roomID]
	if !ok || rp.conns[userID] == 0 {
		p.mu.Unlock()
		return
	}
	rp.conns[userID]--
	if rp.conns[userID] > 0 {
		p.mu.Unlock()
		return
	}
	delete(rp.conns, userID)
	_, wasTyping := rp.typing[userID]
	delete(rp.typing, userID)
	online := sortedKeys(rp.conns)
	if len(rp.conns) == 0 {
		delete(p.rooms, roomID)
	}
	p.mu.Unlock()

	if wasTyping {
		p.emit(ctx, roomID, interfaces.EventTyping, TypingPayload{UserID: userID, IsTyping: false})
	}
	p.emit(ctx, roomID, interfaces.EventPresence, PresencePayload{UserID: userID, Online: false, OnlineUsers: online})
}

// SetTyping records and broadcasts the indicator. Only connected users can
// type; other calls are ignored.
func (p *Presence) SetTyping(ctx context.Context, roomID, userID string, isTyping bool) {
	p.mu.Lock()
	rp, ok := p.rooms[roomID]
	if !ok || rp.conns[userID] == 0 {
		p.mu.Unlock()
		return
	}
	if isTyping {
		rp.typing[userID] = p.now().Add(p.typingTTL)
	} else {
		delete(rp.typing, userID)
	}
	p.mu.Unlock()

	payload := TypingPayload{UserID: userID, IsTyping: isTyping}
	if isTyping {
		payload.ExpiresInMs = p.typingTTL.Milliseconds()
	}
	p.emit(ctx, roomID, interfaces.EventTyping, payload)
}

func (p *Presence) OnlineUsers(roomID string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	rp, ok := p.rooms[roomID]
	if !ok {
		return []string{}
	}
	return sortedKeys(rp.conns)
}

// TypingUsers skips indicators whose TTL ran out without a refresh.
func (p *Presence) TypingUsers(roomID string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	rp, ok := p.rooms[roomID]
	if !ok {
		return []string{}
	}
	now := p.now()
	users := make([]string, 0, len(rp.typing))
	for u, until := range rp.typing {
		if now.Before(until) {
			users = append(users, u)
		} else {
			delete(rp.typing, u)
		}
	}
	sort.Strings(users)
	return users
}

func (p *Presence) emit(ctx context.Context, roomID, event string, payload any) {
	if p.broadcaster == nil {
		return
	}
	if err := p.broadcaster.Emit(ctx, roomID, interfaces.RoomEvent{Event: event, RoomID: roomID, Payload: payload}); err != nil {
		logger.Warn("[realtime][presence] broadcast failed", zap.String("room_id", roomID), zap.String("event", event), zap.Error(err))
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
