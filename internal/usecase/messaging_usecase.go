package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/domain/errs"
	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MaxMessageContentLength = 4000

var (
	ErrInvalidSenderID      = errs.Invalid("invalid sender_id")
	ErrInvalidMessageType   = errs.Invalid("invalid message type")
	ErrInvalidMessageID     = errs.Invalid("message id must be a uuid or a numeric id")
	ErrInvalidMessageBody   = errs.Invalid("message content is required")
	ErrMessageTooLong       = errs.Invalid("message content is too long")
	ErrAttachmentRequired   = errs.Invalid("file messages need an attachment url")
	ErrNotRoomParticipant   = errs.Forbidden("user is not a participant of this room")
	ErrOnlyCompanyCanSettle = errs.Forbidden("only the company can release or dispute funds")
	ErrRoomNotActive        = errs.InvalidState("room is not active")
	ErrMessageRateLimited   = errs.New(errs.KindRateLimited, "too many messages, slow down")
)

type SendMessageCommand struct {
	RoomID     string
	SenderID   string
	MessageID  string
	Type       entities.MessageType
	Content    string
	Attachment *entities.Attachment
}

// RoomView is the room as shown to one of its participants.
type RoomView struct {
	Room        entities.ProjectRoom
	Role        entities.ParticipantRole
	OnlineUsers []string
	TypingUsers []string
}

// EscrowEventPayload is broadcast with interfaces.EventEscrow after a
// release or dispute.
type EscrowEventPayload struct {
	RoomID       string                `json:"room_id"`
	ChallengeID  string                `json:"challenge_id"`
	EscrowStatus entities.EscrowStatus `json:"escrow_status"`
	Status       entities.RoomStatus   `json:"status"`
	CompletedAt  *time.Time            `json:"completed_at,omitempty"`
}

// IMessagingUseCase persists and fans out room messages and exposes the
// company's terminal escrow actions.
type IMessagingUseCase interface {
	Send(ctx context.Context, cmd SendMessageCommand) (entities.RoomMessage, error)
	Replay(ctx context.Context, roomID, requesterID, sinceID string) ([]entities.RoomMessage, error)
	ReleaseFunds(ctx context.Context, roomID, actorID string) (entities.ProjectRoom, error)
	DisputeFunds(ctx context.Context, roomID, actorID string) (entities.ProjectRoom, error)
	GetRoomView(ctx context.Context, roomID, requesterID string) (RoomView, error)
	Authorize(ctx context.Context, roomID, userID string) (entities.ProjectRoom, entities.ParticipantRole, error)
}

type MessagingUseCase struct {
	lifecycle   ILifecycleUseCase
	messages    interfaces.IRoomMessageRepository
	broadcaster interfaces.IRoomBroadcaster
	presence    interfaces.IPresenceTracker
	limiter     interfaces.IRateLimiter
	ids         interfaces.IIDGenerator

	roomLocks *keyedMutex
	seqMu     sync.Mutex
	lastAt    map[string]time.Time
	now       func() time.Time
}

var _ IMessagingUseCase = (*MessagingUseCase)(nil)

// NewMessagingUseCase wires the channel. presence and limiter may be nil.
func NewMessagingUseCase(
	lifecycle ILifecycleUseCase,
	messages interfaces.IRoomMessageRepository,
	broadcaster interfaces.IRoomBroadcaster,
	presence interfaces.IPresenceTracker,
	limiter interfaces.IRateLimiter,
	ids interfaces.IIDGenerator,
) *MessagingUseCase {
	return &MessagingUseCase{
		lifecycle:   lifecycle,
		messages:    messages,
		broadcaster: broadcaster,
		presence:    presence,
		limiter:     limiter,
		ids:         ids,
		roomLocks:   newKeyedMutex(),
		lastAt:      make(map[string]time.Time),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *MessagingUseCase) Send(ctx context.Context, cmd SendMessageCommand) (entities.RoomMessage, error) {
	senderID := strings.TrimSpace(cmd.SenderID)
	if senderID == "" {
		return entities.RoomMessage{}, ErrInvalidSenderID
	}
	msgType := cmd.Type
	if msgType == "" {
		msgType = entities.MessageTypeText
	}
	if !msgType.Valid() || msgType == entities.MessageTypeMilestone {
		return entities.RoomMessage{}, ErrInvalidMessageType
	}
	content := strings.TrimSpace(cmd.Content)
	var attachment *entities.Attachment
	if msgType == entities.MessageTypeFile {
		if cmd.Attachment == nil || strings.TrimSpace(cmd.Attachment.URL) == "" {
			return entities.RoomMessage{}, ErrAttachmentRequired
		}
		attachment = &entities.Attachment{URL: strings.TrimSpace(cmd.Attachment.URL), Name: strings.TrimSpace(cmd.Attachment.Name)}
		if content == "" {
			content = attachment.Name
		}
	}
	if content == "" {
		return entities.RoomMessage{}, ErrInvalidMessageBody
	}
	if len(content) > MaxMessageContentLength {
		return entities.RoomMessage{}, ErrMessageTooLong
	}
	clientID := strings.TrimSpace(cmd.MessageID)
	if clientID != "" && !validClientMessageID(clientID) {
		return entities.RoomMessage{}, ErrInvalidMessageID
	}

	room, role, err := u.Authorize(ctx, cmd.RoomID, senderID)
	if err != nil {
		return entities.RoomMessage{}, err
	}
	if room.Status != entities.RoomStatusActive {
		return entities.RoomMessage{}, ErrRoomNotActive
	}

	if u.limiter != nil {
		allowed, lErr := u.limiter.Allow(ctx, "msg:"+room.ID+":"+senderID)
		if lErr != nil {
			logger.Warn("[messaging][usecase] rate limiter unavailable", zap.String("room_id", room.ID), zap.Error(lErr))
		} else if !allowed {
			return entities.RoomMessage{}, ErrMessageRateLimited
		}
	}

	id := clientID
	if id == "" {
		id = u.ids.NextID()
	}
	return u.append(ctx, entities.RoomMessage{
		ID:         id,
		RoomID:     room.ID,
		SenderID:   senderID,
		SenderRole: role,
		Type:       msgType,
		Content:    content,
		Attachment: attachment,
	})
}

// append persists m and then broadcasts it while holding the room lock, so
// live delivery follows acceptance order. A message id that is already
// stored returns the stored copy without a second broadcast.
func (u *MessagingUseCase) append(ctx context.Context, m entities.RoomMessage) (entities.RoomMessage, error) {
	unlock := u.roomLocks.Lock(m.RoomID)
	defer unlock()

	existing, err := u.messages.GetByID(ctx, m.RoomID, m.ID)
	if err != nil {
		return entities.RoomMessage{}, err
	}
	if existing.ID != "" {
		logger.Debug("[messaging][usecase] duplicate send", zap.String("room_id", m.RoomID), zap.String("message_id", m.ID))
		return existing, nil
	}

	m.CreatedAt = u.nextCreatedAt(m.RoomID)
	stored, err := u.messages.Append(ctx, m)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return u.messages.GetByID(ctx, m.RoomID, m.ID)
		}
		logger.Error("[messaging][usecase] append failed", zap.String("room_id", m.RoomID), zap.Error(err))
		return entities.RoomMessage{}, err
	}

	u.emit(ctx, stored.RoomID, interfaces.RoomEvent{Event: interfaces.EventMessage, RoomID: stored.RoomID, Payload: stored})
	return stored, nil
}

// nextCreatedAt keeps createdAt strictly increasing per room so acceptance
// order and (createdAt, id) order agree.
func (u *MessagingUseCase) nextCreatedAt(roomID string) time.Time {
	u.seqMu.Lock()
	defer u.seqMu.Unlock()
	at := u.now()
	if last, ok := u.lastAt[roomID]; ok && !at.After(last) {
		at = last.Add(time.Nanosecond)
	}
	u.lastAt[roomID] = at
	return at
}

func (u *MessagingUseCase) emit(ctx context.Context, roomID string, ev interfaces.RoomEvent) {
	if u.broadcaster == nil {
		return
	}
	if err := u.broadcaster.Emit(ctx, roomID, ev); err != nil {
		logger.Warn("[messaging][usecase] broadcast failed; message stays in log",
			zap.String("room_id", roomID),
			zap.String("event", ev.Event),
			zap.Error(errs.Transport("room broadcast", err)),
		)
	}
}

// Replay returns the persisted history after sinceID. An unknown sinceID
// replays everything; clients dedupe by message id.
func (u *MessagingUseCase) Replay(ctx context.Context, roomID, requesterID, sinceID string) ([]entities.RoomMessage, error) {
	room, _, err := u.Authorize(ctx, roomID, requesterID)
	if err != nil {
		return nil, err
	}
	afterSeq := ""
	if sinceID = strings.TrimSpace(sinceID); sinceID != "" {
		since, err := u.messages.GetByID(ctx, room.ID, sinceID)
		if err != nil {
			return nil, err
		}
		if since.ID != "" {
			afterSeq = since.Seq()
		}
	}
	return u.messages.ListByRoom(ctx, room.ID, afterSeq)
}

func (u *MessagingUseCase) ReleaseFunds(ctx context.Context, roomID, actorID string) (entities.ProjectRoom, error) {
	return u.settle(ctx, roomID, actorID, entities.EscrowDecisionRelease)
}

func (u *MessagingUseCase) DisputeFunds(ctx context.Context, roomID, actorID string) (entities.ProjectRoom, error) {
	return u.settle(ctx, roomID, actorID, entities.EscrowDecisionDispute)
}

func (u *MessagingUseCase) settle(ctx context.Context, roomID, actorID string, decision entities.EscrowDecision) (entities.ProjectRoom, error) {
	room, role, err := u.Authorize(ctx, roomID, actorID)
	if err != nil {
		return entities.ProjectRoom{}, err
	}
	if role != entities.ParticipantRoleCorporate {
		return entities.ProjectRoom{}, ErrOnlyCompanyCanSettle
	}

	settled, err := u.lifecycle.CompleteOrDispute(ctx, room.ID, decision)
	if err != nil {
		return entities.ProjectRoom{}, err
	}

	milestone := entities.RoomMessage{
		ID:         settled.ID + ":escrow:" + string(decision),
		RoomID:     settled.ID,
		SenderID:   entities.SystemSenderID,
		SenderRole: entities.ParticipantRoleSystem,
		Type:       entities.MessageTypeMilestone,
		Content:    escrowMilestoneText(settled, decision),
	}
	if _, err := u.append(ctx, milestone); err != nil {
		logger.Warn("[messaging][usecase] milestone message failed", zap.String("room_id", settled.ID), zap.Error(err))
	}
	u.emit(ctx, settled.ID, interfaces.RoomEvent{
		Event:  interfaces.EventEscrow,
		RoomID: settled.ID,
		Payload: EscrowEventPayload{
			RoomID:       settled.ID,
			ChallengeID:  settled.ChallengeID,
			EscrowStatus: settled.EscrowStatus,
			Status:       settled.Status,
			CompletedAt:  settled.CompletedAt,
		},
	})
	if settled.Status == entities.RoomStatusCompleted {
		u.seqMu.Lock()
		delete(u.lastAt, settled.ID)
		u.seqMu.Unlock()
	}

	logger.Info("[messaging][usecase] escrow settled", zap.String("room_id", settled.ID), zap.String("decision", string(decision)))
	return settled, nil
}

// validClientMessageID accepts a canonical UUID or a snowflake-sized decimal
// id. Anything else, including the "<room>:escrow:<decision>" ids of system
// milestones, is refused.
func validClientMessageID(id string) bool {
	if len(id) == 36 {
		_, err := uuid.Parse(id)
		return err == nil
	}
	if len(id) == 0 || len(id) > 20 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func escrowMilestoneText(room entities.ProjectRoom, decision entities.EscrowDecision) string {
	amount := fmt.Sprintf("%d.%02d %s", room.EscrowAmount/100, room.EscrowAmount%100, room.Currency)
	if decision == entities.EscrowDecisionRelease {
		return "Escrow released: " + amount + " paid out. Project completed."
	}
	return "Escrow disputed: " + amount + " held pending arbitration."
}

func (u *MessagingUseCase) GetRoomView(ctx context.Context, roomID, requesterID string) (RoomView, error) {
	room, role, err := u.Authorize(ctx, roomID, requesterID)
	if err != nil {
		return RoomView{}, err
	}
	view := RoomView{Room: room, Role: role, OnlineUsers: []string{}, TypingUsers: []string{}}
	if u.presence != nil {
		view.OnlineUsers = u.presence.OnlineUsers(room.ID)
		view.TypingUsers = u.presence.TypingUsers(room.ID)
	}
	return view, nil
}

// Authorize loads the room and checks that userID is one of its two
// participants. Membership comes from the room record, never from presence.
func (u *MessagingUseCase) Authorize(ctx context.Context, roomID, userID string) (entities.ProjectRoom, entities.ParticipantRole, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.ProjectRoom{}, "", ErrNotRoomParticipant
	}
	room, err := u.lifecycle.GetRoom(ctx, roomID)
	if err != nil {
		return entities.ProjectRoom{}, "", err
	}
	role := room.RoleOf(userID)
	if role == "" {
		return entities.ProjectRoom{}, "", ErrNotRoomParticipant
	}
	return room, role, nil
}
