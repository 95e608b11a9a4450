package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	request "fellowship_escrow/internal/adapter/http/dto/request"
	response "fellowship_escrow/internal/adapter/http/dto/response"
	"fellowship_escrow/internal/adapter/http/middleware"
	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/internal/infrastructure/realtime"
	"fellowship_escrow/internal/usecase"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// RoomHub is the connection registry a socket joins.
type RoomHub interface {
	Register(c *realtime.Client)
	Unregister(c *realtime.Client)
}

// PresenceTracker receives join/leave/typing from live sockets.
type PresenceTracker interface {
	Join(ctx context.Context, roomID, userID string)
	Leave(ctx context.Context, roomID, userID string)
	SetTyping(ctx context.Context, roomID, userID string, isTyping bool)
}

// errorFrame and ackFrame are only sent to the connection that caused them.
type errorFrame struct {
	Event   string `json:"event"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ackFrame struct {
	Event   string                   `json:"event"`
	Payload response.MessageResponse `json:"payload"`
}

type RealtimeHandler struct {
	messaging usecase.IMessagingUseCase
	hub       RoomHub
	presence  PresenceTracker
	opts      realtime.ClientOptions
	upgrader  websocket.Upgrader
}

func NewRealtimeHandler(messaging usecase.IMessagingUseCase, hub RoomHub, presence PresenceTracker, opts realtime.ClientOptions) *RealtimeHandler {
	return &RealtimeHandler{
		messaging: messaging,
		hub:       hub,
		presence:  presence,
		opts:      opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Connect upgrades a participant to the room socket. Leaving presence runs
// when the read loop ends, which covers both a close frame and a missed
// pong.
func (h *RealtimeHandler) Connect(c *gin.Context) {
	roomID, userID := c.Param("room_id"), middleware.UserID(c)
	ctx := context.WithoutCancel(c.Request.Context())

	if _, _, err := h.messaging.Authorize(ctx, roomID, userID); err != nil {
		writeError(c, "realtime", err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("[realtime][handler] upgrade failed", zap.String("room_id", roomID), zap.Error(err))
		return
	}

	client := realtime.NewClient(conn, roomID, userID, h.opts)
	h.hub.Register(client)
	h.presence.Join(ctx, roomID, userID)
	logger.Info("[realtime][handler] connected", zap.String("room_id", roomID), zap.String("user_id", userID))

	go client.WritePump()
	client.ReadPump(func(frame realtime.ClientFrame) {
		h.handleFrame(ctx, client, frame)
	})

	h.hub.Unregister(client)
	h.presence.Leave(ctx, roomID, userID)
	logger.Info("[realtime][handler] disconnected", zap.String("room_id", roomID), zap.String("user_id", userID))
}

func (h *RealtimeHandler) handleFrame(ctx context.Context, client *realtime.Client, frame realtime.ClientFrame) {
	switch frame.Event {
	case interfaces.EventTyping:
		var p request.TypingRequest
		if err := json.Unmarshal(frame.Payload, &p); err != nil {
			client.SendJSON(errorFrame{Event: "error", Code: errInvalidPayload.Code, Message: errInvalidPayload.Message})
			return
		}
		h.presence.SetTyping(ctx, client.RoomID(), client.UserID(), p.IsTyping)

	case interfaces.EventMessage:
		var p request.SendMessageRequest
		if err := json.Unmarshal(frame.Payload, &p); err != nil {
			client.SendJSON(errorFrame{Event: "error", Code: errInvalidPayload.Code, Message: errInvalidPayload.Message})
			return
		}
		m, err := h.messaging.Send(ctx, p.ToCommand(client.RoomID(), client.UserID()))
		if err != nil {
			appErr := mapError(err)
			logger.Debug("[realtime][handler] send rejected", zap.String("room_id", client.RoomID()), zap.Error(err))
			client.SendJSON(errorFrame{Event: "error", Code: appErr.Code, Message: appErr.Message})
			return
		}
		client.SendJSON(ackFrame{Event: "ack", Payload: response.FromMessage(m)})

	default:
		client.SendJSON(errorFrame{Event: "error", Code: "UNKNOWN_EVENT", Message: "unknown event " + frame.Event})
	}
}
