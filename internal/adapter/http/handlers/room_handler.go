package handlers

import (
	"net/http"

	request "fellowship_escrow/internal/adapter/http/dto/request"
	response "fellowship_escrow/internal/adapter/http/dto/response"
	"fellowship_escrow/internal/adapter/http/middleware"
	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RoomHandler struct {
	messaging usecase.IMessagingUseCase
}

func NewRoomHandler(messaging usecase.IMessagingUseCase) *RoomHandler {
	return &RoomHandler{messaging: messaging}
}

func (h *RoomHandler) GetRoom(c *gin.Context) {
	view, err := h.messaging.GetRoomView(c.Request.Context(), c.Param("room_id"), middleware.UserID(c))
	if err != nil {
		writeError(c, "room", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRoomView(view))
}

// ListMessages replays the persisted history, optionally only what came
// after ?since=<message id>.
func (h *RoomHandler) ListMessages(c *gin.Context) {
	ms, err := h.messaging.Replay(c.Request.Context(), c.Param("room_id"), middleware.UserID(c), c.Query("since"))
	if err != nil {
		writeError(c, "room", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMessages(ms))
}

func (h *RoomHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	m, err := h.messaging.Send(c.Request.Context(), payload.ToCommand(c.Param("room_id"), middleware.UserID(c)))
	if err != nil {
		writeError(c, "room", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMessage(m))
}

func (h *RoomHandler) ReleaseFunds(c *gin.Context) {
	roomID := c.Param("room_id")
	room, err := h.messaging.ReleaseFunds(c.Request.Context(), roomID, middleware.UserID(c))
	if err != nil {
		writeError(c, "escrow", err)
		return
	}
	logger.Info("[escrow][handler] funds released", zap.String("room_id", roomID))
	c.JSON(http.StatusOK, response.FromRoom(room))
}

func (h *RoomHandler) DisputeFunds(c *gin.Context) {
	roomID := c.Param("room_id")
	room, err := h.messaging.DisputeFunds(c.Request.Context(), roomID, middleware.UserID(c))
	if err != nil {
		writeError(c, "escrow", err)
		return
	}
	logger.Info("[escrow][handler] funds disputed", zap.String("room_id", roomID))
	c.JSON(http.StatusOK, response.FromRoom(room))
}
