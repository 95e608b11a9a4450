package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	response "fellowship_escrow/internal/adapter/http/dto/response"
	"fellowship_escrow/internal/adapter/http/middleware"
	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/infrastructure/logger"
	"fellowship_escrow/internal/usecase"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxWebhookBody = 64 << 10

// PaymentHandler exposes payment orders to the paying company and receives
// gateway notifications.
type PaymentHandler struct {
	escrow    usecase.IEscrowUseCase
	lifecycle usecase.ILifecycleUseCase
}

func NewPaymentHandler(escrow usecase.IEscrowUseCase, lifecycle usecase.ILifecycleUseCase) *PaymentHandler {
	return &PaymentHandler{escrow: escrow, lifecycle: lifecycle}
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	order, err := h.ownedOrder(c.Request.Context(), c.Param("order_ref"), middleware.UserID(c))
	if err != nil {
		writeError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentOrder(order))
}

// CancelPayment is called when the payer abandons checkout. The proposal goes
// back to pending and the challenge can be selected again.
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	orderRef := c.Param("order_ref")
	ctx := c.Request.Context()
	if _, err := h.ownedOrder(ctx, orderRef, middleware.UserID(c)); err != nil {
		writeError(c, "payment", err)
		return
	}

	order, err := h.escrow.CancelPayment(ctx, orderRef)
	if err != nil {
		writeError(c, "payment", err)
		return
	}
	logger.Info("[payment][handler] cancelled", zap.String("order_ref", orderRef), zap.String("status", string(order.Status)))
	c.JSON(http.StatusOK, response.FromPaymentOrder(order))
}

// Webhook receives the gateway notification. It is not behind JWT; the
// gateway signature is checked by the usecase.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	orderRef := c.Param("order_ref")
	cb, err := readCallback(c)
	if err != nil {
		logger.Warn("[payment][handler] webhook body unreadable", zap.String("order_ref", orderRef), zap.Error(err))
		writeAppError(c, errInvalidPayload)
		return
	}

	room, err := h.escrow.ConfirmPayment(c.Request.Context(), orderRef, cb)
	if errors.Is(err, usecase.ErrNotificationIgnored) {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	if err != nil {
		writeError(c, "payment", err)
		return
	}
	logger.Info("[payment][handler] webhook confirmed", zap.String("order_ref", orderRef), zap.String("room_id", room.ID))
	c.JSON(http.StatusOK, response.FromRoom(room))
}

func (h *PaymentHandler) ownedOrder(ctx context.Context, orderRef, userID string) (entities.PaymentOrder, error) {
	order, err := h.escrow.GetOrder(ctx, orderRef)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	ch, err := h.lifecycle.GetChallenge(ctx, order.ChallengeID)
	if err != nil {
		return entities.PaymentOrder{}, err
	}
	if ch.CorporateID != userID {
		return entities.PaymentOrder{}, usecase.ErrNotChallengeOwner
	}
	return order, nil
}

func readCallback(c *gin.Context) (interfaces.GatewayCallback, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		return interfaces.GatewayCallback{}, err
	}
	cb := interfaces.GatewayCallback{
		Headers: make(map[string]string, len(c.Request.Header)),
		Query:   make(map[string]string),
		Body:    body,
	}
	for k, v := range c.Request.Header {
		if len(v) > 0 {
			cb.Headers[strings.ToLower(k)] = v[0]
		}
	}
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			cb.Query[k] = v[0]
		}
	}
	return cb, nil
}
