package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fellowship_escrow/internal/adapter/http/handlers/mocks"
	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/domain/errs"
	"fellowship_escrow/internal/usecase"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes headers query and body to the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		escrow := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewPaymentHandler(escrow, nil)

		r := gin.New()
		r.POST("/v1/payments/:order_ref/webhook", h.Webhook)

		escrow.EXPECT().ConfirmPayment(gomock.Any(), "ord-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, cb interfaces.GatewayCallback) (entities.ProjectRoom, error) {
			if cb.Headers["x-signature"] != "ts=1,v1=ab" || cb.Headers["x-request-id"] != "req-1" {
				t.Fatalf("unexpected headers: %+v", cb.Headers)
			}
			if cb.Query["data.id"] != "123" || cb.Query["type"] != "payment" {
				t.Fatalf("unexpected query: %+v", cb.Query)
			}
			if string(cb.Body) != `{"data":{"id":"123"}}` {
				t.Fatalf("unexpected body: %s", cb.Body)
			}
			return entities.ProjectRoom{ID: "room-1", EscrowStatus: entities.EscrowStatusHeld}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ord-1/webhook?data.id=123&type=payment", bytes.NewBufferString(`{"data":{"id":"123"}}`))
		req.Header.Set("X-Signature", "ts=1,v1=ab")
		req.Header.Set("X-Request-Id", "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"ignored notification", errs.With(usecase.ErrNotificationIgnored, errors.New("topic merchant_order")), http.StatusOK},
		{"bad signature", errs.Verification("x-signature does not match"), http.StatusUnprocessableEntity},
		{"payment still pending", usecase.ErrPaymentPending, http.StatusConflict},
		{"late payment", usecase.ErrLatePayment, http.StatusConflict},
		{"unknown order", usecase.ErrPaymentOrderNotFound, http.StatusNotFound},
		{"gateway down", errs.Unavailable("payment lookup failed", errors.New("timeout")), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			escrow := mocks.NewMockIEscrowUseCase(ctrl)
			h := NewPaymentHandler(escrow, nil)

			r := gin.New()
			r.POST("/v1/payments/:order_ref/webhook", h.Webhook)

			escrow.EXPECT().ConfirmPayment(gomock.Any(), "ord-1", gomock.Any()).Return(entities.ProjectRoom{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/payments/ord-1/webhook", `{}`)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
		})
	}
}

func TestPaymentHandler_GetAndCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	order := entities.PaymentOrder{ID: "ord-1", ChallengeID: "ch-1", Status: entities.PaymentOrderStatusCreated}

	t.Run("get by owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		escrow := mocks.NewMockIEscrowUseCase(ctrl)
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewPaymentHandler(escrow, lc)

		r := gin.New()
		r.GET("/v1/payments/:order_ref", withUser("corp-1", "corporate"), h.GetPayment)

		escrow.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(order, nil)
		lc.EXPECT().GetChallenge(gomock.Any(), "ch-1").Return(entities.Challenge{ID: "ch-1", CorporateID: "corp-1"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/payments/ord-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel by someone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		escrow := mocks.NewMockIEscrowUseCase(ctrl)
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewPaymentHandler(escrow, lc)

		r := gin.New()
		r.POST("/v1/payments/:order_ref/cancel", withUser("corp-2", "corporate"), h.CancelPayment)

		escrow.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(order, nil)
		lc.EXPECT().GetChallenge(gomock.Any(), "ch-1").Return(entities.Challenge{ID: "ch-1", CorporateID: "corp-1"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/payments/ord-1/cancel", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("cancel by owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		escrow := mocks.NewMockIEscrowUseCase(ctrl)
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewPaymentHandler(escrow, lc)

		r := gin.New()
		r.POST("/v1/payments/:order_ref/cancel", withUser("corp-1", "corporate"), h.CancelPayment)

		cancelled := order
		cancelled.Status = entities.PaymentOrderStatusCancelled
		escrow.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(order, nil)
		lc.EXPECT().GetChallenge(gomock.Any(), "ch-1").Return(entities.Challenge{ID: "ch-1", CorporateID: "corp-1"}, nil)
		escrow.EXPECT().CancelPayment(gomock.Any(), "ord-1").Return(cancelled, nil)

		w := doJSON(r, http.MethodPost, "/v1/payments/ord-1/cancel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
