package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fellowship_escrow/internal/adapter/http/handlers"
	"fellowship_escrow/internal/adapter/http/handlers/mocks"
	"fellowship_escrow/internal/adapter/http/middleware"
	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/infrastructure/realtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testSecret = "route-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockILifecycleUseCase, *mocks.MockIEscrowUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	lc := mocks.NewMockILifecycleUseCase(ctrl)
	escrow := mocks.NewMockIEscrowUseCase(ctrl)
	msg := mocks.NewMockIMessagingUseCase(ctrl)
	hub := realtime.NewHub()

	r := Setup(Handlers{
		Challenges: handlers.NewChallengeHandler(lc, escrow),
		Payments:   handlers.NewPaymentHandler(escrow, lc),
		Rooms:      handlers.NewRoomHandler(msg),
		Realtime:   handlers.NewRealtimeHandler(msg, hub, realtime.NewPresence(hub, time.Second), realtime.ClientOptions{}),
	}, testSecret)
	return r, lc, escrow
}

func TestSetup_PublicRoutes(t *testing.T) {
	r, _, escrow := newTestRouter(t)

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("webhook needs no token", func(t *testing.T) {
		escrow.EXPECT().ConfirmPayment(gomock.Any(), "ord-1", gomock.Any()).Return(entities.ProjectRoom{ID: "room-1"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/payments/ord-1/webhook", bytes.NewBufferString(`{}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSetup_PrivateRoutesNeedToken(t *testing.T) {
	r, lc, _ := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/v1/challenges"},
		{http.MethodGet, "/v1/challenges/ch-1"},
		{http.MethodGet, "/v1/payments/ord-1"},
		{http.MethodPost, "/v1/payments/ord-1/cancel"},
		{http.MethodGet, "/v1/rooms/room-1/messages"},
		{http.MethodGet, "/v1/rooms/room-1/ws"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}

	t.Run("valid token reaches the handler", func(t *testing.T) {
		token, err := middleware.GenerateToken(testSecret, "corp-1", "corporate", time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lc.EXPECT().GetChallenge(gomock.Any(), "ch-1").Return(entities.Challenge{ID: "ch-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/challenges/ch-1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
