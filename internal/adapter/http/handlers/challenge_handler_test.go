package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fellowship_escrow/internal/adapter/http/handlers/mocks"
	"fellowship_escrow/internal/adapter/http/middleware"
	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func withUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChallengeHandler_PostChallenge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deadline := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewChallengeHandler(lc, nil)

		r := gin.New()
		r.POST("/v1/challenges", withUser("corp-1", "corporate"), h.PostChallenge)

		w := doJSON(r, http.MethodPost, "/v1/challenges", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("students cannot post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewChallengeHandler(lc, nil)

		r := gin.New()
		r.POST("/v1/challenges", withUser("stu-1", "student"), h.PostChallenge)

		w := doJSON(r, http.MethodPost, "/v1/challenges", `{"title":"t","price":5000,"deadline":"`+deadline+`"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewChallengeHandler(lc, nil)

		r := gin.New()
		r.POST("/v1/challenges", withUser("corp-1", "corporate"), h.PostChallenge)

		lc.EXPECT().PostChallenge(gomock.Any(), gomock.Any()).Return(entities.Challenge{}, usecase.ErrInvalidDeadline)

		w := doJSON(r, http.MethodPost, "/v1/challenges", `{"title":"t","price":5000,"deadline":"`+deadline+`"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID" || body["message"] != "deadline must be in the future" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewChallengeHandler(lc, nil)

		r := gin.New()
		r.POST("/v1/challenges", withUser("corp-1", "corporate"), h.PostChallenge)

		lc.EXPECT().PostChallenge(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.PostChallengeCommand) (entities.Challenge, error) {
			if cmd.CorporateID != "corp-1" || cmd.Price != 5000 {
				t.Fatalf("unexpected command: %+v", cmd)
			}
			return entities.Challenge{ID: "ch-1", CorporateID: "corp-1", Price: 5000, Status: entities.ChallengeStatusOpen}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/challenges", `{"title":"t","price":5000,"deadline":"`+deadline+`"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "ch-1" || body["status"] != "open" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestChallengeHandler_GetAndCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		method   string
		path     string
		setup    func(lc *mocks.MockILifecycleUseCase)
		wantCode int
	}{
		{
			name:   "get not found",
			method: http.MethodGet,
			path:   "/v1/challenges/ch-x",
			setup: func(lc *mocks.MockILifecycleUseCase) {
				lc.EXPECT().GetChallenge(gomock.Any(), "ch-x").Return(entities.Challenge{}, usecase.ErrChallengeNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "get ok",
			method: http.MethodGet,
			path:   "/v1/challenges/ch-1",
			setup: func(lc *mocks.MockILifecycleUseCase) {
				lc.EXPECT().GetChallenge(gomock.Any(), "ch-1").Return(entities.Challenge{ID: "ch-1"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "cancel by another company",
			method: http.MethodPost,
			path:   "/v1/challenges/ch-1/cancel",
			setup: func(lc *mocks.MockILifecycleUseCase) {
				lc.EXPECT().CancelChallenge(gomock.Any(), "ch-1", "corp-1").Return(entities.Challenge{}, usecase.ErrNotChallengeOwner)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "cancel while selection in flight",
			method: http.MethodPost,
			path:   "/v1/challenges/ch-1/cancel",
			setup: func(lc *mocks.MockILifecycleUseCase) {
				lc.EXPECT().CancelChallenge(gomock.Any(), "ch-1", "corp-1").Return(entities.Challenge{}, usecase.ErrSelectionInFlight)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			lc := mocks.NewMockILifecycleUseCase(ctrl)
			tc.setup(lc)
			h := NewChallengeHandler(lc, nil)

			r := gin.New()
			g := r.Group("/v1", withUser("corp-1", "corporate"))
			g.GET("/challenges/:challenge_id", h.GetChallenge)
			g.POST("/challenges/:challenge_id/cancel", h.CancelChallenge)

			w := doJSON(r, tc.method, tc.path, "")
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
		})
	}
}

func TestChallengeHandler_Proposals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewChallengeHandler(lc, nil)

		r := gin.New()
		r.POST("/v1/challenges/:challenge_id/proposals", withUser("stu-1", "student"), h.SubmitProposal)

		lc.EXPECT().SubmitProposal(gomock.Any(), "ch-1", "stu-1", "hire me").Return(entities.Proposal{}, usecase.ErrProposalAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/challenges/ch-1/proposals", `{"cover_letter":"hire me"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("submit ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewChallengeHandler(lc, nil)

		r := gin.New()
		r.POST("/v1/challenges/:challenge_id/proposals", withUser("stu-1", "student"), h.SubmitProposal)

		lc.EXPECT().SubmitProposal(gomock.Any(), "ch-1", "stu-1", "hire me").Return(entities.Proposal{ID: "p-1", Status: entities.ProposalStatusPending}, nil)

		w := doJSON(r, http.MethodPost, "/v1/challenges/ch-1/proposals", `{"cover_letter":"hire me"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewChallengeHandler(lc, nil)

		r := gin.New()
		r.GET("/v1/challenges/:challenge_id/proposals", withUser("corp-1", "corporate"), h.ListProposals)

		lc.EXPECT().ListProposals(gomock.Any(), "ch-1").Return([]entities.Proposal{{ID: "p-1"}, {ID: "p-2"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/challenges/ch-1/proposals", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 proposals, got %s", w.Body.String())
		}
	})
}

func TestChallengeHandler_SelectProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lost the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		escrow := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewChallengeHandler(nil, escrow)

		r := gin.New()
		r.POST("/v1/challenges/:challenge_id/proposals/:proposal_id/select", withUser("corp-1", "corporate"), h.SelectProposal)

		escrow.EXPECT().InitiateEscrow(gomock.Any(), usecase.InitiateEscrowCommand{
			ChallengeID: "ch-1", ProposalID: "p-1", Amount: 5000, ActorID: "corp-1",
		}).Return(entities.PaymentOrder{}, usecase.ErrSelectionInFlight)

		w := doJSON(r, http.MethodPost, "/v1/challenges/ch-1/proposals/p-1/select", `{"amount":5000}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("amount mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		escrow := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewChallengeHandler(nil, escrow)

		r := gin.New()
		r.POST("/v1/challenges/:challenge_id/proposals/:proposal_id/select", withUser("corp-1", "corporate"), h.SelectProposal)

		escrow.EXPECT().InitiateEscrow(gomock.Any(), gomock.Any()).Return(entities.PaymentOrder{}, usecase.ErrEscrowAmountMismatch)

		w := doJSON(r, http.MethodPost, "/v1/challenges/ch-1/proposals/p-1/select", `{"amount":1}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("checkout opened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		escrow := mocks.NewMockIEscrowUseCase(ctrl)
		h := NewChallengeHandler(nil, escrow)

		r := gin.New()
		r.POST("/v1/challenges/:challenge_id/proposals/:proposal_id/select", withUser("corp-1", "corporate"), h.SelectProposal)

		escrow.EXPECT().InitiateEscrow(gomock.Any(), gomock.Any()).Return(entities.PaymentOrder{
			ID: "ord-1", SelectionToken: "tok", Status: entities.PaymentOrderStatusCreated, CheckoutURL: "https://checkout/ord-1",
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/challenges/ch-1/proposals/p-1/select", `{"amount":5000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["order_ref"] != "ord-1" || body["checkout_url"] != "https://checkout/ord-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, leaked := body["selection_token"]; leaked {
			t.Fatalf("selection token leaked: %s", w.Body.String())
		}
	})
}
