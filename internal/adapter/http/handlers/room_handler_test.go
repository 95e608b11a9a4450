package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"fellowship_escrow/internal/adapter/http/handlers/mocks"
	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRoomRouter(h *RoomHandler, userID, role string) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/rooms", withUser(userID, role))
	g.GET("/:room_id", h.GetRoom)
	g.GET("/:room_id/messages", h.ListMessages)
	g.POST("/:room_id/messages", h.SendMessage)
	g.POST("/:room_id/release", h.ReleaseFunds)
	g.POST("/:room_id/dispute", h.DisputeFunds)
	return r
}

func TestRoomHandler_Messages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("replay since", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		msg := mocks.NewMockIMessagingUseCase(ctrl)
		r := newRoomRouter(NewRoomHandler(msg), "stu-1", "student")

		msg.EXPECT().Replay(gomock.Any(), "room-1", "stu-1", "m-1").Return([]entities.RoomMessage{{ID: "m-2"}, {ID: "m-3"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/rooms/room-1/messages?since=m-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "m-2" || body[1]["id"] != "m-3" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("non participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		msg := mocks.NewMockIMessagingUseCase(ctrl)
		r := newRoomRouter(NewRoomHandler(msg), "intruder", "student")

		msg.EXPECT().Replay(gomock.Any(), "room-1", "intruder", "").Return(nil, usecase.ErrNotRoomParticipant)

		w := doJSON(r, http.MethodGet, "/v1/rooms/room-1/messages", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("send returns the assigned id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		msg := mocks.NewMockIMessagingUseCase(ctrl)
		r := newRoomRouter(NewRoomHandler(msg), "stu-1", "student")

		msg.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.SendMessageCommand) (entities.RoomMessage, error) {
			if cmd.RoomID != "room-1" || cmd.SenderID != "stu-1" || cmd.Content != "hello" {
				t.Fatalf("unexpected command: %+v", cmd)
			}
			return entities.RoomMessage{ID: "m-9", RoomID: "room-1", Content: "hello", Type: entities.MessageTypeText}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/rooms/room-1/messages", `{"content":"hello"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "m-9" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("send rate limited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		msg := mocks.NewMockIMessagingUseCase(ctrl)
		r := newRoomRouter(NewRoomHandler(msg), "stu-1", "student")

		msg.EXPECT().Send(gomock.Any(), gomock.Any()).Return(entities.RoomMessage{}, usecase.ErrMessageRateLimited)

		w := doJSON(r, http.MethodPost, "/v1/rooms/room-1/messages", `{"content":"hello"}`)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})
}

func TestRoomHandler_Escrow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		path     string
		setup    func(m *mocks.MockIMessagingUseCase)
		wantCode int
	}{
		{
			name: "release",
			path: "/v1/rooms/room-1/release",
			setup: func(m *mocks.MockIMessagingUseCase) {
				m.EXPECT().ReleaseFunds(gomock.Any(), "room-1", "corp-1").Return(entities.ProjectRoom{
					ID: "room-1", EscrowStatus: entities.EscrowStatusReleased, Status: entities.RoomStatusCompleted,
				}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "release twice",
			path: "/v1/rooms/room-1/release",
			setup: func(m *mocks.MockIMessagingUseCase) {
				m.EXPECT().ReleaseFunds(gomock.Any(), "room-1", "corp-1").Return(entities.ProjectRoom{}, usecase.ErrEscrowSettled)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "dispute by student",
			path: "/v1/rooms/room-1/dispute",
			setup: func(m *mocks.MockIMessagingUseCase) {
				m.EXPECT().DisputeFunds(gomock.Any(), "room-1", "corp-1").Return(entities.ProjectRoom{}, usecase.ErrOnlyCompanyCanSettle)
			},
			wantCode: http.StatusForbidden,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			msg := mocks.NewMockIMessagingUseCase(ctrl)
			tc.setup(msg)
			r := newRoomRouter(NewRoomHandler(msg), "corp-1", "corporate")

			w := doJSON(r, http.MethodPost, tc.path, "")
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
		})
	}
}

func TestRoomHandler_GetRoom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	msg := mocks.NewMockIMessagingUseCase(ctrl)
	r := newRoomRouter(NewRoomHandler(msg), "stu-1", "student")

	msg.EXPECT().GetRoomView(gomock.Any(), "room-1", "stu-1").Return(usecase.RoomView{
		Room:        entities.ProjectRoom{ID: "room-1"},
		Role:        entities.ParticipantRoleStudent,
		OnlineUsers: []string{"corp-1", "stu-1"},
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/rooms/room-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Role        string   `json:"role"`
		OnlineUsers []string `json:"online_users"`
		TypingUsers []string `json:"typing_users"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Role != "student" || len(body.OnlineUsers) != 2 || body.TypingUsers == nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
