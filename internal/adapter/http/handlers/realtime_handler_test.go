package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fellowship_escrow/internal/adapter/http/handlers/mocks"
	"fellowship_escrow/internal/domain/entities"
	"fellowship_escrow/internal/infrastructure/realtime"
	"fellowship_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type wsFrame struct {
	Event   string          `json:"event"`
	RoomID  string          `json:"room_id"`
	Code    string          `json:"code"`
	Payload json.RawMessage `json:"payload"`
}

func startRealtimeServer(t *testing.T, msg *mocks.MockIMessagingUseCase, userID string) (*httptest.Server, *realtime.Presence) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := realtime.NewHub()
	presence := realtime.NewPresence(hub, time.Second)
	h := NewRealtimeHandler(msg, hub, presence, realtime.ClientOptions{PongWait: 5 * time.Second})

	r := gin.New()
	r.GET("/v1/rooms/:room_id/ws", withUser(userID, ""), h.Connect)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, presence
}

func wsURL(srv *httptest.Server, roomID string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/rooms/" + roomID + "/ws"
}

func readFrame(t *testing.T, conn *websocket.Conn) wsFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f wsFrame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestRealtimeHandler_RejectsNonParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	msg := mocks.NewMockIMessagingUseCase(ctrl)
	msg.EXPECT().Authorize(gomock.Any(), "room-1", "intruder").Return(entities.ProjectRoom{}, entities.ParticipantRole(""), usecase.ErrNotRoomParticipant)

	srv, _ := startRealtimeServer(t, msg, "intruder")

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "room-1"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRealtimeHandler_Session(t *testing.T) {
	ctrl := gomock.NewController(t)
	msg := mocks.NewMockIMessagingUseCase(ctrl)
	msg.EXPECT().Authorize(gomock.Any(), "room-1", "stu-1").Return(entities.ProjectRoom{ID: "room-1"}, entities.ParticipantRoleStudent, nil)
	msg.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.SendMessageCommand) (entities.RoomMessage, error) {
		return entities.RoomMessage{ID: cmd.MessageID, RoomID: cmd.RoomID, SenderID: cmd.SenderID, Content: cmd.Content, Type: entities.MessageTypeText}, nil
	})

	srv, presence := startRealtimeServer(t, msg, "stu-1")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "room-1"), nil)
	require.NoError(t, err)

	joined := readFrame(t, conn)
	assert.Equal(t, "presence", joined.Event)
	assert.Equal(t, "room-1", joined.RoomID)
	assert.Equal(t, []string{"stu-1"}, presence.OnlineUsers("room-1"))

	require.NoError(t, conn.WriteJSON(map[string]any{"event": "typing", "payload": map[string]bool{"is_typing": true}}))
	typing := readFrame(t, conn)
	assert.Equal(t, "typing", typing.Event)
	assert.Equal(t, []string{"stu-1"}, presence.TypingUsers("room-1"))

	require.NoError(t, conn.WriteJSON(map[string]any{"event": "message", "payload": map[string]string{"id": "m-1", "content": "hello"}}))
	ack := readFrame(t, conn)
	assert.Equal(t, "ack", ack.Event)
	var acked struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(ack.Payload, &acked))
	assert.Equal(t, "m-1", acked.ID)

	require.NoError(t, conn.WriteJSON(map[string]any{"event": "dance"}))
	unknown := readFrame(t, conn)
	assert.Equal(t, "error", unknown.Event)
	assert.Equal(t, "UNKNOWN_EVENT", unknown.Code)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool {
		return len(presence.OnlineUsers("room-1")) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
