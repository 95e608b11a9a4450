package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fellowship_escrow/internal/domain/errs"
	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveRoom(t *testing.T, hub *Hub, frames chan<- ClientFrame) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := NewClient(conn, r.URL.Query().Get("room"), r.URL.Query().Get("user"), ClientOptions{PongWait: time.Second})
		hub.Register(c)
		go c.WritePump()
		c.ReadPump(func(f ClientFrame) { frames <- f })
		hub.Unregister(c)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, room, user string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?room=" + room + "&user=" + user
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForConnections(t *testing.T, hub *Hub, roomID string, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ConnectionCount(roomID) == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_EmitReachesRoomInOrder(t *testing.T) {
	hub := NewHub()
	frames := make(chan ClientFrame, 4)
	srv := serveRoom(t, hub, frames)

	a := dial(t, srv, "room-1", "stu-1")
	other := dial(t, srv, "room-2", "stu-9")
	waitForConnections(t, hub, "room-1", 1)
	waitForConnections(t, hub, "room-2", 1)

	for _, id := range []string{"m1", "m2", "m3"} {
		require.NoError(t, hub.Emit(context.Background(), "room-1", interfaces.RoomEvent{
			Event: interfaces.EventMessage, RoomID: "room-1", Payload: map[string]string{"id": id},
		}))
	}

	_ = a.SetReadDeadline(time.Now().Add(2 * time.Second))
	for _, want := range []string{"m1", "m2", "m3"} {
		var ev struct {
			Event   string            `json:"event"`
			Payload map[string]string `json:"payload"`
		}
		require.NoError(t, a.ReadJSON(&ev))
		assert.Equal(t, interfaces.EventMessage, ev.Event)
		assert.Equal(t, want, ev.Payload["id"])
	}

	_ = other.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := other.ReadMessage()
	assert.Error(t, err, "other rooms receive nothing")
}

func TestHub_ClientFramesAndDisconnect(t *testing.T) {
	hub := NewHub()
	frames := make(chan ClientFrame, 4)
	srv := serveRoom(t, hub, frames)

	conn := dial(t, srv, "room-1", "stu-1")
	waitForConnections(t, hub, "room-1", 1)

	require.NoError(t, conn.WriteJSON(map[string]any{"event": "typing", "payload": map[string]bool{"is_typing": true}}))
	select {
	case f := <-frames:
		assert.Equal(t, "typing", f.Event)
		var p struct {
			IsTyping bool `json:"is_typing"`
		}
		require.NoError(t, json.Unmarshal(f.Payload, &p))
		assert.True(t, p.IsTyping)
	case <-time.After(2 * time.Second):
		t.Fatal("frame not received")
	}

	require.NoError(t, conn.Close())
	waitForConnections(t, hub, "room-1", 0)
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	c := NewClient(nil, "room-1", "stu-1", ClientOptions{SendBuffer: 1})
	hub.Register(c)

	hub.Deliver("room-1", []byte(`{"n":1}`))
	assert.Equal(t, 1, hub.ConnectionCount("room-1"))

	hub.Deliver("room-1", []byte(`{"n":2}`))
	assert.Equal(t, 0, hub.ConnectionCount("room-1"))
	select {
	case <-c.done:
	default:
		t.Fatal("dropped client must be closed")
	}
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, string, []byte) error {
	return errors.New("redis unreachable")
}

func TestHub_PublishFailureStillDeliversLocally(t *testing.T) {
	hub := NewHub()
	hub.UsePublisher(failingPublisher{})
	c := NewClient(nil, "room-1", "stu-1", ClientOptions{SendBuffer: 2})
	hub.Register(c)

	err := hub.Emit(context.Background(), "room-1", interfaces.RoomEvent{Event: interfaces.EventTyping, RoomID: "room-1"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindTransport))
	assert.Len(t, c.send, 1)
}
