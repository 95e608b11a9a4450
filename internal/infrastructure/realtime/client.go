package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"fellowship_escrow/internal/infrastructure/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 16 * 1024
)

// ClientFrame is what a browser sends over the room socket.
type ClientFrame struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type ClientOptions struct {
	PongWait   time.Duration
	PingPeriod time.Duration
	SendBuffer int
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.PongWait <= 0 {
		o.PongWait = 60 * time.Second
	}
	if o.PingPeriod <= 0 || o.PingPeriod >= o.PongWait {
		o.PingPeriod = o.PongWait * 9 / 10
	}
	if o.SendBuffer <= 0 {
		o.SendBuffer = 64
	}
	return o
}

// Client is one websocket connection joined to one room.
type Client struct {
	conn   *websocket.Conn
	roomID string
	userID string
	opts   ClientOptions

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewClient(conn *websocket.Conn, roomID, userID string, opts ClientOptions) *Client {
	opts = opts.withDefaults()
	return &Client{
		conn:   conn,
		roomID: roomID,
		userID: userID,
		opts:   opts,
		send:   make(chan []byte, opts.SendBuffer),
		done:   make(chan struct{}),
	}
}

func (c *Client) RoomID() string { return c.roomID }
func (c *Client) UserID() string { return c.userID }

func (c *Client) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return true
	default:
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// SendJSON queues a frame for this connection only.
func (c *Client) SendJSON(v any) bool {
	frame, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return c.enqueue(frame)
}

func (c *Client) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// ReadPump blocks until the peer goes away or misses the pong window, and
// hands every decodable frame to handle.
func (c *Client) ReadPump(handle func(ClientFrame)) {
	defer c.close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("[realtime][client] read closed", zap.String("room_id", c.roomID), zap.String("user_id", c.userID), zap.Error(err))
			}
			return
		}
		var frame ClientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			c.SendJSON(map[string]string{"event": "error", "message": "invalid frame"})
			continue
		}
		handle(frame)
	}
}

// WritePump owns all writes to the connection, including pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(c.opts.PingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
