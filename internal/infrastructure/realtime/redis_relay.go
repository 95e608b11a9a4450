package realtime

import (
	"context"
	"strings"

	"fellowship_escrow/internal/infrastructure/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const roomChannelPrefix = "room:"

var _ Publisher = (*RedisRelay)(nil)

// RedisRelay shares room events between instances over pub/sub on
// room:<id>. Redis keeps per-channel publish order.
type RedisRelay struct {
	client *redis.Client
}

func NewRedisRelay(client *redis.Client) *RedisRelay {
	return &RedisRelay{client: client}
}

func (r *RedisRelay) Publish(ctx context.Context, roomID string, frame []byte) error {
	return r.client.Publish(ctx, roomChannelPrefix+roomID, frame).Err()
}

// Run delivers every relayed frame to the hub until ctx is done.
func (r *RedisRelay) Run(ctx context.Context, hub *Hub) error {
	sub := r.client.PSubscribe(ctx, roomChannelPrefix+"*")
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	logger.Info("[realtime][relay] subscribed", zap.String("pattern", roomChannelPrefix+"*"))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			roomID := strings.TrimPrefix(msg.Channel, roomChannelPrefix)
			hub.Deliver(roomID, []byte(msg.Payload))
		}
	}
}
