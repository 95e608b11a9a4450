package interfaces

import "context"

// IRateLimiter answers whether one more event for key fits the configured
// window.
type IRateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// IIDGenerator hands out globally unique, roughly time-ordered ids.
type IIDGenerator interface {
	NextID() string
}
