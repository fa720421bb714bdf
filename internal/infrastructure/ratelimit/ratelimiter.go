package ratelimit

import "context"

// RateLimiter answers whether a request under the given key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
