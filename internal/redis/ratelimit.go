package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Rate limiting key pattern: ratelimit:message:{user_id}, fixed 60s window.

type RateLimitConfig struct {
	MessageLimit  int           // Max messages per window
	MessageWindow time.Duration // Message rate limit window
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MessageLimit:  60,
		MessageWindow: 60 * time.Second,
	}
}

// RateLimiter throttles message sends per user using a fixed redis window.
type RateLimiter struct {
	client *goredis.Client
	config RateLimitConfig
}

// RateLimitResult contains the result of a rate limit check
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
	Limit     int
}

func NewRateLimiter(client *goredis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{client: client, config: config}
}

// AllowMessage checks whether the user may send another message inside the
// current window and counts the attempt.
func (rl *RateLimiter) AllowMessage(ctx context.Context, userID string) (*RateLimitResult, error) {
	key := fmt.Sprintf("ratelimit:message:%s", userID)

	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, key, rl.config.MessageWindow).Err(); err != nil {
			return nil, err
		}
	}

	ttl, err := rl.client.TTL(ctx, key).Result()
	if err != nil {
		ttl = rl.config.MessageWindow
	}

	remaining := rl.config.MessageLimit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return &RateLimitResult{
		Allowed:   count <= int64(rl.config.MessageLimit),
		Remaining: remaining,
		ResetIn:   ttl,
		Limit:     rl.config.MessageLimit,
	}, nil
}
