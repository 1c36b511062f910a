package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	l := NewRedisLimiter(client, "reports", 1, time.Minute)
	allowed, err := l.Allow(context.Background(), "10.0.0.1")

	assert.True(t, allowed)
	assert.Error(t, err)
}

func TestRedisLimiterZeroLimitDisables(t *testing.T) {
	l := NewRedisLimiter(nil, "reports", 0, time.Minute)
	allowed, err := l.Allow(context.Background(), "10.0.0.1")

	assert.True(t, allowed)
	assert.NoError(t, err)
}

func TestNoop(t *testing.T) {
	allowed, err := Noop{}.Allow(context.Background(), "k")
	assert.True(t, allowed)
	assert.NoError(t, err)
}
