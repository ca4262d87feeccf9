package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisLimiter_BlocksAfterLimit(t *testing.T) {
	_, client := setupRedis(t)
	l := NewRedisLimiter(client, 3, time.Hour, "pqr")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
	}

	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	other, err := l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, other)
}

func TestRedisLimiter_WindowExpires(t *testing.T) {
	mr, client := setupRedis(t)
	l := NewRedisLimiter(client, 1, time.Minute, "pqr")
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "ip")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "ip")
	assert.False(t, ok)

	assert.True(t, mr.Exists("pqr:ip"))
	mr.FastForward(2 * time.Minute)

	ok, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_RetriesExtendTheWindow(t *testing.T) {
	mr, client := setupRedis(t)
	l := NewRedisLimiter(client, 1, time.Minute, "pqr")
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "ip")
	assert.True(t, ok)

	mr.FastForward(40 * time.Second)
	ok, _ = l.Allow(ctx, "ip")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, mr.TTL("pqr:ip"))

	mr.FastForward(40 * time.Second)
	ok, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisLimiter_FailsOpen(t *testing.T) {
	mr, client := setupRedis(t)
	l := NewRedisLimiter(client, 1, time.Minute, "")
	mr.Close()

	ok, err := l.Allow(context.Background(), "ip")

	assert.Error(t, err)
	assert.True(t, ok)
}

func TestNewClient(t *testing.T) {
	_, err := NewClient("redis://localhost:6379/0")
	assert.NoError(t, err)

	_, err = NewClient("::bad")
	assert.Error(t, err)
}
