package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestPushTokenStore_AddIsIdempotent(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewPushTokenStore(rdb)
	ctx := context.Background()

	added, err := store.Add(ctx, "ExponentPushToken[abc]")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Add(ctx, "ExponentPushToken[abc]")
	require.NoError(t, err)
	assert.False(t, added)

	tokens, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ExponentPushToken[abc]"}, tokens)
}

func TestPushTokenStore_ListEmpty(t *testing.T) {
	_, rdb := newTestRedis(t)

	tokens, err := NewPushTokenStore(rdb).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestPushTokenStore_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer rdb.Close()

	_, err := NewPushTokenStore(rdb).Add(context.Background(), "ExponentPushToken[abc]")
	assert.Error(t, err)
}

func TestLoginAttemptStore(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewLoginAttemptStore(rdb)
	ctx := context.Background()

	count, err := store.Count(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = store.Increment(ctx, "alice", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// окно отсчитывается от первой неудачи и не продлевается
	mr.FastForward(5 * time.Minute)
	count, err = store.Increment(ctx, "alice", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 10*time.Minute, mr.TTL(loginAttemptsKey("alice")))

	count, err = store.Count(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, store.Reset(ctx, "alice"))
	count, err = store.Count(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLoginAttemptStore_WindowExpires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewLoginAttemptStore(rdb)
	ctx := context.Background()

	_, err := store.Increment(ctx, "alice", time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	count, err := store.Count(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, count)
}
