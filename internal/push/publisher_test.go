package push

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	ctx := context.Background()

	publisher := NewRedisPublisher(rdb)
	require.NoError(t, publisher.Publish(ctx, testMessage()))

	payload, err := rdb.RPop(ctx, pushQueueKey).Result()
	require.NoError(t, err)

	var got Message
	require.NoError(t, json.Unmarshal([]byte(payload), &got))
	assert.Equal(t, testMessage(), got)
}
