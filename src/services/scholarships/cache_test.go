package scholarships

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"Backend-Scholarship-Finder/src/logger"
)

func TestCacheWarnsWhenRedisWritesFail(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })

	c := NewCache(client, time.Minute, logger.NewZapAdapter(zap.New(core)))
	ctx := context.Background()

	c.Set(ctx, ListKey("all", 1), []string{"a"})
	require.Zero(t, logs.Len())

	mr.Close()
	c.Set(ctx, ListKey("all", 2), []string{"b"})
	c.InvalidateLists(ctx)

	warned := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warned, 2)
	assert.Equal(t, "⚠️ failed to cache listing", warned[0].Message)
	assert.Equal(t, "⚠️ failed to scan cached listings", warned[1].Message)
}

func TestCacheRoundTripThroughRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewCache(client, time.Minute, nil)
	ctx := context.Background()
	key := ListKey("featured", map[string]int{"page": 1})

	c.Set(ctx, key, []string{"a", "b"})
	var got []string
	require.True(t, c.Get(ctx, key, &got))
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, time.Minute, mr.TTL(key))

	c.InvalidateLists(ctx)
	assert.False(t, mr.Exists(key))
}
