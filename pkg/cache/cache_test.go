package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitCountsWithinWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := Hit(ctx, client, "ratelimit:test", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestHitWindowExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	_, err := Hit(ctx, client, "ratelimit:test", time.Minute)
	require.NoError(t, err)
	_, err = Hit(ctx, client, "ratelimit:test", time.Minute)
	require.NoError(t, err)

	mr.FastForward(61 * time.Second)

	got, err := Hit(ctx, client, "ratelimit:test", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestHitWindowAnchoredToFirstHit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	_, err := Hit(ctx, client, "ratelimit:test", time.Minute)
	require.NoError(t, err)

	// 后续命中不应续期
	mr.FastForward(40 * time.Second)
	_, err = Hit(ctx, client, "ratelimit:test", time.Minute)
	require.NoError(t, err)

	mr.FastForward(21 * time.Second)
	got, err := Hit(ctx, client, "ratelimit:test", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
