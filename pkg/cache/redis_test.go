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

func newCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCacheWithClient(client), mr
}

func TestRedisCacheSetGetRoundTrip(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, c.Set(ctx, "key", payload{Name: "en", Count: 2}, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "key", &got))
	assert.Equal(t, payload{Name: "en", Count: 2}, got)
}

func TestRedisCacheGetMissingKey(t *testing.T) {
	c, _ := newCache(t)

	var got string
	err := c.Get(context.Background(), "absent", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCacheTTLExpiry(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
	mr.FastForward(2 * time.Minute)

	var got string
	assert.ErrorIs(t, c.Get(ctx, "key", &got), ErrCacheMiss)
}

func TestRedisCacheSetMembership(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.SAdd(ctx, "tag:languages", "a", "b"))
	members, err := c.SMembers(ctx, "tag:languages")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, members)

	require.NoError(t, c.SRem(ctx, "tag:languages", "a"))
	members, err = c.SMembers(ctx, "tag:languages")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, members)
}

func TestRedisCacheDeleteAndExists(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
	exists, err := c.Exists(ctx, "key")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, c.Delete(ctx, "key"))
	exists, err = c.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)
}
