package servicerules

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)

	client, err := NewClient(context.Background(), srv.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client, ttl), srv
}

func TestCache_MissOnEmpty(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	rules, found, err := cache.Get(context.Background())

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, rules)
}

func TestCache_SetThenGet(t *testing.T) {
	cache, srv := newTestCache(t, time.Minute)
	ctx := context.Background()

	stored := []*domain.ServiceRule{
		{ServiceID: "nail-art", Kind: domain.RuleFixed, BlockHours: 2},
		{ServiceID: "makeup", Kind: domain.RuleWholeDay},
	}
	require.NoError(t, cache.Set(ctx, stored))

	rules, found, err := cache.Get(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []*domain.ServiceRule{
		{ServiceID: "nail-art", Kind: domain.RuleFixed, BlockHours: 2},
		{ServiceID: "makeup", Kind: domain.RuleWholeDay},
	}, rules)
	assert.Equal(t, time.Minute, srv.TTL(cacheKey))
}

func TestCache_EmptyOverridesAreAHit(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, nil))

	rules, found, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, rules)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	cache, srv := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, []*domain.ServiceRule{{ServiceID: "makeup", Kind: domain.RuleWholeDay}}))
	srv.FastForward(2 * time.Minute)

	_, found, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, []*domain.ServiceRule{{ServiceID: "makeup", Kind: domain.RuleWholeDay}}))
	require.NoError(t, cache.Invalidate(ctx))

	_, found, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_CorruptedValue(t *testing.T) {
	cache, srv := newTestCache(t, time.Minute)
	require.NoError(t, srv.Set(cacheKey, "not-json"))

	_, _, err := cache.Get(context.Background())

	assert.ErrorIs(t, err, ErrCache)
}

func TestCache_ServerDown(t *testing.T) {
	cache, srv := newTestCache(t, time.Minute)
	srv.Close()

	_, _, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrCache)
	assert.ErrorIs(t, cache.Invalidate(context.Background()), ErrCache)
}

func TestNewClient_Unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := NewClient(context.Background(), addr, "", 0)
	assert.Error(t, err)
}
