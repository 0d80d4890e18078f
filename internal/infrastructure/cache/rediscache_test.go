package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/organization"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisSessionCache_RoundTripAndExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisSessionCache(client)
	ctx := context.Background()

	miss, err := c.Get(ctx, "usr_1")
	require.NoError(t, err)
	assert.Nil(t, miss)

	sc := &session.Context{UserID: 1, UserSID: "usr_1", TenantCNPJ: "12345678000195", IsAdmin: true}
	require.NoError(t, c.Set(ctx, sc, time.Minute))

	got, err := c.Get(ctx, "usr_1")
	require.NoError(t, err)
	assert.Equal(t, sc, got)

	mr.FastForward(2 * time.Minute)
	got, err = c.Get(ctx, "usr_1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSessionCache_Invalidate(t *testing.T) {
	_, client := newTestRedis(t)
	c := NewRedisSessionCache(client)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &session.Context{UserSID: "usr_1"}, time.Minute))
	require.NoError(t, c.Invalidate(ctx, "usr_1"))

	got, err := c.Get(ctx, "usr_1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisBatchStore_ScopedByTenant(t *testing.T) {
	mr, client := newTestRedis(t)
	s := NewRedisBatchStore(client, time.Hour)
	ctx := context.Background()

	b := organization.NewBatch("batch_1", "12345678000195", 4)
	b.Advance("odoc_a")
	require.NoError(t, s.Save(ctx, b))

	got, err := s.Get(ctx, "12345678000195", "batch_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.Processed)
	assert.InDelta(t, 25.0, got.Progress, 0.001)
	assert.Equal(t, []string{"odoc_a"}, got.DocumentSIDs)

	other, err := s.Get(ctx, "99999999000191", "batch_1")
	require.NoError(t, err)
	assert.Nil(t, other)

	assert.Equal(t, time.Hour, mr.TTL(batchKeyPrefix+"12345678000195:batch_1"))
}

func TestRedisBatchStore_RejectsIncompleteBatch(t *testing.T) {
	_, client := newTestRedis(t)
	s := NewRedisBatchStore(client, 0)

	assert.Error(t, s.Save(context.Background(), &organization.Batch{ID: "batch_1"}))
}
