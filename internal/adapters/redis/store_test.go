package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulrpotts/thinking-of-an-animal/internal/adapters/redis"
	"github.com/paulrpotts/thinking-of-an-animal/pkg/ports"
	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

func newTestStore(t *testing.T, opts ...redis.Option) *redis.Store {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...)
}

func TestRedisStore_Contract(t *testing.T) {
	ports.RunTreeStoreContract(t, newTestStore(t))
}

func TestRedisStore_PrefixKeepsNamespacesApart(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	first := redis.NewFromClient(client, redis.WithPrefix("one:"))
	second := redis.NewFromClient(client, redis.WithPrefix("two:"))
	ctx := context.Background()

	require.NoError(t, first.Save(ctx, "animals", tree.Seed()))

	_, err = second.Load(ctx, "animals")
	assert.ErrorIs(t, err, tree.ErrNotFound)
}

func TestRedisStore_TTLExpiresTree(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "animals", tree.Seed()))

	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, "animals")
	assert.ErrorIs(t, err, tree.ErrNotFound)
}
