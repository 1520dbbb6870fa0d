package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/NeoVand/WhyBecause/pkg/adapters/redis"
	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/ports/storetest"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	storetest.Run(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	// Store with 1s TTL
	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	doc := domain.NewAgentDocument(&domain.Agent{ID: "ag-ttl", Title: "T", Prompt: "p"})
	require.NoError(t, store.Put(ctx, doc))

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	// Fast forward miniredis for key expiration.
	mr.FastForward(2 * time.Second)

	_, err = store.Get(ctx, "ag-ttl")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	// Index pruning relies on time.Now(), so wait past the TTL wall-clock.
	time.Sleep(1200 * time.Millisecond)

	docs, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	doc := domain.NewFlowDocument(&domain.Flow{ID: "my-flow", Title: "T"})
	require.NoError(t, store.Put(ctx, doc))

	assert.True(t, mr.Exists("custom:app:my-flow"), "expected key with custom prefix")
	assert.True(t, mr.Exists("custom:app:index"), "expected index with custom prefix")

	docs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "my-flow", docs[0].ID)
}
