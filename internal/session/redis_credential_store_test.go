package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisStore(t *testing.T) (*RedisCredentialStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCredentialStoreWithClient(client, testLogger()), mr
}

func TestRedisCredentialStoreRoundTrip(t *testing.T) {
	store, mr := newMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CredentialKeyToken, "a1"))

	token, ok := store.Get(ctx, CredentialKeyToken)
	require.True(t, ok)
	assert.Equal(t, "a1", token)

	// Keys are namespaced so other users of the database stay clear.
	assert.True(t, mr.Exists("credentials:token"))
}

func TestRedisCredentialStoreMissingKey(t *testing.T) {
	store, _ := newMiniredisStore(t)

	_, ok := store.Get(context.Background(), CredentialKeyToken)
	assert.False(t, ok)
}

func TestRedisCredentialStoreClear(t *testing.T) {
	store, mr := newMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CredentialKeyToken, "a1"))
	require.NoError(t, store.Set(ctx, CredentialKeyRefreshToken, "r1"))

	require.NoError(t, store.Clear(ctx))

	assert.False(t, mr.Exists("credentials:token"))
	assert.False(t, mr.Exists("credentials:refreshToken"))
}

func TestRedisCredentialStoreDelete(t *testing.T) {
	store, _ := newMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CredentialKeyToken, "a1"))
	require.NoError(t, store.Delete(ctx, CredentialKeyToken))

	_, ok := store.Get(ctx, CredentialKeyToken)
	assert.False(t, ok)
}

func TestRedisCredentialStoreRejectsUnknownKey(t *testing.T) {
	store, _ := newMiniredisStore(t)

	assert.Error(t, store.Set(context.Background(), "password", "hunter2"))
}
