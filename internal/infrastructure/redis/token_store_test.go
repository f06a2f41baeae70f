package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraredis "github.com/jhoicas/candy-store-api/internal/infrastructure/redis"
)

func newStore(t *testing.T) (*infraredis.TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := infraredis.NewClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return infraredis.NewTokenStore(client), mr
}

func TestTokenStore_RevocaYExpira(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "la revocación vence con el token")
}

func TestTokenStore_TTLNoPositivoNoGuarda(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	require.NoError(t, store.Revoke(ctx, "jti-2", 0))
	assert.False(t, mr.Exists("auth:revoked:jti-2"))
}

func TestNewClient_URLInvalida(t *testing.T) {
	_, err := infraredis.NewClient(context.Background(), "://sin-esquema")
	assert.Error(t, err)
}
