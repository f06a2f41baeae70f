package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/candy-store-api/internal/application/ports"
)

var _ ports.TokenRevocationStore = (*TokenStore)(nil)

const revokedPrefix = "auth:revoked:"

// TokenStore revocación de tokens JWT en Redis: una clave por jti con TTL igual a la vida restante del token.
type TokenStore struct {
	client goredis.UniversalClient
}

// NewClient construye el cliente desde una URL redis:// o rediss:// y verifica la conexión.
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping Redis: %w", err)
	}
	return client, nil
}

// NewTokenStore construye el adaptador sobre un cliente existente.
func NewTokenStore(client goredis.UniversalClient) *TokenStore {
	return &TokenStore{client: client}
}

// Revoke guarda jti durante ttl. Un ttl no positivo no guarda nada (el token ya expiró).
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revocar token: %w", err)
	}
	return nil
}

// IsRevoked indica si jti está revocado.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("consultar revocación: %w", err)
	}
	return n > 0, nil
}
