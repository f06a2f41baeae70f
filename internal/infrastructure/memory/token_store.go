package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/candy-store-api/internal/application/ports"
)

var _ ports.TokenRevocationStore = (*TokenStore)(nil)

// TokenStore revocación de tokens en memoria (sin Redis). Las entradas vencidas se purgan al revocar.
type TokenStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewTokenStore construye el almacén vacío.
func NewTokenStore() *TokenStore {
	return &TokenStore{revoked: make(map[string]time.Time), now: time.Now}
}

// Revoke marca jti como revocado durante ttl.
func (s *TokenStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, k)
		}
	}
	s.revoked[jti] = now.Add(ttl)
	return nil
}

// IsRevoked indica si jti sigue revocado.
func (s *TokenStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.revoked[jti]
	return ok && exp.After(s.now()), nil
}
