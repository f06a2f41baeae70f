package ports

import (
	"context"
	"time"
)

// TokenRevocationStore define el puerto de salida para revocar tokens JWT (logout).
// Los adaptadores (Redis, memoria) guardan el jti hasta que el token expira;
// pasado ese tiempo el token ya no es aceptado por su propia expiración.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
