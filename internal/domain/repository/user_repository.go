package repository

import (
	"context"

	"github.com/jhoicas/candy-store-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (solo auth).
// Create devuelve domain.ErrEmailAlreadyExists si el email ya existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
