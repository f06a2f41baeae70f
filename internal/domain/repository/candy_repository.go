package repository

import (
	"context"

	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
)

// CandyRepository define el puerto de persistencia para Candy (DIP).
// FindByID devuelve (nil, nil) si no existe; Update y Delete devuelven domain.ErrNotFound.
type CandyRepository interface {
	Find(ctx context.Context, crit filter.Criteria) ([]*entity.Candy, error)
	FindByID(ctx context.Context, id string) (*entity.Candy, error)
	Insert(ctx context.Context, candy *entity.Candy) error
	Update(ctx context.Context, candy *entity.Candy) error
	Delete(ctx context.Context, id string) error
}
