package repository

import (
	"context"

	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Find(ctx context.Context, crit filter.Criteria) ([]*entity.Store, error)
	FindByID(ctx context.Context, id string) (*entity.Store, error)
	Insert(ctx context.Context, store *entity.Store) error
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id string) error
}
