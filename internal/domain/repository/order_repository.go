package repository

import (
	"context"

	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Find(ctx context.Context, crit filter.Criteria) ([]*entity.Order, error)
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	Insert(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
}
