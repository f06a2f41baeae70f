package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

type orderRecord struct{ entity.Order }

func (r orderRecord) field(name string) string {
	switch name {
	case "customerId":
		return r.CustomerID
	case "customerName":
		return r.CustomerName
	case "status":
		return r.Status
	}
	return ""
}

// OrderRepo implementación en memoria de OrderRepository.
type OrderRepo struct {
	db *DB
}

// NewOrderRepository construye el repositorio sobre db.
func NewOrderRepository(db *DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Find devuelve los pedidos que cumplen crit.
func (r *OrderRepo) Find(ctx context.Context, crit filter.Criteria) ([]*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []*entity.Order{}
	r.db.orders.each(func(rec orderRecord) {
		if crit.Match(rec.field) {
			o := rec.Order
			out = append(out, &o)
		}
	})
	return out, nil
}

// FindByID obtiene un pedido; (nil, nil) si no existe.
func (r *OrderRepo) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	rec, ok := r.db.orders.get(id)
	if !ok {
		return nil, nil
	}
	o := rec.Order
	return &o, nil
}

// Insert persiste un pedido nuevo.
func (r *OrderRepo) Insert(ctx context.Context, order *entity.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.orders.get(order.ID); ok {
		return fmt.Errorf("insert order %s: %w", order.ID, domain.ErrDuplicate)
	}
	r.db.orders.insert(order.ID, orderRecord{*order})
	return nil
}

// Update reemplaza el pedido almacenado.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.orders.replace(order.ID, orderRecord{*order}) {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.orders.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
