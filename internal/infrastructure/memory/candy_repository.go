package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
)

var _ repository.CandyRepository = (*CandyRepo)(nil)

// candyRecord copia almacenada; los repos nunca entregan punteros al estado interno.
type candyRecord struct{ entity.Candy }

func (r candyRecord) field(name string) string {
	switch name {
	case "name":
		return r.Name
	case "description":
		return r.Description
	case "shipping_container":
		return r.ShippingContainer
	case "supplier_name":
		return r.SupplierName
	case "date_added":
		return r.DateAdded
	case "createdBy":
		return r.CreatedBy
	}
	return ""
}

// CandyRepo implementación en memoria de CandyRepository.
type CandyRepo struct {
	db *DB
}

// NewCandyRepository construye el repositorio sobre db.
func NewCandyRepository(db *DB) *CandyRepo {
	return &CandyRepo{db: db}
}

// Find devuelve los dulces que cumplen crit, en orden de inserción.
func (r *CandyRepo) Find(ctx context.Context, crit filter.Criteria) ([]*entity.Candy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []*entity.Candy{}
	r.db.candy.each(func(rec candyRecord) {
		if crit.Match(rec.field) {
			c := rec.Candy
			out = append(out, &c)
		}
	})
	return out, nil
}

// FindByID obtiene un dulce; (nil, nil) si no existe.
func (r *CandyRepo) FindByID(ctx context.Context, id string) (*entity.Candy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	rec, ok := r.db.candy.get(id)
	if !ok {
		return nil, nil
	}
	c := rec.Candy
	return &c, nil
}

// Insert persiste un dulce nuevo.
func (r *CandyRepo) Insert(ctx context.Context, candy *entity.Candy) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.candy.get(candy.ID); ok {
		return fmt.Errorf("insert candy %s: %w", candy.ID, domain.ErrDuplicate)
	}
	r.db.candy.insert(candy.ID, candyRecord{*candy})
	return nil
}

// Update reemplaza el dulce almacenado.
func (r *CandyRepo) Update(ctx context.Context, candy *entity.Candy) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.candy.replace(candy.ID, candyRecord{*candy}) {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un dulce.
func (r *CandyRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.candy.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
