package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

type storeRecord struct{ entity.Store }

func (r storeRecord) field(name string) string {
	switch name {
	case "name":
		return r.Name
	case "street":
		return r.Street
	case "city":
		return r.City
	case "state":
		return r.State
	case "zip_code":
		return r.ZipCode
	case "phone_number":
		return r.PhoneNumber
	case "email":
		return r.Email
	case "owner_id":
		return r.OwnerID
	case "operating_hours":
		return r.OperatingHours
	case "website":
		return r.Website
	}
	return ""
}

// StoreRepo implementación en memoria de StoreRepository.
type StoreRepo struct {
	db *DB
}

// NewStoreRepository construye el repositorio sobre db.
func NewStoreRepository(db *DB) *StoreRepo {
	return &StoreRepo{db: db}
}

// Find devuelve las tiendas que cumplen crit.
func (r *StoreRepo) Find(ctx context.Context, crit filter.Criteria) ([]*entity.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []*entity.Store{}
	r.db.stores.each(func(rec storeRecord) {
		if crit.Match(rec.field) {
			s := rec.Store
			out = append(out, &s)
		}
	})
	return out, nil
}

// FindByID obtiene una tienda; (nil, nil) si no existe.
func (r *StoreRepo) FindByID(ctx context.Context, id string) (*entity.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	rec, ok := r.db.stores.get(id)
	if !ok {
		return nil, nil
	}
	s := rec.Store
	return &s, nil
}

// Insert persiste una tienda nueva.
func (r *StoreRepo) Insert(ctx context.Context, store *entity.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.stores.get(store.ID); ok {
		return fmt.Errorf("insert store %s: %w", store.ID, domain.ErrDuplicate)
	}
	r.db.stores.insert(store.ID, storeRecord{*store})
	return nil
}

// Update reemplaza la tienda almacenada.
func (r *StoreRepo) Update(ctx context.Context, store *entity.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.stores.replace(store.ID, storeRecord{*store}) {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una tienda.
func (r *StoreRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.stores.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
