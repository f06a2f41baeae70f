package memory

import (
	"context"

	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

type userRecord struct{ entity.User }

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	db *DB
}

// NewUserRepository construye el repositorio sobre db.
func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un usuario. El email es único.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	dup := false
	r.db.users.each(func(rec userRecord) {
		if rec.Email == user.Email {
			dup = true
		}
	})
	if dup {
		return domain.ErrEmailAlreadyExists
	}
	r.db.users.insert(user.ID, userRecord{*user})
	return nil
}

// FindByID obtiene un usuario; (nil, nil) si no existe.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	rec, ok := r.db.users.get(id)
	if !ok {
		return nil, nil
	}
	u := rec.User
	return &u, nil
}

// FindByEmail obtiene un usuario por email; (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var found *entity.User
	r.db.users.each(func(rec userRecord) {
		if found == nil && rec.Email == email {
			u := rec.User
			found = &u
		}
	})
	return found, nil
}
