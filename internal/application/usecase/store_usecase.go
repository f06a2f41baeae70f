package usecase

import (
	"context"

	"github.com/jhoicas/candy-store-api/internal/application/dto"
	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para tiendas. OwnerID no se valida contra usuarios.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// List lista tiendas con filtros opcionales (subcadena, sin distinguir mayúsculas).
func (uc *StoreUseCase) List(ctx context.Context, params map[string]string) ([]dto.StoreResponse, error) {
	list, err := uc.repo.Find(ctx, filter.Build(params, filter.StoreBindings))
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStoreResponse(s))
	}
	return out, nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	store, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Create crea una tienda.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" || in.City == "" || in.State == "" || in.OwnerID == "" {
		return nil, domain.NewValidationError("name, city, state y owner_id son requeridos")
	}
	email, err := optionalEmail(in.Email)
	if err != nil {
		return nil, err
	}
	store := &entity.Store{
		ID:             entity.NewID(),
		Name:           in.Name,
		Street:         in.Street,
		City:           in.City,
		State:          in.State,
		ZipCode:        in.ZipCode,
		PhoneNumber:    in.PhoneNumber,
		Email:          email,
		OwnerID:        in.OwnerID,
		OperatingHours: in.OperatingHours,
		Website:        in.Website,
	}
	if err := uc.repo.Insert(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Update aplica un merge parcial sobre la tienda.
func (uc *StoreUseCase) Update(ctx context.Context, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	required := []struct {
		val  *string
		dst  *string
		name string
	}{
		{in.Name, &store.Name, "name"},
		{in.City, &store.City, "city"},
		{in.State, &store.State, "state"},
		{in.OwnerID, &store.OwnerID, "owner_id"},
	}
	for _, f := range required {
		if f.val == nil {
			continue
		}
		if *f.val == "" {
			return nil, domain.NewValidationError(f.name + " no puede estar vacío")
		}
		*f.dst = *f.val
	}
	if in.Email != nil {
		email, err := optionalEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		store.Email = email
	}
	setIfPresent(&store.Street, in.Street)
	setIfPresent(&store.ZipCode, in.ZipCode)
	setIfPresent(&store.PhoneNumber, in.PhoneNumber)
	setIfPresent(&store.OperatingHours, in.OperatingHours)
	setIfPresent(&store.Website, in.Website)

	if err := uc.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Delete elimina una tienda por ID.
func (uc *StoreUseCase) Delete(ctx context.Context, id string) error {
	if !entity.IsValidID(id) {
		return domain.ErrInvalidID
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *StoreUseCase) load(ctx context.Context, id string) (*entity.Store, error) {
	if !entity.IsValidID(id) {
		return nil, domain.ErrInvalidID
	}
	store, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// optionalEmail normaliza un email opcional; vacío se conserva vacío.
func optionalEmail(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	email, ok := entity.NormalizeEmail(s)
	if !ok {
		return "", domain.NewValidationError("email inválido")
	}
	return email, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:             s.ID,
		Name:           s.Name,
		Street:         s.Street,
		City:           s.City,
		State:          s.State,
		ZipCode:        s.ZipCode,
		PhoneNumber:    s.PhoneNumber,
		Email:          s.Email,
		OwnerID:        s.OwnerID,
		OperatingHours: s.OperatingHours,
		Website:        s.Website,
	}
}
