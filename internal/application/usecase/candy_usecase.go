package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/candy-store-api/internal/application/dto"
	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/filter"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
)

// CandyUseCase casos de uso CRUD para el catálogo de dulces.
type CandyUseCase struct {
	repo repository.CandyRepository
	now  func() time.Time
}

// NewCandyUseCase construye el caso de uso.
func NewCandyUseCase(repo repository.CandyRepository) *CandyUseCase {
	return &CandyUseCase{repo: repo, now: time.Now}
}

// List lista dulces aplicando los filtros opcionales de params. Sin coincidencias devuelve lista vacía.
func (uc *CandyUseCase) List(ctx context.Context, params map[string]string) ([]dto.CandyResponse, error) {
	list, err := uc.repo.Find(ctx, filter.Build(params, filter.CandyBindings))
	if err != nil {
		return nil, err
	}
	out := make([]dto.CandyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCandyResponse(c))
	}
	return out, nil
}

// GetByID obtiene un dulce por ID.
func (uc *CandyUseCase) GetByID(ctx context.Context, id string) (*dto.CandyResponse, error) {
	candy, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCandyResponse(candy), nil
}

// Create crea un dulce. CreatedBy queda con el ID del solicitante.
func (uc *CandyUseCase) Create(ctx context.Context, requester entity.Requester, in dto.CreateCandyRequest) (*dto.CandyResponse, error) {
	if in.Name == "" || in.ShippingContainer == "" {
		return nil, domain.NewValidationError("name y shipping_container son requeridos")
	}
	if in.PricePerUnit == nil || in.PricePerUnit.IsNegative() {
		return nil, domain.NewValidationError("price_per_unit es requerido y no puede ser negativo")
	}
	if in.StockQuantity == nil || *in.StockQuantity < 0 {
		return nil, domain.NewValidationError("stock_quantity es requerido y no puede ser negativo")
	}
	dateAdded := in.DateAdded
	if dateAdded == "" {
		dateAdded = uc.now().Format(entity.DateLayout)
	} else if !validDate(dateAdded) {
		return nil, domain.NewValidationError("date_added debe tener formato YYYY-MM-DD")
	}
	candy := &entity.Candy{
		ID:                entity.NewID(),
		Name:              in.Name,
		Description:       in.Description,
		ShippingContainer: in.ShippingContainer,
		PricePerUnit:      *in.PricePerUnit,
		StockQuantity:     *in.StockQuantity,
		SupplierName:      in.SupplierName,
		DateAdded:         dateAdded,
		CreatedBy:         requester.ID,
	}
	if err := uc.repo.Insert(ctx, candy); err != nil {
		return nil, err
	}
	return toCandyResponse(candy), nil
}

// Update aplica un merge parcial: solo cambian los campos presentes en in.
func (uc *CandyUseCase) Update(ctx context.Context, id string, in dto.UpdateCandyRequest) (*dto.CandyResponse, error) {
	candy, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name no puede estar vacío")
		}
		candy.Name = *in.Name
	}
	if in.Description != nil {
		candy.Description = *in.Description
	}
	if in.ShippingContainer != nil {
		if *in.ShippingContainer == "" {
			return nil, domain.NewValidationError("shipping_container no puede estar vacío")
		}
		candy.ShippingContainer = *in.ShippingContainer
	}
	if in.PricePerUnit != nil {
		if in.PricePerUnit.IsNegative() {
			return nil, domain.NewValidationError("price_per_unit no puede ser negativo")
		}
		candy.PricePerUnit = *in.PricePerUnit
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return nil, domain.NewValidationError("stock_quantity no puede ser negativo")
		}
		candy.StockQuantity = *in.StockQuantity
	}
	if in.SupplierName != nil {
		candy.SupplierName = *in.SupplierName
	}
	if in.DateAdded != nil {
		if !validDate(*in.DateAdded) {
			return nil, domain.NewValidationError("date_added debe tener formato YYYY-MM-DD")
		}
		candy.DateAdded = *in.DateAdded
	}
	if err := uc.repo.Update(ctx, candy); err != nil {
		return nil, err
	}
	return toCandyResponse(candy), nil
}

// Delete elimina un dulce por ID.
func (uc *CandyUseCase) Delete(ctx context.Context, id string) error {
	if !entity.IsValidID(id) {
		return domain.ErrInvalidID
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CandyUseCase) load(ctx context.Context, id string) (*entity.Candy, error) {
	if !entity.IsValidID(id) {
		return nil, domain.ErrInvalidID
	}
	candy, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candy == nil {
		return nil, domain.ErrNotFound
	}
	return candy, nil
}

func validDate(s string) bool {
	_, err := time.Parse(entity.DateLayout, s)
	return err == nil
}

func toCandyResponse(c *entity.Candy) *dto.CandyResponse {
	if c == nil {
		return nil
	}
	return &dto.CandyResponse{
		ID:                c.ID,
		Name:              c.Name,
		Description:       c.Description,
		ShippingContainer: c.ShippingContainer,
		PricePerUnit:      c.PricePerUnit,
		StockQuantity:     c.StockQuantity,
		SupplierName:      c.SupplierName,
		DateAdded:         c.DateAdded,
	}
}
