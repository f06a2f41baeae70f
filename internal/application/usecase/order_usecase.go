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

// OrderUseCase casos de uso de pedidos con control de acceso por dueño.
// Un admin ve y modifica cualquier pedido; el resto solo los propios (CustomerID == requester.ID).
type OrderUseCase struct {
	repo repository.OrderRepository
	now  func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, now: time.Now}
}

// List lista pedidos. Para no administradores la restricción de dueño va en el predicado.
func (uc *OrderUseCase) List(ctx context.Context, requester entity.Requester, params map[string]string) ([]dto.OrderResponse, error) {
	crit := filter.Build(params, filter.OrderBindings)
	if !requester.IsAdmin() {
		crit = crit.Equal(filter.OrderOwnerField, requester.ID)
	}
	list, err := uc.repo.Find(ctx, crit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// GetByID obtiene un pedido. Orden de chequeos: id válido, existencia, propiedad.
func (uc *OrderUseCase) GetByID(ctx context.Context, requester entity.Requester, id string) (*dto.OrderResponse, error) {
	order, err := uc.authorize(ctx, requester, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Create crea un pedido. Solo un admin puede asignarlo a otro cliente.
func (uc *OrderUseCase) Create(ctx context.Context, requester entity.Requester, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerName == "" {
		return nil, domain.NewValidationError("customerName es requerido")
	}
	if in.TotalAmount == nil || in.TotalAmount.IsNegative() {
		return nil, domain.NewValidationError("totalAmount es requerido y no puede ser negativo")
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.IsValidOrderStatus(status) {
		return nil, domain.NewValidationError("status inválido")
	}
	customerID := requester.ID
	if requester.IsAdmin() && in.CustomerID != "" {
		customerID = in.CustomerID
	}
	now := uc.now()
	order := &entity.Order{
		ID:           entity.NewID(),
		CustomerID:   customerID,
		CustomerName: in.CustomerName,
		Status:       status,
		TotalAmount:  *in.TotalAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Insert(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Update aplica un merge parcial. CustomerID nunca cambia.
func (uc *OrderUseCase) Update(ctx context.Context, requester entity.Requester, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.authorize(ctx, requester, id)
	if err != nil {
		return nil, err
	}
	if in.CustomerName != nil {
		if *in.CustomerName == "" {
			return nil, domain.NewValidationError("customerName no puede estar vacío")
		}
		order.CustomerName = *in.CustomerName
	}
	if in.Status != nil {
		if !entity.IsValidOrderStatus(*in.Status) {
			return nil, domain.NewValidationError("status inválido")
		}
		order.Status = *in.Status
	}
	if in.TotalAmount != nil {
		if in.TotalAmount.IsNegative() {
			return nil, domain.NewValidationError("totalAmount no puede ser negativo")
		}
		order.TotalAmount = *in.TotalAmount
	}
	order.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina un pedido propio (o cualquiera si es admin).
func (uc *OrderUseCase) Delete(ctx context.Context, requester entity.Requester, id string) error {
	if _, err := uc.authorize(ctx, requester, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// authorize valida el id, carga el pedido (404 antes que 403) y verifica la propiedad.
func (uc *OrderUseCase) authorize(ctx context.Context, requester entity.Requester, id string) (*entity.Order, error) {
	if !entity.IsValidID(id) {
		return nil, domain.ErrInvalidID
	}
	order, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !requester.IsAdmin() && !order.OwnedBy(requester.ID) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
