package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear un pedido.
// CustomerID solo lo respeta un admin; para el resto el dueño es el solicitante.
type CreateOrderRequest struct {
	CustomerID   string           `json:"customerId"`
	CustomerName string           `json:"customerName" validate:"required"`
	Status       string           `json:"status" validate:"omitempty,oneof=pending paid shipped delivered cancelled"`
	TotalAmount  *decimal.Decimal `json:"totalAmount" validate:"required,min=0"`
}

// UpdateOrderRequest entrada para actualizar un pedido. El dueño (customerId) no se modifica.
type UpdateOrderRequest struct {
	CustomerName *string          `json:"customerName"`
	Status       *string          `json:"status"`
	TotalAmount  *decimal.Decimal `json:"totalAmount"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
