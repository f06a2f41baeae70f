package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de Order.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// IsValidOrderStatus indica si status es uno de los estados conocidos.
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order representa un pedido. CustomerID (dueño) se fija al crear y no cambia.
type Order struct {
	ID           string
	CustomerID   string
	CustomerName string
	Status       string
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnedBy indica si el pedido pertenece al usuario indicado.
func (o *Order) OwnedBy(userID string) bool {
	return o.CustomerID == userID
}
