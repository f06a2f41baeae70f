package dto

import "github.com/shopspring/decimal"

// CreateCandyRequest entrada para crear un dulce. Los punteros distinguen "ausente" de cero.
type CreateCandyRequest struct {
	Name              string           `json:"name" validate:"required"`
	Description       string           `json:"description"`
	ShippingContainer string           `json:"shipping_container" validate:"required"`
	PricePerUnit      *decimal.Decimal `json:"price_per_unit" validate:"required,min=0"`
	StockQuantity     *int             `json:"stock_quantity" validate:"required,min=0"`
	SupplierName      string           `json:"supplier_name"`
	DateAdded         string           `json:"date_added"` // YYYY-MM-DD; vacío = fecha actual
}

// UpdateCandyRequest entrada para actualizar un dulce (merge parcial: solo campos presentes).
type UpdateCandyRequest struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	ShippingContainer *string          `json:"shipping_container"`
	PricePerUnit      *decimal.Decimal `json:"price_per_unit"`
	StockQuantity     *int             `json:"stock_quantity"`
	SupplierName      *string          `json:"supplier_name"`
	DateAdded         *string          `json:"date_added"`
}

// CandyResponse salida de un dulce (sin createdBy).
type CandyResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	ShippingContainer string          `json:"shipping_container"`
	PricePerUnit      decimal.Decimal `json:"price_per_unit"`
	StockQuantity     int             `json:"stock_quantity"`
	SupplierName      string          `json:"supplier_name"`
	DateAdded         string          `json:"date_added"`
}
