package entity

import "github.com/shopspring/decimal"

// DateLayout formato de date_added (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Candy representa un dulce del catálogo.
// CreatedBy es un campo de auditoría interno: nunca se expone en respuestas.
type Candy struct {
	ID                string
	Name              string
	Description       string
	ShippingContainer string
	PricePerUnit      decimal.Decimal
	StockQuantity     int
	SupplierName      string
	DateAdded         string
	CreatedBy         string
}
