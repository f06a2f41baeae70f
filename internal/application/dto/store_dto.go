package dto

// CreateStoreRequest entrada para crear una tienda.
type CreateStoreRequest struct {
	Name           string `json:"name" validate:"required"`
	Street         string `json:"street"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	ZipCode        string `json:"zip_code"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email" validate:"omitempty,email"`
	OwnerID        string `json:"owner_id" validate:"required"`
	OperatingHours string `json:"operating_hours"`
	Website        string `json:"website"`
}

// UpdateStoreRequest entrada para actualizar una tienda (merge parcial).
type UpdateStoreRequest struct {
	Name           *string `json:"name"`
	Street         *string `json:"street"`
	City           *string `json:"city"`
	State          *string `json:"state"`
	ZipCode        *string `json:"zip_code"`
	PhoneNumber    *string `json:"phone_number"`
	Email          *string `json:"email"`
	OwnerID        *string `json:"owner_id"`
	OperatingHours *string `json:"operating_hours"`
	Website        *string `json:"website"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Street         string `json:"street"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zip_code"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email"`
	OwnerID        string `json:"owner_id"`
	OperatingHours string `json:"operating_hours"`
	Website        string `json:"website"`
}
