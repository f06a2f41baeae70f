package dto

import "time"

// RegisterRequest entrada para registro (auth). Role vacío = customer.
type RegisterRequest struct {
	Username      string `json:"username" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	PreferredName string `json:"preferred_name"`
	PhoneNumber   string `json:"phone_number"`
	Role          string `json:"role" validate:"omitempty,oneof=customer"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PreferredName string    `json:"preferred_name"`
	PhoneNumber   string    `json:"phone_number"`
	Role          string    `json:"role"`
	DateCreated   time.Time `json:"date_created"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
