package entity

import (
	"net/mail"
	"strings"
	"time"
)

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleStoreOwner = "storeowner"
	RoleEmployee   = "employee"
	RoleCustomer   = "customer"
)

// IsValidRole indica si role es uno de los roles conocidos.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStoreOwner, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

// NormalizeEmail recorta y pasa a minúsculas un email. Retorna false si no es
// una dirección simple local@dominio; las formas con nombre ("Shop <a@b.com>")
// se rechazan.
func NormalizeEmail(s string) (string, bool) {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return "", false
	}
	return strings.ToLower(addr.Address), true
}

// User representa un usuario del sistema. El núcleo solo lo usa para autorización.
type User struct {
	ID            string
	Username      string
	Email         string
	PreferredName string
	PhoneNumber   string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Role          string // admin, storeowner, employee, customer
	DateCreated   time.Time
}

// Requester identidad autenticada que hace la petición (extraída del JWT).
type Requester struct {
	ID   string
	Role string
}

// IsAdmin indica si el solicitante es administrador.
func (r Requester) IsAdmin() bool {
	return r.Role == RoleAdmin
}
