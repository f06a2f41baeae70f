package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/candy-store-api/internal/application/auth"
	"github.com/jhoicas/candy-store-api/internal/application/dto"
	"github.com/jhoicas/candy-store-api/internal/application/usecase"
	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
)

// fixture contenido del archivo seed.json.
type fixture struct {
	Users  []seedUser               `json:"users"`
	Stores []dto.CreateStoreRequest `json:"stores"`
	Candy  []dto.CreateCandyRequest `json:"candy"`
}

// seedUser usuario del fixture. A diferencia del registro público, admite role admin.
type seedUser struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PreferredName string `json:"preferred_name"`
	PhoneNumber   string `json:"phone_number"`
	Role          string `json:"role"`
}

type seedResult struct {
	Users, Stores, Candy int
}

// decodeFixture lee el JSON; si el archivo no es UTF-8 válido se asume ISO-8859-1
// (exportaciones antiguas con nombres como "Dulcería Peña").
func decodeFixture(raw []byte) (*fixture, error) {
	var r io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	var f fixture
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decodificar fixture: %w", err)
	}
	return &f, nil
}

// seeder inserta el fixture. Las tiendas y dulces pasan por los casos de uso (mismas validaciones que la API).
type seeder struct {
	users  repository.UserRepository
	stores *usecase.StoreUseCase
	candy  *usecase.CandyUseCase
	now    func() time.Time
}

func (s *seeder) apply(ctx context.Context, f *fixture) (*seedResult, error) {
	res := &seedResult{}
	// El primer admin del fixture queda como createdBy de los dulces.
	var author entity.Requester
	for i, u := range f.Users {
		user, err := s.newUser(u)
		if err != nil {
			return res, fmt.Errorf("users[%d]: %w", i, err)
		}
		if err := s.users.Create(ctx, user); err != nil {
			return res, fmt.Errorf("users[%d] %s: %w", i, user.Email, err)
		}
		if author.ID == "" && user.Role == entity.RoleAdmin {
			author = entity.Requester{ID: user.ID, Role: user.Role}
		}
		res.Users++
	}
	for i, in := range f.Stores {
		if _, err := s.stores.Create(ctx, in); err != nil {
			return res, fmt.Errorf("stores[%d] %s: %w", i, in.Name, err)
		}
		res.Stores++
	}
	for i, in := range f.Candy {
		if _, err := s.candy.Create(ctx, author, in); err != nil {
			return res, fmt.Errorf("candy[%d] %s: %w", i, in.Name, err)
		}
		res.Candy++
	}
	return res, nil
}

func (s *seeder) newUser(u seedUser) (*entity.User, error) {
	if u.Username == "" || strings.TrimSpace(u.Email) == "" || u.Password == "" {
		return nil, domain.NewValidationError("username, email y password son requeridos")
	}
	email, ok := entity.NormalizeEmail(u.Email)
	if !ok {
		return nil, domain.NewValidationError("email inválido: " + u.Email)
	}
	role := u.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if !entity.IsValidRole(role) {
		return nil, domain.NewValidationError("role inválido: " + role)
	}
	hash, err := auth.HashPassword(u.Password)
	if err != nil {
		return nil, err
	}
	return &entity.User{
		ID:            entity.NewID(),
		Username:      u.Username,
		Email:         email,
		PreferredName: u.PreferredName,
		PhoneNumber:   u.PhoneNumber,
		PasswordHash:  hash,
		Role:          role,
		DateCreated:   s.now(),
	}, nil
}
