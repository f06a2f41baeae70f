package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/candy-store-api/internal/application/dto"
	"github.com/jhoicas/candy-store-api/internal/application/ports"
	"github.com/jhoicas/candy-store-api/internal/domain"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
	"github.com/jhoicas/candy-store-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   ports.TokenRevocationStore
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens ports.TokenRevocationStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens, jwtCfg: jwtCfg, now: time.Now}
}

// RegisterUser crea un usuario customer con password bcrypt.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.NewValidationError("username, email y password son requeridos")
	}
	email, ok := entity.NormalizeEmail(in.Email)
	if !ok {
		return nil, domain.NewValidationError("email inválido")
	}
	if len(in.Password) < 8 {
		return nil, domain.NewValidationError("password debe tener al menos 8 caracteres")
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	// Los roles de personal (admin, storeowner, employee) solo se crean con el seeder.
	if role != entity.RoleCustomer {
		return nil, domain.NewValidationError("role inválido: el registro público solo admite customer")
	}
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:            entity.NewID(),
		Username:      in.Username,
		Email:         email,
		PreferredName: in.PreferredName,
		PhoneNumber:   in.PhoneNumber,
		PasswordHash:  string(hash),
		Role:          role,
		DateCreated:   uc.now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout revoca el token (jti) hasta su expiración.
func (uc *AuthUseCase) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return domain.ErrUnauthorized
	}
	ttl := expiresAt.Sub(uc.now())
	if ttl <= 0 {
		return nil
	}
	return uc.tokens.Revoke(ctx, jti, ttl)
}

// HashPassword expone el hash bcrypt para el seeder.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		PreferredName: u.PreferredName,
		PhoneNumber:   u.PhoneNumber,
		Role:          u.Role,
		DateCreated:   u.DateCreated,
	}
}
