package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/candy-store-api/internal/application/auth"
	"github.com/jhoicas/candy-store-api/internal/application/ports"
	"github.com/jhoicas/candy-store-api/internal/application/usecase"
	"github.com/jhoicas/candy-store-api/internal/domain/entity"
	"github.com/jhoicas/candy-store-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CandyUC   *usecase.CandyUseCase
	StoreUC   *usecase.StoreUseCase
	OrderUC   *usecase.OrderUseCase
	UserUC    *usecase.UserUseCase
	AuthUC    *auth.AuthUseCase
	Tokens    ports.TokenRevocationStore
	Log       *logger.Logger
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret, deps.Tokens)
	staff := RequireRole(entity.RoleAdmin, entity.RoleStoreOwner, entity.RoleEmployee)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)

	// Users (perfil propio)
	userHandler := NewUserHandler(deps.UserUC, log)
	api.Get("/users/me", requireAuth, userHandler.Me)

	// Candy (lectura pública; escritura solo personal)
	candy := api.Group("/candy")
	candyHandler := NewCandyHandler(deps.CandyUC, log)
	candy.Get("/", candyHandler.List)
	candy.Get("/:id", candyHandler.GetByID)
	candy.Post("/", requireAuth, staff, candyHandler.Create)
	candy.Put("/:id", requireAuth, staff, candyHandler.Update)
	candy.Patch("/:id", requireAuth, staff, candyHandler.Update)
	candy.Delete("/:id", requireAuth, staff, candyHandler.Delete)

	// Stores (lectura pública; escritura solo personal)
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC, log)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Post("/", requireAuth, staff, storeHandler.Create)
	stores.Put("/:id", requireAuth, staff, storeHandler.Update)
	stores.Patch("/:id", requireAuth, staff, storeHandler.Update)
	stores.Delete("/:id", requireAuth, staff, storeHandler.Delete)

	// Orders (protegido; el caso de uso decide por dueño)
	orders := api.Group("/orders", requireAuth)
	orderHandler := NewOrderHandler(deps.OrderUC, log)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
}
