package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/candy-store-api/docs"
	"github.com/jhoicas/candy-store-api/internal/application/auth"
	"github.com/jhoicas/candy-store-api/internal/application/ports"
	"github.com/jhoicas/candy-store-api/internal/application/usecase"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
	"github.com/jhoicas/candy-store-api/internal/infrastructure/memory"
	"github.com/jhoicas/candy-store-api/internal/infrastructure/mongodb"
	infraredis "github.com/jhoicas/candy-store-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/candy-store-api/internal/interfaces/http"
	"github.com/jhoicas/candy-store-api/pkg/config"
	"github.com/jhoicas/candy-store-api/pkg/logger"
)

// @title        Candy Store API
// @version      1.0
// @description  Catálogo de dulces, pedidos y tiendas.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage).
		Msg("iniciando aplicación")

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("la aplicación terminó con error")
	}
	log.Info().Msg("aplicación detenida")
}

// run arma dependencias y sirve HTTP hasta recibir SIGINT/SIGTERM. Los recursos
// abiertos se liberan con defer en cualquier retorno.
func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()

	var (
		candyRepo repository.CandyRepository
		storeRepo repository.StoreRepository
		orderRepo repository.OrderRepository
		userRepo  repository.UserRepository
	)
	switch cfg.Storage {
	case config.StorageMemory:
		db := memory.NewDB()
		candyRepo = memory.NewCandyRepository(db)
		storeRepo = memory.NewStoreRepository(db)
		orderRepo = memory.NewOrderRepository(db)
		userRepo = memory.NewUserRepository(db)
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		db, closeMongo, err := mongodb.Open(ctx, cfg.Mongo)
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := closeMongo(dctx); err != nil {
				log.Error().Err(err).Msg("desconexión de MongoDB")
			}
		}()
		candyRepo = mongodb.NewCandyRepository(db)
		storeRepo = mongodb.NewStoreRepository(db)
		orderRepo = mongodb.NewOrderRepository(db)
		userRepo = mongodb.NewUserRepository(db)
	}

	var tokens ports.TokenRevocationStore
	if cfg.Redis.URL != "" {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("conexión a Redis: %w", err)
		}
		defer rdb.Close()
		tokens = infraredis.NewTokenStore(rdb)
	} else {
		log.Warn().Msg("REDIS_URL vacío: revocación de tokens en memoria")
		tokens = memory.NewTokenStore()
	}

	candyUC := usecase.NewCandyUseCase(candyRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, tokens, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: joinOrigins(cfg.HTTP.AllowedOrigins),
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Candy Store API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CandyUC:   candyUC,
		StoreUC:   storeUC,
		OrderUC:   orderUC,
		UserUC:    userUC,
		AuthUC:    authUC,
		Tokens:    tokens,
		Log:       log,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	// HTTPS local con certificados de desarrollo (mkcert).
	if !cfg.App.IsProduction() {
		if err := checkLocalCert(cfg.HTTP.TLSCertFile, cfg.HTTP.TLSKeyFile); err != nil {
			log.Debug().Err(err).Msg("HTTPS local deshabilitado")
		} else {
			go func() {
				log.Info().Str("addr", cfg.HTTP.TLSAddr()).Msg("HTTPS local habilitado")
				if err := app.ListenTLS(cfg.HTTP.TLSAddr(), cfg.HTTP.TLSCertFile, cfg.HTTP.TLSKeyFile); err != nil {
					log.Error().Err(err).Msg("servidor HTTPS finalizado")
				}
			}()
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("apagado del servidor: %w", err)
	}
	return nil
}
