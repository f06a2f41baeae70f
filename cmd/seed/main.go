// seed carga un fixture JSON con usuarios, tiendas y dulces en la base configurada.
//
// Uso: go run ./cmd/seed [ruta/seed.json]
// Por defecto busca seed.json en el directorio actual.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/candy-store-api/internal/application/usecase"
	"github.com/jhoicas/candy-store-api/internal/domain/repository"
	"github.com/jhoicas/candy-store-api/internal/infrastructure/memory"
	"github.com/jhoicas/candy-store-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/candy-store-api/pkg/config"
	"github.com/jhoicas/candy-store-api/pkg/logger"
)

func main() {
	path := "seed.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("leer fixture")
	}
	f, err := decodeFixture(raw)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("fixture inválido")
	}

	res, err := run(cfg, log, f)
	if err != nil {
		log.Error().Err(err).
			Int("users", res.Users).Int("stores", res.Stores).Int("candy", res.Candy).
			Msg("seed incompleto")
		os.Exit(1)
	}
	log.Info().
		Int("users", res.Users).Int("stores", res.Stores).Int("candy", res.Candy).
		Msg("seed completado")
}

// run abre el almacenamiento configurado y aplica el fixture. La conexión a
// MongoDB se cierra antes de retornar, también cuando el seed falla.
func run(cfg *config.Config, log *logger.Logger, f *fixture) (*seedResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var (
		userRepo  repository.UserRepository
		storeRepo repository.StoreRepository
		candyRepo repository.CandyRepository
	)
	if cfg.Storage == config.StorageMemory {
		// Útil para validar el fixture sin base de datos.
		db := memory.NewDB()
		userRepo = memory.NewUserRepository(db)
		storeRepo = memory.NewStoreRepository(db)
		candyRepo = memory.NewCandyRepository(db)
		log.Warn().Msg("STORAGE_DRIVER=memory: solo se valida el fixture")
	} else {
		db, closeMongo, err := mongodb.Open(ctx, cfg.Mongo)
		if err != nil {
			return &seedResult{}, err
		}
		defer closeMongo(context.Background())
		userRepo = mongodb.NewUserRepository(db)
		storeRepo = mongodb.NewStoreRepository(db)
		candyRepo = mongodb.NewCandyRepository(db)
	}

	s := &seeder{
		users:  userRepo,
		stores: usecase.NewStoreUseCase(storeRepo),
		candy:  usecase.NewCandyUseCase(candyRepo),
		now:    time.Now,
	}
	return s.apply(ctx, f)
}
