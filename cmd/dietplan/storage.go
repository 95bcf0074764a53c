package main

import (
	"context"
	"log/slog"

	"dietplan/config"
	"dietplan/internal/domain/repository"
	"dietplan/internal/errors"
	"dietplan/internal/infra/persistence/memory"
	"dietplan/internal/infra/persistence/postgres"
	"dietplan/internal/infra/seed"

	"go.uber.org/fx"
)

type storageParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// storage exposes the persistence ports of the configured driver.
type storage struct {
	fx.Out

	Recipes     repository.RecipeRepository
	Exclusions  repository.DiseaseExclusionRepository
	Fruits      repository.SeasonalFruitRepository
	History     repository.RecipeHistoryRepository
	WeeklyDiets repository.WeeklyDietRepository
	TxManager   repository.TransactionManager
}

func newStorage(params storageParams) (storage, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return storage{}, err
		}

		return storage{
			Recipes:     postgres.NewRecipeRepository(db),
			Exclusions:  postgres.NewDiseaseExclusionRepository(db),
			Fruits:      postgres.NewSeasonalFruitRepository(db),
			History:     postgres.NewRecipeHistoryRepository(db),
			WeeklyDiets: postgres.NewWeeklyDietRepository(db),
			TxManager:   postgres.NewTransactionManager(db),
		}, nil

	case config.StorageDriverMemory, "":
		store := memory.NewStore()
		if url := params.Config.Storage.SeedURL; url != "" {
			catalog, err := seed.Load(params.Ctx, url, params.Config.Storage.SeedKey)
			if err != nil {
				return storage{}, err
			}
			if err := store.Import(params.Ctx, catalog); err != nil {
				return storage{}, errors.Wrap(err, "failed to import seed catalog")
			}
			params.Logger.Info("Loaded seed catalog into memory store",
				slog.String("seed_url", url),
				slog.Int("dishes", len(catalog.Dishes)),
				slog.Int("exclusions", len(catalog.Exclusions)),
				slog.Int("fruits", len(catalog.Fruits)),
			)
		} else {
			params.Logger.Warn("Memory storage started without a seed catalog")
		}

		return storage{
			Recipes:     store.Recipes(),
			Exclusions:  store.Exclusions(),
			Fruits:      store.Fruits(),
			History:     store.History(),
			WeeklyDiets: store.WeeklyDiets(),
			TxManager:   memory.NewTransactionManager(store),
		}, nil

	default:
		return storage{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
