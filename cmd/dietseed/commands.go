package main

import (
	"context"
	"fmt"
	"log/slog"

	"dietplan/internal/domain/entity"
	logs "dietplan/internal/infra/log"
	"dietplan/internal/infra/persistence/postgres"
	"dietplan/internal/infra/seed"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type seedFlags struct {
	bucket string
	key    string
}

func (f *seedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.bucket, "bucket", "", "gocloud bucket URL of the seed document (default: storage.seedUrl)")
	cmd.Flags().StringVar(&f.key, "key", "", "object key of the seed document (default: storage.seedKey)")
}

func (f *seedFlags) load(ctx context.Context) (*entity.Catalog, error) {
	bucket, key := f.bucket, f.key
	if bucket == "" {
		bucket = cfg.Storage.SeedURL
	}
	if key == "" {
		key = cfg.Storage.SeedKey
	}
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("seed bucket and key are required")
	}

	return seed.Load(ctx, bucket, key)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the postgres schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(db *gorm.DB, logger *slog.Logger) error {
				if err := postgres.Migrate(cmd.Context(), db); err != nil {
					return err
				}
				logger.Info("Schema migrated")

				return nil
			})
		},
	}
}

func importCmd() *cobra.Command {
	var flags seedFlags
	var migrate bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the postgres reference tables with a seed document",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			catalog, err := flags.load(ctx)
			if err != nil {
				return err
			}

			return withDatabase(ctx, func(db *gorm.DB, logger *slog.Logger) error {
				if migrate {
					if err := postgres.Migrate(ctx, db); err != nil {
						return err
					}
				}
				if err := postgres.NewCatalogImporter(db).Import(ctx, catalog); err != nil {
					return err
				}
				logger.Info("Seed catalog imported",
					slog.Int("dishes", len(catalog.Dishes)),
					slog.Int("exclusions", len(catalog.Exclusions)),
					slog.Int("fruits", len(catalog.Fruits)),
				)

				return nil
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&migrate, "migrate", false, "migrate the schema before importing")

	return cmd
}

func validateCmd() *cobra.Command {
	var flags seedFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse a seed document and report its size",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := flags.load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dishes: %d\nexclusions: %d\nfruits: %d\n",
				len(catalog.Dishes), len(catalog.Exclusions), len(catalog.Fruits))

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

// withDatabase runs fn against a postgres connection owned by a short-lived fx app.
func withDatabase(ctx context.Context, fn func(db *gorm.DB, logger *slog.Logger) error) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer func() {
		_ = app.Stop(context.WithoutCancel(ctx))
	}()

	return fn(db, logger)
}

