package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/travel-planner/internal/config"
	"github.com/example/travel-planner/internal/persistence/sqlite"
	"github.com/example/travel-planner/internal/seed"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo account and Tokyo attraction catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			pool, err := sqlite.Open(cfg.SQLiteDSN)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			defer pool.Close()

			if err := sqlite.Migrate(cmd.Context(), pool); err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}

			seeder := seed.New(
				sqlite.NewUserRepository(pool),
				sqlite.NewTripRepository(pool),
				sqlite.NewAttractionRepository(pool),
				time.Now,
				logger,
			)
			if err := seeder.Run(cmd.Context()); err != nil {
				return fmt.Errorf("seed database: %w", err)
			}

			logger.Info("seed complete", "dsn", cfg.SQLiteDSN)
			return nil
		},
	}
}
