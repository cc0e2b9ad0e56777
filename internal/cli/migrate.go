package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/travel-planner/internal/config"
	"github.com/example/travel-planner/internal/persistence/sqlite"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
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

			logger.Info("schema applied", "dsn", cfg.SQLiteDSN)
			return nil
		},
	}
}
