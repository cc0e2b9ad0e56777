package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/travel-planner/internal/application"
	"github.com/example/travel-planner/internal/config"
	httptransport "github.com/example/travel-planner/internal/http"
	"github.com/example/travel-planner/internal/persistence/sqlite"
	"github.com/example/travel-planner/internal/seed"
)

func newServeCmd() *cobra.Command {
	var seedOnStart bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the planner API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			pool, err := sqlite.Open(cfg.SQLiteDSN)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			defer func() {
				if cerr := pool.Close(); cerr != nil {
					logger.Error("failed to close storage", "error", cerr)
				}
			}()

			if err := sqlite.Migrate(ctx, pool); err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}

			idGenerator := uuid.NewString
			now := time.Now

			userRepo := sqlite.NewUserRepository(pool)
			sessionRepo := sqlite.NewSessionRepository(pool)
			tripRepo := sqlite.NewTripRepository(pool)
			attractionRepo := sqlite.NewAttractionRepository(pool)
			swipeRepo := sqlite.NewSwipeRepository(pool)
			itineraryRepo := sqlite.NewItineraryRepository(pool)

			if seedOnStart || cfg.DemoMode {
				seeder := seed.New(userRepo, tripRepo, attractionRepo, now, logger)
				if err := seeder.Run(ctx); err != nil {
					return fmt.Errorf("seed database: %w", err)
				}
			}

			tripService := application.NewTripServiceWithLogger(tripRepo, idGenerator, now, logger)
			attractionService := application.NewAttractionServiceWithLogger(attractionRepo, logger)
			swipeService := application.NewSwipeServiceWithLogger(tripRepo, attractionRepo, swipeRepo, itineraryRepo, idGenerator, now, logger)
			itineraryService := application.NewItineraryServiceWithLogger(tripRepo, attractionRepo, itineraryRepo, idGenerator, now, cfg.WarningCacheTTL, logger)
			authService := application.NewAuthServiceWithLogger(userRepo, sessionRepo, idGenerator, now, cfg.SessionTTL, logger)

			var demoPrincipal *application.Principal
			if cfg.DemoMode {
				demoPrincipal = &application.Principal{UserID: seed.DemoUserID}
			}

			handler := httptransport.NewRouter(httptransport.RouterConfig{
				Auth:               httptransport.NewAuthHandler(authService, logger),
				Trips:              httptransport.NewTripHandler(tripService, logger),
				Attractions:        httptransport.NewAttractionHandler(attractionService, logger),
				Swipes:             httptransport.NewSwipeHandler(swipeService, logger),
				Itinerary:          httptransport.NewItineraryHandler(itineraryService, logger),
				RequireSession:     httptransport.RequireSession(authService, demoPrincipal, logger),
				Middleware:         []func(http.Handler) http.Handler{httptransport.RequestLogger(logger)},
				RateLimitPerSecond: cfg.RateLimit,
				Version:            Version,
			})

			server := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("failed to shutdown server", "error", err)
				}
			}()

			logger.Info("planner API listening", "addr", server.Addr, "demo_mode", cfg.DemoMode)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&seedOnStart, "seed", false, "seed the demo data before serving")

	return cmd
}
