package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dom/teyvat-archive/internal/api"
	"github.com/dom/teyvat-archive/internal/config"
	"github.com/dom/teyvat-archive/internal/logging"
	"github.com/dom/teyvat-archive/internal/metrics"
	"github.com/dom/teyvat-archive/internal/repository/memory"
	"github.com/dom/teyvat-archive/internal/repository/postgres"
	"github.com/dom/teyvat-archive/internal/service"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the Teyvat Archive catalog API",
	Long: `Serves characters, artifact sets, farming domains and elemental
reactions, and stores team compositions.

Configuration comes from TEYVAT_* environment variables, optionally layered
over a YAML file named by TEYVAT_CONFIG. Set TEYVAT_DATABASE_URL to keep saved
teams in PostgreSQL; without it teams live in memory and reset on restart.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading configuration")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Catalog data is always served from the embedded seed
	repos, err := memory.NewRepositories()
	if err != nil {
		logger.Error("failed to initialize catalog", zap.Error(err))
		return err
	}

	if cfg.PersistsTeams() {
		db, err := postgres.NewConnection(cfg.DatabaseURL, postgres.LogLevel(cfg.LogLevel))
		if err != nil {
			logger.Error("failed to connect to database", zap.Error(err))
			return err
		}
		repos.Team = postgres.NewTeamRepository(db)
		logger.Info("teams are stored in postgres")
	} else {
		logger.Info("teams are stored in memory and reset on restart")
	}

	m := metrics.NewManager()
	services := service.NewServices(repos, m)
	router := api.NewRouter(services, m, cfg, logger)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return serve(ctx, srv, cfg, logger)
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully
func serve(ctx context.Context, srv *http.Server, cfg *config.Config, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("failed to start server", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}
