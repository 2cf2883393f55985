// Command api serves the farm management backend.
//
//	serve    HTTP API (default)
//	migrate  apply embedded SQL migrations and exit
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/farm-backend/internal/api"
	"github.com/baharkarakas/farm-backend/internal/config"
	"github.com/baharkarakas/farm-backend/internal/db"
	"github.com/baharkarakas/farm-backend/internal/logger"
	"github.com/baharkarakas/farm-backend/internal/metrics"
	"github.com/baharkarakas/farm-backend/internal/repository/postgres"
	"github.com/baharkarakas/farm-backend/internal/services"
	"github.com/baharkarakas/farm-backend/internal/worker"
)

func main() {
	root := &cobra.Command{
		Use:           "farm-backend",
		Short:         "Farm management API",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	serve := serveCmd()
	root.AddCommand(serve, migrateCmd())
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	if err := root.Execute(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// setup loads config and installs the process logger.
func setup() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	slog.SetDefault(logger.New(cfg.Env))
	return cfg, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			pool, err := db.NewPool(cmd.Context(), cfg.DatabaseURL, cfg.DBMaxConns)
			if err != nil {
				return err
			}
			defer pool.Close()
			return db.RunMigrations(cmd.Context(), pool)
		},
	}
}

func serveCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			return serve(cfg, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func serve(cfg config.Config, migrate bool) error {
	log := slog.Default()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return err
	}
	defer pool.Close()

	if migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			return err
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(cfg.WorkerCount)
	defer wp.Stop()

	auditSvc := services.NewAuditService(repos.AuditLogs, wp)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:      cfg,
		FarmSvc:  services.NewFarmService(repos.Farms, auditSvc),
		PlanSvc:  services.NewPlanService(repos.Plans, repos.Farms, auditSvc),
		ChatSvc:  services.NewChatService(repos.Messages, auditSvc),
		AuditSvc: auditSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
