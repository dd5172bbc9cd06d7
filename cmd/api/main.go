// Command api is the FC Tournament API server.
//
// Usage:
//
//	fc-api
//	fc-api --port 9000 --env production
//	API_PORT=8080 fc-api

// @title FC Tournament API
// @version 1.0.0
// @description Table-football tournaments: accounts, rosters, match records and leaderboards recomputed on every read.
// @host localhost:8080
// @BasePath /
// @schemes http https
// @contact.name FC Tournament
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Wozus/Fc-tournament/internal/api"
	"github.com/Wozus/Fc-tournament/internal/api/handler"
	"github.com/Wozus/Fc-tournament/internal/clublogo"
	"github.com/Wozus/Fc-tournament/internal/config"
	"github.com/Wozus/Fc-tournament/internal/db"
	"github.com/Wozus/Fc-tournament/internal/league"
	"github.com/Wozus/Fc-tournament/internal/maintenance"
	"github.com/Wozus/Fc-tournament/internal/session"
	"github.com/Wozus/Fc-tournament/internal/store"

	_ "github.com/Wozus/Fc-tournament/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	var (
		host string
		port int
		env  string
	)
	root := &cobra.Command{
		Use:           "fc-api",
		Short:         "FC Tournament API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			flags := cmd.Flags()
			if flags.Changed("host") {
				cfg.APIHost = host
			}
			if flags.Changed("port") {
				cfg.APIPort = port
			}
			if flags.Changed("env") {
				cfg.Environment = env
			}
			return serve(cfg)
		},
	}
	root.Flags().StringVar(&host, "host", "0.0.0.0", "Listen host (overrides API_HOST)")
	root.Flags().IntVar(&port, "port", 8080, "Listen port (overrides API_PORT)")
	root.Flags().StringVar(&env, "env", "development", "Environment (overrides ENVIRONMENT)")

	if err := root.Execute(); err != nil {
		slog.Error("API server failed", "error", err)
		os.Exit(1)
	}
}

// serve runs the API until SIGINT or SIGTERM.
func serve(cfg *config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	st := store.New(pool.Pool)

	local, err := clublogo.LoadLocal(cfg.ClubLogosFile)
	if err != nil {
		return err
	}
	finder := clublogo.NewSportsDB(cfg.SportsDBBaseURL, cfg.SportsDBAPIKey, cfg.SportsDBRequestsPerMinute, logger)
	logos := clublogo.NewResolver(local, st, finder, logger)
	logger.Info("Club logo resolver ready", "local_entries", len(local))

	sessions := session.NewManager(st, cfg.IsProduction(), logger)
	h := handler.New(sessions, league.NewService(st, logger), logos, pool, logger)
	router := api.NewRouter(h, sessions, cfg)

	go func() {
		err := maintenance.Start(ctx, st, maintenance.Config{
			LogoCleanupInterval:  cfg.LogoCleanupInterval,
			SessionPurgeInterval: cfg.SessionPurgeInterval,
			LogoTTL:              clublogo.CacheTTL,
		}, logger)
		if err != nil {
			logger.Error("Maintenance scheduler failed", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting FC Tournament API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
	return nil
}
