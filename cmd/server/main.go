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

	"github.com/pennantbox/pennant/internal/api"
	"github.com/pennantbox/pennant/internal/auth"
	"github.com/pennantbox/pennant/internal/config"
	"github.com/pennantbox/pennant/internal/coverage"
	"github.com/pennantbox/pennant/internal/database"
	"github.com/pennantbox/pennant/internal/league"
	"github.com/pennantbox/pennant/internal/ratings"
	"github.com/pennantbox/pennant/internal/season"
	"github.com/pennantbox/pennant/internal/team"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := auth.NewRepository(db.Pool())
	authService := auth.NewService(userRepo, cfg.BcryptCost)

	if _, err := authService.BootstrapUser(context.Background(), "admin"); err != nil {
		slog.Error("failed to bootstrap admin user", "error", err)
		os.Exit(1)
	}

	leagueRepo := league.NewRepository(db.Pool())
	teamRepo := team.NewRepository(db.Pool())
	seasonRepo := season.NewRepository(db.Pool())
	ratingsRepo := ratings.NewRepository(db.Pool())

	validator := coverage.Validator{
		MinBatting:  cfg.MinBattingRated,
		MinPitching: cfg.MinPitchingRated,
	}

	router := api.NewRouter(api.RouterDeps{
		AuthService: authService,
		Leagues:     leagueRepo,
		Teams:       teamRepo,
		Claims:      team.NewClaimService(teamRepo),
		Seasons:     seasonRepo,
		Lifecycle:   season.NewLifecycleService(leagueRepo, seasonRepo, ratingsRepo, validator, cfg.RatingSampleCap),
		DBPinger:    db,
		Version:     cfg.Version,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting pennant server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
