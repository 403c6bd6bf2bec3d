package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/LondonTravel_Go/docs"
	"github.com/osse101/LondonTravel_Go/internal/bootstrap"
	"github.com/osse101/LondonTravel_Go/internal/config"
	"github.com/osse101/LondonTravel_Go/internal/database"
	"github.com/osse101/LondonTravel_Go/internal/server"
)

// @title London Travel API
// @version 1.0
// @description Account linking and line preferences for the London Travel Alexa skill.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		initLogger(cfg)
		slog.Warn("File logging unavailable, logging to stdout only", "error", err)
	} else {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		slog.Warn(w)
	}
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services, err := bootstrap.InitializeServices(cfg, repos)
	if err != nil {
		dbPool.Close()
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, server.Dependencies{
		DBPool:      dbPool,
		Sessions:    services.Sessions,
		Users:       services.Users,
		Alexa:       services.Alexa,
		Providers:   services.Providers,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Telemetry: services.Telemetry,
		DBPool:    dbPool,
	})
}
