package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/LondonTravel_Go/internal/database"
	"github.com/osse101/LondonTravel_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Telemetry shutdownable
	DBPool    database.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down components in the correct order:
// 1. HTTP server (stop accepting new requests, finish in-flight ones)
// 2. Telemetry sink (record events queued by those requests)
// 3. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Telemetry != nil {
		slog.Info(LogMsgShuttingDownTelemetry)
		shutdownComponent(ctx, ComponentNameTelemetry, components.Telemetry)
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}

// shutdownable is implemented by background components that drain on exit
type shutdownable interface {
	Shutdown(context.Context) error
}

func shutdownComponent(ctx context.Context, name string, component shutdownable) {
	if err := component.Shutdown(ctx); err != nil {
		slog.Error(LogMsgComponentShutdown, "component", name, "error", err)
	}
}
