package bootstrap

import (
	"context"
	"log/slog"

	"github.com/hexlab-games/habitquest/internal/scheduler"
	"github.com/hexlab-games/habitquest/internal/server"
	"github.com/hexlab-games/habitquest/internal/sse"
	"github.com/hexlab-games/habitquest/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server            *server.Server
	MaintenanceWorker *worker.MaintenanceWorker
	Scheduler         *scheduler.Scheduler
	WorkerPool        *worker.Pool
	Hub               *sse.Hub
}

// GracefulShutdown performs graceful shutdown of all application components.
// It stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Background workers and scheduler (cancel pending timers, drain jobs)
// 3. SSE hub (disconnect streaming clients)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.MaintenanceWorker != nil {
		if err := components.MaintenanceWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgMaintenanceWorkerFailed, "error", err)
		}
	}

	// Scheduler before pool so no new jobs are enqueued into a stopped pool
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
