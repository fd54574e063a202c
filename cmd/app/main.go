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
	"time"

	"github.com/hexlab-games/habitquest/internal/bootstrap"
	"github.com/hexlab-games/habitquest/internal/config"
	"github.com/hexlab-games/habitquest/internal/game"
	"github.com/hexlab-games/habitquest/internal/handler"
	"github.com/hexlab-games/habitquest/internal/scheduler"
	"github.com/hexlab-games/habitquest/internal/server"
	"github.com/hexlab-games/habitquest/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	config.ValidateEnvWithWarnings()
	handler.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, store, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	catalog, err := bootstrap.LoadShopCatalog()
	if err != nil {
		return err
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	hub := bootstrap.RegisterEventHandlers(eventBus)

	// The game service publishes through the resilient wrapper so a
	// slow or failing consumer never blocks a player action
	gameService := game.NewService(store, catalog, publisher)

	// Precise rollover sweep at local midnight
	maintenanceWorker := worker.NewMaintenanceWorker(gameService)
	maintenanceWorker.Start()

	// Interval fallback sweep, idempotent thanks to the once-per-day guard
	pool := worker.NewPool(worker.DefaultWorkerCount, worker.DefaultQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(time.Duration(cfg.MaintenanceInterval)*time.Minute, worker.NewMaintenanceJob(gameService))

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, gameService, hub)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:            srv,
		MaintenanceWorker: maintenanceWorker,
		Scheduler:         sched,
		WorkerPool:        pool,
		Hub:               hub,
	})

	return nil
}
