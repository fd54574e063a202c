package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/game"
	"github.com/hexlab-games/habitquest/internal/logger"
)

// MaintenanceWorker fires the daily maintenance sweep at the local midnight
// rollover so missed dailies and overdue tasks are settled even when no
// client connects for days. The sweep itself is idempotent; running it here
// and from a client request in the same day costs nothing.
type MaintenanceWorker struct {
	svc      game.Service
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewMaintenanceWorker creates a new MaintenanceWorker
func NewMaintenanceWorker(svc game.Service) *MaintenanceWorker {
	return &MaintenanceWorker{
		svc:      svc,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first rollover
func (w *MaintenanceWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until the next midnight and arms the timer
func (w *MaintenanceWorker) scheduleNext() {
	duration := timeUntilNextRollover()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling to prevent tight-loop rescheduling caused by
	// timers firing early
	if duration > 1*time.Hour {
		// Stage 1: standby. Wake up 45 minutes before the rollover.
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		log.Info(LogMsgMaintenanceStandby, "next_check_at", time.Now().Add(waitDuration))
		return
	}

	// Stage 2: final approach. Arm the actual sweep.
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// If the timer triggered early (jitter > 10s), reschedule for the
		// remaining time. A remainder near 24h means we are on time or late.
		rem := timeUntilNextRollover()
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeSweep()
		w.scheduleNext()
	})
	w.mu.Unlock()

	log.Info(LogMsgMaintenanceApproach, "next_rollover_at", time.Now().Add(duration))
}

// executeSweep runs the maintenance sweep in a tracked goroutine
func (w *MaintenanceWorker) executeSweep() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgMaintenanceStarting)

		res, err := w.svc.PerformDailyMaintenanceIfNeeded(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrCharacterNotFound) {
				log.Debug(LogMsgMaintenanceNoSlot)
				return
			}
			log.Error(LogMsgMaintenanceFailed, "error", err)
			return
		}

		if !res.Ran {
			log.Debug(LogMsgMaintenanceSkipped)
			return
		}
		log.Info(LogMsgMaintenanceCompleted,
			"quests_touched", res.QuestsTouched,
			"penalties", res.PenaltiesApplied)
	}()
}

// Shutdown cancels the pending timer and waits for an in-flight sweep
func (w *MaintenanceWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down maintenance worker")

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Maintenance worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Maintenance worker shutdown timeout")
		return ctx.Err()
	}
}

// timeUntilNextRollover calculates the duration until the next local midnight
func timeUntilNextRollover() time.Duration {
	now := time.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// MaintenanceJob is the interval-scheduled fallback for the midnight worker.
// It implements Job so the scheduler can enqueue it on the worker pool; the
// once-per-day guard in the service makes repeated runs harmless.
type MaintenanceJob struct {
	svc game.Service
}

// NewMaintenanceJob creates a new MaintenanceJob
func NewMaintenanceJob(svc game.Service) *MaintenanceJob {
	return &MaintenanceJob{svc: svc}
}

// Process runs the maintenance sweep once
func (j *MaintenanceJob) Process(ctx context.Context) error {
	_, err := j.svc.PerformDailyMaintenanceIfNeeded(ctx)
	if errors.Is(err, domain.ErrCharacterNotFound) {
		return nil
	}
	return err
}
