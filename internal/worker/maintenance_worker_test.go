package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlab-games/habitquest/internal/event"
	"github.com/hexlab-games/habitquest/internal/game"
	"github.com/hexlab-games/habitquest/internal/shop"
)

func newTestGameService(t *testing.T) game.Service {
	t.Helper()
	return game.NewService(game.NewFakeStore(), shop.NewCatalog(nil), event.NewMemoryBus())
}

func TestTimeUntilNextRollover(t *testing.T) {
	d := timeUntilNextRollover()
	assert.Greater(t, d, time.Duration(0))
	assert.LessOrEqual(t, d, 24*time.Hour)
}

func TestMaintenanceJobWithoutCharacter(t *testing.T) {
	job := NewMaintenanceJob(newTestGameService(t))

	// No character yet is not an error, the sweep just idles
	assert.NoError(t, job.Process(context.Background()))
}

func TestMaintenanceJobRunsSweep(t *testing.T) {
	svc := newTestGameService(t)
	_, err := svc.CreateCharacter(context.Background(), "Brand", "WARRIOR")
	require.NoError(t, err)

	job := NewMaintenanceJob(svc)
	require.NoError(t, job.Process(context.Background()))

	// Second run the same day hits the once-per-day guard
	require.NoError(t, job.Process(context.Background()))
}

func TestMaintenanceWorkerShutdown(t *testing.T) {
	w := NewMaintenanceWorker(newTestGameService(t))
	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))
}
