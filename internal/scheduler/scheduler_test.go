package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hexlab-games/habitquest/internal/worker"
)

type tickJob struct {
	count atomic.Int32
}

func (j *tickJob) Process(ctx context.Context) error {
	j.count.Add(1)
	return nil
}

func TestSchedulerRunsJobOnInterval(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	s := New(pool)
	defer s.Stop()

	job := &tickJob{}
	s.Schedule(20*time.Millisecond, job)

	assert.Eventually(t, func() bool {
		return job.count.Load() >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestSchedulerStopHaltsTicks(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	s := New(pool)
	job := &tickJob{}
	s.Schedule(10*time.Millisecond, job)

	time.Sleep(50 * time.Millisecond)
	s.Stop()

	// Drain anything already enqueued before sampling
	time.Sleep(20 * time.Millisecond)
	settled := job.count.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, job.count.Load())
}
