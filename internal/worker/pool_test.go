package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingJob struct {
	count *atomic.Int32
	fail  bool
}

func (j *countingJob) Process(ctx context.Context) error {
	j.count.Add(1)
	if j.fail {
		return assert.AnError
	}
	return nil
}

func TestPoolProcessesJobs(t *testing.T) {
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	var count atomic.Int32
	for i := 0; i < TestExpectedJobCount; i++ {
		pool.Enqueue(&countingJob{count: &count})
	}

	assert.Eventually(t, func() bool {
		return count.Load() == TestExpectedJobCount
	}, time.Second, 10*time.Millisecond)
}

func TestPoolSurvivesFailingJob(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	var count atomic.Int32
	pool.Enqueue(&countingJob{count: &count, fail: true})
	pool.Enqueue(&countingJob{count: &count})

	assert.Eventually(t, func() bool {
		return count.Load() == 2
	}, time.Second, 10*time.Millisecond)
}
