package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/testing/leaktest"
)

type testJob struct {
	executed atomic.Int32
	err      error
	block    chan struct{}
}

func (j *testJob) Name() string { return "test" }

func (j *testJob) Process(ctx context.Context) error {
	if j.block != nil {
		select {
		case <-j.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	j.executed.Add(1)
	return j.err
}

func TestPool_RunsJobs(t *testing.T) {
	leaktest.Check(t, 0)

	pool := NewPool(2, 10, time.Second)
	pool.Start()

	job := &testJob{}
	require.True(t, pool.Enqueue(job))
	require.True(t, pool.Enqueue(job))

	assert.Eventually(t, func() bool { return job.executed.Load() == 2 }, time.Second, 5*time.Millisecond)
	pool.Stop()
}

func TestPool_FailingJobKeepsWorkerAlive(t *testing.T) {
	pool := NewPool(1, 4, time.Second)
	pool.Start()
	defer pool.Stop()

	failing := &testJob{err: errors.New("boom")}
	ok := &testJob{}
	require.True(t, pool.Enqueue(failing))
	require.True(t, pool.Enqueue(ok))

	assert.Eventually(t, func() bool { return ok.executed.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestPool_EnqueueDropsWhenFull(t *testing.T) {
	pool := NewPool(1, 1, time.Second)
	pool.Start()

	blocker := &testJob{block: make(chan struct{})}
	require.True(t, pool.Enqueue(blocker))
	// Wait until the worker holds the blocker so the queue slot is free again
	assert.Eventually(t, func() bool { return len(pool.jobQueue) == 0 }, time.Second, time.Millisecond)

	require.True(t, pool.Enqueue(&testJob{}))
	assert.False(t, pool.Enqueue(&testJob{}))

	close(blocker.block)
	pool.Stop()
}

func TestPool_StopCancelsJobsAndRejectsNewOnes(t *testing.T) {
	leaktest.Check(t, 0)

	pool := NewPool(1, 1, time.Minute)
	pool.Start()

	blocker := &testJob{block: make(chan struct{})}
	require.True(t, pool.Enqueue(blocker))
	assert.Eventually(t, func() bool { return len(pool.jobQueue) == 0 }, time.Second, time.Millisecond)

	pool.Stop()
	assert.Equal(t, int32(0), blocker.executed.Load())
	assert.False(t, pool.Enqueue(&testJob{}))
}

func TestNewPool_Defaults(t *testing.T) {
	pool := NewPool(0, 0, 0)
	assert.Equal(t, DefaultWorkers, pool.workers)
	assert.Equal(t, DefaultQueueSize, cap(pool.jobQueue))
	assert.Equal(t, DefaultJobTimeout, pool.jobTimeout)
	pool.Stop()
}
