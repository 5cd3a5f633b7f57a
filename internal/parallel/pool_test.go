package parallel

import (
	"sync/atomic"
	"testing"
)

func TestTaskPoolDispatchRunsEveryTask(t *testing.T) {
	pool := NewTaskPool(4)
	defer pool.Close()

	var count atomic.Int64
	tasks := make([]func(), 100)
	for i := range tasks {
		tasks[i] = func() { count.Add(1) }
	}
	pool.Dispatch(tasks)

	if count.Load() != 100 {
		t.Errorf("expected all 100 tasks to run, got %d", count.Load())
	}
}

func TestTaskPoolCloseDrainsQueued(t *testing.T) {
	pool := NewTaskPool(2)
	var count atomic.Int64
	tasks := make([]func(), 20)
	for i := range tasks {
		tasks[i] = func() { count.Add(1) }
	}
	pool.Dispatch(tasks)
	pool.Close()

	if count.Load() != 20 {
		t.Errorf("expected all tasks to have run before Close returns, got %d", count.Load())
	}
	if pool.IsRunning() {
		t.Errorf("expected pool to report not running after Close")
	}
}

func TestTaskPoolDispatchAfterCloseIsNoop(t *testing.T) {
	pool := NewTaskPool(2)
	pool.Close()

	var count atomic.Int64
	pool.Dispatch([]func(){func() { count.Add(1) }})
	if count.Load() != 0 {
		t.Errorf("expected Dispatch after Close to be a no-op, got count=%d", count.Load())
	}
}

func TestTaskPoolDefaultsToGOMAXPROCS(t *testing.T) {
	pool := NewTaskPool(0)
	defer pool.Close()
	if pool.Workers() <= 0 {
		t.Errorf("expected a positive default worker count, got %d", pool.Workers())
	}
}
