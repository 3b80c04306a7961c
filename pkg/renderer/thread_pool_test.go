package renderer

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreadPool_RunsEveryTaskBeforeClose(t *testing.T) {
	tests := []struct {
		name    string
		workers int
	}{
		{"Single worker", 1},
		{"Several workers", 4},
		{"Zero raised to one", 0},
		{"Negative raised to one", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewThreadPool(tt.workers)
			assert.GreaterOrEqual(t, pool.NumWorkers(), 1)

			var count atomic.Int64
			for i := 0; i < 1000; i++ {
				pool.Enqueue(func() { count.Add(1) })
			}
			pool.Close()

			assert.Equal(t, int64(1000), count.Load())
			assert.False(t, pool.Cancelled())
		})
	}
}

func TestThreadPool_SingleWorkerIsFIFO(t *testing.T) {
	pool := NewThreadPool(1)

	var mu sync.Mutex
	var order []int
	for i := 0; i < 50; i++ {
		pool.Enqueue(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	pool.Close()

	for i, got := range order {
		if got != i {
			t.Fatalf("Expected task %d at position %d, got %d", i, i, got)
		}
	}
	assert.Len(t, order, 50)
}

func TestThreadPool_CancelDropsQueuedTasks(t *testing.T) {
	pool := NewThreadPool(1)

	started := make(chan struct{})
	release := make(chan struct{})
	var count atomic.Int64

	pool.Enqueue(func() {
		close(started)
		<-release
		count.Add(1)
	})
	<-started
	for i := 0; i < 10; i++ {
		pool.Enqueue(func() { count.Add(1) })
	}

	pool.Cancel()
	close(release)
	pool.Close()

	assert.True(t, pool.Cancelled())
	assert.Equal(t, int64(1), count.Load(), "only the task already running completes")
}

func TestThreadPool_EnqueueAfterCloseIsDropped(t *testing.T) {
	pool := NewThreadPool(2)
	pool.Close()

	var count atomic.Int64
	pool.Enqueue(func() { count.Add(1) })
	pool.Close()

	assert.Equal(t, int64(0), count.Load())
}

func TestThreadPool_CloseWithEmptyQueue(t *testing.T) {
	pool := NewThreadPool(8)
	pool.Close()
	pool.Cancel()
	assert.True(t, pool.Cancelled())
}
