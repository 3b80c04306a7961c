package renderer

import (
	"sync"
)

// Task is a unit of work run by a ThreadPool
type Task func()

// ThreadPool runs queued tasks on a fixed set of goroutines in FIFO order
type ThreadPool struct {
	mu         sync.Mutex
	cond       *sync.Cond
	queue      []Task
	stopping   bool // Close was called: drain the queue, then exit
	cancelled  bool // Cancel was called: exit without draining
	numWorkers int
	wg         sync.WaitGroup
}

// NewThreadPool starts numWorkers workers. Fewer than one worker is raised to one.
func NewThreadPool(numWorkers int) *ThreadPool {
	if numWorkers < 1 {
		numWorkers = 1
	}

	tp := &ThreadPool{numWorkers: numWorkers}
	tp.cond = sync.NewCond(&tp.mu)

	for i := 0; i < numWorkers; i++ {
		tp.wg.Add(1)
		go tp.run(&tp.wg)
	}
	return tp
}

// NumWorkers returns the number of worker goroutines
func (tp *ThreadPool) NumWorkers() int {
	return tp.numWorkers
}

// Enqueue adds a task and wakes one worker. Tasks enqueued after Close or
// Cancel are dropped.
func (tp *ThreadPool) Enqueue(task Task) {
	tp.mu.Lock()
	if tp.stopping || tp.cancelled {
		tp.mu.Unlock()
		return
	}
	tp.queue = append(tp.queue, task)
	tp.mu.Unlock()
	tp.cond.Signal()
}

// Cancel makes workers exit as soon as their current task finishes.
// Queued tasks are dropped. Cancel does not wait; call Close to join.
func (tp *ThreadPool) Cancel() {
	tp.mu.Lock()
	tp.cancelled = true
	tp.queue = nil
	tp.mu.Unlock()
	tp.cond.Broadcast()
}

// Cancelled reports whether Cancel has been called
func (tp *ThreadPool) Cancelled() bool {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	return tp.cancelled
}

// Close lets the workers drain the queue and blocks until they have exited
func (tp *ThreadPool) Close() {
	tp.mu.Lock()
	tp.stopping = true
	tp.mu.Unlock()
	tp.cond.Broadcast()
	tp.wg.Wait()
}

// run is the main worker loop
func (tp *ThreadPool) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		tp.mu.Lock()
		for !tp.stopping && !tp.cancelled && len(tp.queue) == 0 {
			tp.cond.Wait()
		}
		if tp.cancelled || (tp.stopping && len(tp.queue) == 0) {
			tp.mu.Unlock()
			return
		}

		task := tp.queue[0]
		tp.queue[0] = nil
		tp.queue = tp.queue[1:]
		tp.mu.Unlock()

		task()
	}
}
