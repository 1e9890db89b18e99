package queue

import (
	"sync"

	"github.com/lexrey20/STDISCM/internal/task"
)

// Queue is an unbounded, strictly-FIFO, thread-safe task queue. It is a
// monitor: a slice guarded by a mutex, with a condition satisfied by
// "non-empty or shutdown requested". There is no backpressure; callers may
// queue unboundedly many tasks.
type Queue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	pending  []*task.Task
	shutdown bool
}

// New returns an empty, active queue.
func New() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Submit appends a task and returns immediately, waking one blocked worker.
// Submitting after Shutdown is allowed; draining workers will still pick the
// task up, but no guarantee remains once they have exited.
func (q *Queue) Submit(t *task.Task) {
	q.mu.Lock()
	q.pending = append(q.pending, t)
	q.mu.Unlock()
	q.cond.Signal()
}

// Take blocks until a task is available or the queue is shut down. The
// second return value is false only when shutdown has been requested and no
// tasks remain: workers drain the queue before stopping.
func (q *Queue) Take() (*task.Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for !q.shutdown && len(q.pending) == 0 {
		q.cond.Wait()
	}
	if q.shutdown && len(q.pending) == 0 {
		return nil, false
	}

	t := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return t, true
}

// Shutdown requests that workers stop once the queue is empty and wakes all
// of them. Idempotent.
func (q *Queue) Shutdown() {
	q.mu.Lock()
	if q.shutdown {
		q.mu.Unlock()
		return
	}
	q.shutdown = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// Len reports the number of pending tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
