package services

import (
	"context"
	"sync"
	"time"

	"github.com/sanghyeon0114/argue-with-ai/internal/logging"
)

// TaskQueue serializes persistence work on a single worker goroutine so
// storage writes never block the watcher path and never interleave.
type TaskQueue struct {
	tasks chan func(ctx context.Context)

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewTaskQueue creates a TaskQueue with the given buffer and starts its
// worker.
func NewTaskQueue(buffer int) *TaskQueue {
	q := &TaskQueue{
		tasks: make(chan func(ctx context.Context), buffer),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *TaskQueue) run() {
	defer close(q.done)
	for task := range q.tasks {
		task(context.Background())
	}
}

// Submit enqueues a task. Tasks submitted after Close are dropped with a
// warning instead of panicking.
func (q *TaskQueue) Submit(task func(ctx context.Context)) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		logging.Logger.Warn("task submitted after queue close, dropping")
		return
	}

	select {
	case q.tasks <- task:
	default:
		// Queue full. Block under the lock rather than lose a write.
		q.tasks <- task
	}
}

// Close stops accepting tasks and waits up to timeout for the worker to
// drain what was already queued.
func (q *TaskQueue) Close(timeout time.Duration) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return nil
	}
	q.closed = true
	close(q.tasks)
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-time.After(timeout):
		return context.DeadlineExceeded
	}
}
