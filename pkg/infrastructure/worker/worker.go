package worker

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrClosed is returned by Submit after Shutdown has been called
var ErrClosed = errors.New("worker is shut down")

// Worker runs submitted tasks one at a time, in submission order, on a
// single background goroutine. The queue grows as needed, so Submit
// never blocks the caller. Shutdown drains the queue before returning,
// so no accepted task is abandoned mid-write.
type Worker struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	done   chan struct{}
	logger *zap.Logger
}

// New creates a worker with the given initial queue capacity and
// starts its loop
func New(queueSize int, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Worker{
		queue:  make([]func(), 0, queueSize),
		done:   make(chan struct{}),
		logger: logger,
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

func (w *Worker) run() {
	defer close(w.done)
	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.closed {
			w.cond.Wait()
		}
		if len(w.queue) == 0 {
			w.mu.Unlock()
			return
		}
		task := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		task()
	}
}

// Submit queues a task for execution and returns immediately. It fails
// only once the worker is shut down.
func (w *Worker) Submit(task func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	w.queue = append(w.queue, task)
	w.cond.Signal()
	return nil
}

// Shutdown stops accepting tasks, waits for queued tasks to finish,
// then returns. Safe to call more than once.
func (w *Worker) Shutdown() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		w.cond.Signal()
		w.logger.Info("worker draining")
	}
	w.mu.Unlock()

	<-w.done
}
