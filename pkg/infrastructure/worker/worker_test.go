package worker

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorker_RunsTasksInSubmissionOrder(t *testing.T) {
	w := New(16, nil)

	var mu sync.Mutex
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		if err := w.Submit(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}); err != nil {
			t.Fatalf("submitting task %d: %v", i, err)
		}
	}

	w.Shutdown()

	if len(order) != 5 {
		t.Fatalf("Expected 5 tasks to run, got %d", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Errorf("Expected task %d at position %d, got %d", i, i, got)
		}
	}
}

func TestWorker_ShutdownDrains(t *testing.T) {
	w := New(16, nil)

	var completed atomic.Int32
	for i := 0; i < 10; i++ {
		if err := w.Submit(func() { completed.Add(1) }); err != nil {
			t.Fatalf("submitting task: %v", err)
		}
	}

	w.Shutdown()

	if got := completed.Load(); got != 10 {
		t.Errorf("Expected all 10 tasks completed before Shutdown returned, got %d", got)
	}
}

func TestWorker_SubmitNeverBlocks(t *testing.T) {
	w := New(1, nil)

	// Stall the worker on the first task so nothing drains while the
	// callers keep submitting past the initial capacity
	gate := make(chan struct{})
	if err := w.Submit(func() { <-gate }); err != nil {
		t.Fatalf("submitting gated task: %v", err)
	}

	var completed atomic.Int32
	submitted := make(chan struct{})
	go func() {
		defer close(submitted)
		for i := 0; i < 50; i++ {
			if err := w.Submit(func() { completed.Add(1) }); err != nil {
				t.Errorf("submitting task %d: %v", i, err)
				return
			}
		}
	}()

	select {
	case <-submitted:
	case <-time.After(5 * time.Second):
		t.Fatal("Expected 50 submissions to return while the worker was busy")
	}

	close(gate)
	w.Shutdown()

	if got := completed.Load(); got != 50 {
		t.Errorf("Expected all 50 queued tasks to run before Shutdown returned, got %d", got)
	}
}

func TestWorker_SubmitAfterShutdown(t *testing.T) {
	w := New(1, nil)
	w.Shutdown()

	if err := w.Submit(func() {}); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

func TestWorker_ShutdownTwice(t *testing.T) {
	w := New(1, nil)
	w.Shutdown()
	// Second call must not panic or hang
	w.Shutdown()
}
