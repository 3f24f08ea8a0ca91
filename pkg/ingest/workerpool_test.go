package ingest

import (
	"context"
	"sync/atomic"
	"testing"
)

func TestWorkerPoolRunsJobs(t *testing.T) {
	p := NewWorkerPool(4, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	var ran int32
	jobs := 100
	for i := 0; i < jobs; i++ {
		err := p.Submit(func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	p.Close()

	if got := atomic.LoadInt32(&ran); int(got) != jobs {
		t.Fatalf("expected %d jobs executed, got %d", jobs, got)
	}
}

func TestSubmitAfterClose(t *testing.T) {
	p := NewWorkerPool(1, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	p.Close()

	if err := p.Submit(func(ctx context.Context) error { return nil }); err != ErrPoolClosed {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
	if err := p.SubmitCtx(ctx, func(ctx context.Context) error { return nil }); err != ErrPoolClosed {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
}

func TestSubmitCtxReturnsOnCancel(t *testing.T) {
	// One-slot queue, no workers started: the queue stays full.
	p := NewWorkerPool(1, 1)
	if err := p.Submit(func(ctx context.Context) error { return nil }); err != nil {
		t.Fatalf("setup submit failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.SubmitCtx(ctx, func(ctx context.Context) error { return nil })
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	p := NewWorkerPool(2, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	p.Close()
	p.Close() // must not panic
}

func TestPoolDefaults(t *testing.T) {
	p := NewWorkerPool(0, 0)
	if p.workers != 1 {
		t.Fatalf("workers = %d, want 1", p.workers)
	}
	if cap(p.jobs) != 2 {
		t.Fatalf("queue capacity = %d, want 2", cap(p.jobs))
	}
}
