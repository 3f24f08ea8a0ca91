package ingest

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestBatchWriterFlushesOnClose(t *testing.T) {
	bw := NewBatchWriter(nil, 10, 0)

	var ran int32
	for i := 0; i < 3; i++ {
		err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := atomic.LoadInt32(&ran); got != 3 {
		t.Fatalf("expected 3 writes, got %d", got)
	}
}

func TestBatchWriterFlushesAtCapacity(t *testing.T) {
	bw := NewBatchWriter(nil, 2, 0)
	defer bw.Close()

	done := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			done <- struct{}{}
			return nil
		})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("batch not flushed at capacity")
		}
	}
}

func TestBatchWriterTimedFlush(t *testing.T) {
	bw := NewBatchWriter(nil, 100, 10*time.Millisecond)
	defer bw.Close()

	done := make(chan struct{}, 1)
	err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
		done <- struct{}{}
		return nil
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not flush the partial batch")
	}
}

func TestBatchWriterReportsWriteError(t *testing.T) {
	bw := NewBatchWriter(nil, 10, 0)

	boom := errors.New("boom")
	errCh := make(chan error, 1)
	bw.OnError = func(err error) { errCh <- err }

	if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error { return boom }); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := bw.Close(); !errors.Is(err, boom) {
		t.Fatalf("Close = %v, want boom", err)
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, boom) {
			t.Fatalf("OnError got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("OnError not invoked")
	}
}

func TestBatchWriterClosedBehavior(t *testing.T) {
	bw := NewBatchWriter(nil, 10, 0)
	if err := bw.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := bw.Close(); err != ErrBatchWriterClosed {
		t.Fatalf("second close = %v, want ErrBatchWriterClosed", err)
	}
	err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error { return nil })
	if err != ErrBatchWriterClosed {
		t.Fatalf("submit after close = %v, want ErrBatchWriterClosed", err)
	}
}
