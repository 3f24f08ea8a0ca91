package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// WriteFunc is a callback that performs database writes inside a transaction.
type WriteFunc func(ctx context.Context, tx *sql.Tx) error

// BatchWriter buffers write operations and flushes them in batches inside a
// transaction. Word-frequency upserts are tiny; committing them one by one
// would make SQLite fsync per word.
type BatchWriter struct {
	mu          sync.Mutex
	buf         []WriteFunc
	cap         int
	flushTicker *time.Ticker
	closed      bool
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc

	commitCh chan []WriteFunc
	db       *sql.DB

	// OnError is invoked for asynchronous flush errors.
	OnError func(error)

	// lastErr stores the first asynchronous error seen by the writer. Protected by errMu.
	errMu   sync.Mutex
	lastErr error
}

// NewBatchWriter creates a new BatchWriter that flushes when the buffer
// reaches bufferSize or after flushInterval (0 disables timed flushes).
func NewBatchWriter(db *sql.DB, bufferSize int, flushInterval time.Duration) *BatchWriter {
	if bufferSize <= 0 {
		bufferSize = 10
	}
	ctx, cancel := context.WithCancel(context.Background())
	bw := &BatchWriter{
		buf:      make([]WriteFunc, 0, bufferSize),
		cap:      bufferSize,
		ctx:      ctx,
		cancel:   cancel,
		commitCh: make(chan []WriteFunc, 2),
		db:       db,
	}

	bw.wg.Add(1)
	go bw.committer()

	if flushInterval > 0 {
		bw.flushTicker = time.NewTicker(flushInterval)
		bw.wg.Add(1)
		go bw.loop()
	}
	return bw
}

// Submit enqueues a write function.
func (bw *BatchWriter) Submit(w WriteFunc) error {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.closed {
		return ErrBatchWriterClosed
	}
	bw.buf = append(bw.buf, w)
	if len(bw.buf) >= bw.cap {
		bw.flushLocked()
	}
	return nil
}

// flushLocked assumes bw.mu is held. A full commit channel blocks Submit,
// which propagates backpressure to the producers.
func (bw *BatchWriter) flushLocked() {
	if len(bw.buf) == 0 {
		return
	}
	batch := bw.buf
	bw.buf = make([]WriteFunc, 0, bw.cap)

	select {
	case bw.commitCh <- batch:
	case <-bw.ctx.Done():
		// Shutdown race: record the dropped batch so callers can detect data loss.
		err := fmt.Errorf("batch writer: dropping batch of %d items due to context cancellation", len(batch))
		bw.recordErr(err)
	}
}

func (bw *BatchWriter) recordErr(err error) {
	bw.errMu.Lock()
	if bw.lastErr == nil {
		bw.lastErr = err
	}
	bw.errMu.Unlock()
	if bw.OnError != nil {
		bw.OnError(err)
	}
}

func (bw *BatchWriter) committer() {
	defer bw.wg.Done()
	for batch := range bw.commitCh {
		if err := bw.executeBatch(batch); err != nil {
			bw.recordErr(err)
		}
	}
}

func (bw *BatchWriter) executeBatch(batch []WriteFunc) error {
	// No DB configured (tests): run callbacks with a nil tx.
	if bw.db == nil {
		for _, w := range batch {
			if err := w(bw.ctx, nil); err != nil {
				return err
			}
		}
		return nil
	}

	// Use a background context so an in-flight flush survives Close.
	ctx := context.Background()

	tx, err := bw.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	for _, w := range batch {
		if err := w(ctx, tx); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch (%d items): %w", len(batch), err)
	}
	return nil
}

func (bw *BatchWriter) loop() {
	defer bw.wg.Done()
	for {
		select {
		case <-bw.ctx.Done():
			return
		case <-bw.flushTicker.C:
			bw.mu.Lock()
			bw.flushLocked()
			bw.mu.Unlock()
		}
	}
}

// Close stops accepting submissions, flushes what remains, and waits for
// pending commits. It returns the first asynchronous error seen, if any.
func (bw *BatchWriter) Close() error {
	bw.mu.Lock()
	if bw.closed {
		bw.mu.Unlock()
		return ErrBatchWriterClosed
	}
	bw.closed = true
	if bw.flushTicker != nil {
		bw.flushTicker.Stop()
	}
	bw.flushLocked()
	bw.mu.Unlock()

	bw.cancel()        // stop ticker loop
	close(bw.commitCh) // stop committer loop
	bw.wg.Wait()

	bw.errMu.Lock()
	defer bw.errMu.Unlock()
	return bw.lastErr
}

var ErrBatchWriterClosed = &BatchWriterError{"batch writer closed"}

type BatchWriterError struct{ msg string }

func (e *BatchWriterError) Error() string { return e.msg }
