// Package ingest feeds Sanskrit corpus text into the dictionary and the
// frequency database: verses are tokenized on a worker pool and the
// resulting word counts are committed in batched transactions.
package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/samskrita/sandhi/pkg/db"
	"github.com/samskrita/sandhi/pkg/devanagari"
	"github.com/samskrita/sandhi/pkg/dictionary"
)

// Tokenizer is the text-splitting stage the ingester runs on each verse.
type Tokenizer interface {
	Tokenize(text string) []string
}

// WorkerPoolInterface abstracts the worker pool so tests can inject failing implementations.
type WorkerPoolInterface interface {
	Start(ctx context.Context)
	Submit(Job) error
	SubmitCtx(ctx context.Context, job Job) error
	Close()
}

// Ingester pushes corpus verses through tokenization into the dictionary
// and the frequency store.
type Ingester struct {
	DB        *sql.DB
	Dict      *dictionary.Dictionary
	Tokenizer Tokenizer
	BatchSize int
	Workers   int

	// Logger receives informational messages. nil disables logging.
	Logger *log.Logger
	// OnProgress is called periodically with processed and total verse counts.
	OnProgress func(current, total int)

	// PoolFactory allows tests to inject custom worker pool implementations.
	PoolFactory func(workers, queue int) WorkerPoolInterface
}

// NewIngester creates an ingester with default batching and concurrency.
func NewIngester(conn *sql.DB, dict *dictionary.Dictionary, tok Tokenizer) *Ingester {
	return &Ingester{
		DB:        conn,
		Dict:      dict,
		Tokenizer: tok,
		BatchSize: 50,
		Workers:   4,
	}
}

// verseCounts holds the word tally of one tokenized verse.
type verseCounts struct {
	Index  int
	Counts map[string]int
	Order  []string
}

// SplitVerses splits corpus text into verses on dandas and newlines.
// Empty segments are dropped.
func SplitVerses(text string) []string {
	seps := strings.NewReplacer("॥", "\n", "।", "\n")
	var verses []string
	for _, line := range strings.Split(seps.Replace(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			verses = append(verses, line)
		}
	}
	return verses
}

// Ingest tokenizes verses concurrently and persists per-word frequencies.
// It returns the total number of word occurrences recorded. sourceID may
// be zero when no provenance row exists (e.g. ad-hoc text).
func (ig *Ingester) Ingest(ctx context.Context, sourceID int64, verses []string) (int, error) {
	total := len(verses)
	if total == 0 {
		return 0, nil
	}

	var wp WorkerPoolInterface
	if ig.PoolFactory != nil {
		wp = ig.PoolFactory(ig.Workers, ig.Workers*2)
	} else {
		wp = NewWorkerPool(ig.Workers, ig.Workers*2)
	}

	resultCh := make(chan verseCounts, ig.Workers*2)

	bw := NewBatchWriter(ig.DB, ig.BatchSize, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wp.Start(ctx)

	// Consumer: fold verse tallies into the dictionary and the database.
	var totalWords int64
	doneCh := make(chan error, 1)
	go func() {
		defer close(doneCh)
		processed := 0
		for vc := range resultCh {
			for _, word := range vc.Order {
				ig.Dict.AddN(word, vc.Counts[word])
			}
			counts := vc.Counts
			order := vc.Order
			err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
				for _, word := range order {
					if _, err := db.UpsertWordCount(tx, word, counts[word]); err != nil {
						return fmt.Errorf("failed to persist word %s: %w", word, err)
					}
					atomic.AddInt64(&totalWords, int64(counts[word]))
				}
				return nil
			})
			if err != nil {
				cancel()
				doneCh <- err
				return
			}
			processed++
			if ig.OnProgress != nil && processed%ig.BatchSize == 0 {
				ig.OnProgress(processed, total)
			}
		}
		if ig.OnProgress != nil {
			ig.OnProgress(total, total)
		}
	}()

	// Producer: one tokenization job per verse.
	var submitErr error
Loop:
	for i := 0; i < total; i++ {
		idx := i
		verse := verses[i]
		job := func(ctx context.Context) error {
			vc := ig.tallyVerse(idx, verse)
			select {
			case resultCh <- vc:
			case <-ctx.Done():
			}
			return nil
		}
		if err := wp.SubmitCtx(ctx, job); err != nil {
			if err == ctx.Err() || err == ErrPoolClosed {
				break Loop
			}
			submitErr = err
			break Loop
		}
	}

	// All jobs submitted; drain the pipeline in order.
	wp.Close()
	close(resultCh)
	consumerErr := <-doneCh

	if err := bw.Close(); err != nil && consumerErr == nil && err != ErrBatchWriterClosed {
		consumerErr = err
	}
	if consumerErr == nil {
		consumerErr = submitErr
	}

	if consumerErr == nil && sourceID > 0 && ig.DB != nil {
		if err := db.UpdateSourceVerseCount(ig.DB, sourceID, total); err != nil {
			if ig.Logger != nil {
				ig.Logger.Printf("warning: failed to record verse count: %v", err)
			}
		}
	}

	return int(atomic.LoadInt64(&totalWords)), consumerErr
}

// tallyVerse tokenizes one verse and counts its Devanagari words, keeping
// first-seen order for deterministic writes.
func (ig *Ingester) tallyVerse(index int, verse string) verseCounts {
	vc := verseCounts{
		Index:  index,
		Counts: make(map[string]int),
	}
	for _, token := range ig.Tokenizer.Tokenize(verse) {
		token = strings.TrimSpace(token)
		if token == "" || !containsDevanagari(token) {
			continue
		}
		if _, seen := vc.Counts[token]; !seen {
			vc.Order = append(vc.Order, token)
		}
		vc.Counts[token]++
	}
	return vc
}

func containsDevanagari(s string) bool {
	for _, r := range s {
		if devanagari.IsDevanagari(r) {
			return true
		}
	}
	return false
}
