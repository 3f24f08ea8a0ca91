package ingest

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/samskrita/sandhi/pkg/db"
	"github.com/samskrita/sandhi/pkg/dictionary"
)

// fieldsTokenizer splits on whitespace, the minimal stand-in for the real pipeline.
type fieldsTokenizer struct{}

func (fieldsTokenizer) Tokenize(text string) []string { return strings.Fields(text) }

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Single connection so every query sees the same in-memory database.
	conn.SetMaxOpenConns(1)
	if err := db.InitDB(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func TestSplitVerses(t *testing.T) {
	text := "राम वनं गच्छति। राम राम॥\n\nसीता  वने"
	got := SplitVerses(text)
	want := []string{"राम वनं गच्छति", "राम राम", "सीता  वने"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitVerses = %v, want %v", got, want)
	}

	if got := SplitVerses("॥।॥"); got != nil {
		t.Fatalf("separators only: got %v", got)
	}
}

func TestIngest(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	sourceID, err := db.CreateOrGetSource(conn, "json_corpus", "परीक्षा", "", "")
	if err != nil {
		t.Fatalf("create source: %v", err)
	}

	dict := dictionary.New()
	ig := NewIngester(conn, dict, fieldsTokenizer{})

	var lastCurrent, lastTotal int
	ig.OnProgress = func(current, total int) {
		lastCurrent, lastTotal = current, total
	}

	verses := []string{"राम वनं गच्छति", "राम राम"}
	total, err := ig.Ingest(context.Background(), sourceID, verses)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if total != 5 {
		t.Fatalf("total words = %d, want 5", total)
	}

	freq, err := db.WordCount(conn, "राम")
	if err != nil {
		t.Fatalf("word count: %v", err)
	}
	if freq != 3 {
		t.Fatalf("stored frequency = %d, want 3", freq)
	}
	if f := dict.Frequency("राम"); f != 3 {
		t.Fatalf("dictionary frequency = %d, want 3", f)
	}
	if !dict.Contains("वनं") || !dict.Contains("गच्छति") {
		t.Fatal("ingested words missing from dictionary")
	}

	var verseCount int
	if err := conn.QueryRow(`SELECT verse_count FROM sources WHERE id = ?`, sourceID).Scan(&verseCount); err != nil {
		t.Fatalf("query verse count: %v", err)
	}
	if verseCount != len(verses) {
		t.Fatalf("verse_count = %d, want %d", verseCount, len(verses))
	}

	if lastCurrent != len(verses) || lastTotal != len(verses) {
		t.Fatalf("final progress (%d, %d), want (%d, %d)", lastCurrent, lastTotal, len(verses), len(verses))
	}
}

func TestIngestSkipsNonDevanagari(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	dict := dictionary.NewEmpty()
	ig := NewIngester(conn, dict, fieldsTokenizer{})

	total, err := ig.Ingest(context.Background(), 0, []string{"राम hello 123"})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if total != 1 {
		t.Fatalf("total words = %d, want 1", total)
	}
	if dict.Contains("hello") || dict.Contains("123") {
		t.Fatal("foreign tokens leaked into the dictionary")
	}
}

func TestIngestEmpty(t *testing.T) {
	ig := NewIngester(nil, dictionary.NewEmpty(), fieldsTokenizer{})
	total, err := ig.Ingest(context.Background(), 0, nil)
	if err != nil || total != 0 {
		t.Fatalf("Ingest(nil) = %d, %v", total, err)
	}
}

// failPool rejects every submission.
type failPool struct{ err error }

func (p *failPool) Start(ctx context.Context) {}
func (p *failPool) Submit(Job) error          { return p.err }
func (p *failPool) SubmitCtx(ctx context.Context, job Job) error {
	return p.err
}
func (p *failPool) Close() {}

func TestIngestSubmitError(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	boom := errors.New("boom")
	ig := NewIngester(conn, dictionary.NewEmpty(), fieldsTokenizer{})
	ig.PoolFactory = func(workers, queue int) WorkerPoolInterface {
		return &failPool{err: boom}
	}

	total, err := ig.Ingest(context.Background(), 0, []string{"राम"})
	if !errors.Is(err, boom) {
		t.Fatalf("Ingest error = %v, want boom", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
}
