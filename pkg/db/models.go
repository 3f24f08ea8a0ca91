package db

import "time"

// Word is one vocabulary entry with its accumulated corpus frequency.
type Word struct {
	ID        int64
	Word      string
	Frequency int
}

// Source is a provenance record for an ingested corpus: a URL, a file, or
// a manually supplied text.
type Source struct {
	ID         int64
	SourceType string
	Title      string
	URL        string
	Meta       string
	VerseCount int
	AddedAt    time.Time
}
