package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// isUniqueConstraintErr returns true when the error indicates a unique/constraint violation
func isUniqueConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique") || strings.Contains(s, "constraint failed")
}

// UpsertWordCount adds delta occurrences to a word's frequency, inserting
// the word if it is new, and returns the word's id.
func UpsertWordCount(db DBExecutor, word string, delta int) (int64, error) {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return 0, fmt.Errorf("word must be non-empty")
	}
	if delta < 0 {
		return 0, fmt.Errorf("delta must be non-negative, got %d", delta)
	}

	var id int64
	query := `INSERT INTO words (word, frequency)
			  VALUES (?, ?)
			  ON CONFLICT(word)
			  DO UPDATE SET frequency = words.frequency + excluded.frequency
			  RETURNING id`
	if err := db.QueryRow(query, trimmed, delta).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert word: %w", err)
	}
	return id, nil
}

// WordCount returns a word's stored frequency, zero when unknown.
func WordCount(db DBExecutor, word string) (int, error) {
	var freq int
	err := db.QueryRow(`SELECT frequency FROM words WHERE word = ?`, word).Scan(&freq)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return freq, nil
}

// TopWords returns the limit most frequent words, frequency descending.
func TopWords(db DBExecutor, limit int) ([]Word, error) {
	rows, err := db.Query(`SELECT id, word, frequency FROM words ORDER BY frequency DESC, word ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Word
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.ID, &w.Word, &w.Frequency); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// AllWords streams every stored word into fn. Used to warm the in-memory
// dictionary from a previous run's frequencies.
func AllWords(db DBExecutor, fn func(word string, frequency int) error) error {
	rows, err := db.Query(`SELECT word, frequency FROM words`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var word string
		var freq int
		if err := rows.Scan(&word, &freq); err != nil {
			return err
		}
		if err := fn(word, freq); err != nil {
			return err
		}
	}
	return rows.Err()
}

// CreateOrGetSource returns existing source id or inserts a new source and returns its id.
func CreateOrGetSource(db DBExecutor, sourceType, title, url, meta string) (int64, error) {
	trimmedSourceType := strings.TrimSpace(sourceType)
	if trimmedSourceType == "" {
		return 0, fmt.Errorf("sourceType must be non-empty")
	}

	const maxRetries = 3

	var id int64
	for attempt := 0; attempt < maxRetries; attempt++ {
		// First, try to find an existing source.
		err := db.QueryRow(
			`SELECT id FROM sources WHERE url = ? AND title = ?`,
			url, title,
		).Scan(&id)
		if err == nil {
			return id, nil
		}
		if err != sql.ErrNoRows {
			return 0, err
		}

		// No existing row; try to insert one.
		res, err := db.Exec(
			`INSERT INTO sources (source_type, title, url, meta) VALUES (?, ?, ?, ?)`,
			trimmedSourceType, title, url, meta,
		)
		if err != nil {
			// If another concurrent transaction inserted the same source, retry the SELECT.
			if isUniqueConstraintErr(err) {
				continue
			}
			return 0, err
		}

		// Insert succeeded; return the id directly
		return res.LastInsertId()
	}

	return 0, fmt.Errorf("could not create or get source after %d retries", maxRetries)
}

// UpdateSourceVerseCount records how many verses an ingest run processed.
func UpdateSourceVerseCount(db DBExecutor, sourceID int64, count int) error {
	if sourceID <= 0 {
		return fmt.Errorf("sourceID must be positive")
	}
	_, err := db.Exec(`UPDATE sources SET verse_count = ? WHERE id = ?`, count, sourceID)
	return err
}
