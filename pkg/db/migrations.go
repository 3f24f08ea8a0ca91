package db

// migrationsSQL is the schema, applied idempotently on startup.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS words (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL UNIQUE,
	frequency INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_words_frequency ON words(frequency DESC);

CREATE TABLE IF NOT EXISTS sources (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_type TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL DEFAULT '',
	meta TEXT NOT NULL DEFAULT '',
	verse_count INTEGER NOT NULL DEFAULT 0,
	added_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(url, title)
);
`
