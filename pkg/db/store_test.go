package db

import "testing"

func TestUpsertWordCount(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	id1, err := UpsertWordCount(conn, "राम", 2)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id2, err := UpsertWordCount(conn, "राम", 3)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("expected same id, got %d and %d", id1, id2)
	}

	freq, err := WordCount(conn, "राम")
	if err != nil {
		t.Fatalf("word count: %v", err)
	}
	if freq != 5 {
		t.Fatalf("frequency = %d, want 5", freq)
	}
}

func TestUpsertWordCountValidation(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	if _, err := UpsertWordCount(conn, "  ", 1); err == nil {
		t.Fatal("blank word accepted")
	}
	if _, err := UpsertWordCount(conn, "राम", -1); err == nil {
		t.Fatal("negative delta accepted")
	}
}

func TestWordCountUnknown(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	freq, err := WordCount(conn, "अज्ञात")
	if err != nil {
		t.Fatalf("word count: %v", err)
	}
	if freq != 0 {
		t.Fatalf("unknown word frequency = %d, want 0", freq)
	}
}

func TestTopWords(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	for word, freq := range map[string]int{"राम": 5, "सीता": 9, "वन": 1} {
		if _, err := UpsertWordCount(conn, word, freq); err != nil {
			t.Fatalf("upsert %s: %v", word, err)
		}
	}

	top, err := TopWords(conn, 2)
	if err != nil {
		t.Fatalf("top words: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d words, want 2", len(top))
	}
	if top[0].Word != "सीता" || top[0].Frequency != 9 {
		t.Fatalf("top word %+v, want सीता (9)", top[0])
	}
	if top[1].Word != "राम" {
		t.Fatalf("second word %+v, want राम", top[1])
	}
}

func TestAllWords(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	for word, freq := range map[string]int{"राम": 5, "वन": 1} {
		if _, err := UpsertWordCount(conn, word, freq); err != nil {
			t.Fatalf("upsert %s: %v", word, err)
		}
	}

	got := map[string]int{}
	err := AllWords(conn, func(word string, frequency int) error {
		got[word] = frequency
		return nil
	})
	if err != nil {
		t.Fatalf("all words: %v", err)
	}
	if len(got) != 2 || got["राम"] != 5 || got["वन"] != 1 {
		t.Fatalf("AllWords = %v", got)
	}
}

func TestCreateOrGetSource(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	id1, err := CreateOrGetSource(conn, "json_corpus", "बाल काण्ड", "file://ramayana.json", "")
	if err != nil {
		t.Fatalf("create source: %v", err)
	}
	id2, err := CreateOrGetSource(conn, "json_corpus", "बाल काण्ड", "file://ramayana.json", "")
	if err != nil {
		t.Fatalf("get source: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("expected same source id, got %d and %d", id1, id2)
	}

	if _, err := CreateOrGetSource(conn, "  ", "t", "u", ""); err == nil {
		t.Fatal("blank source type accepted")
	}
}

func TestCreateOrGetSourceConcurrency(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	const n = 8
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		go func() {
			id, err := CreateOrGetSource(conn, "web", "Title", "https://example.com/a", "")
			if err != nil {
				t.Errorf("create or get source: %v", err)
				ids <- 0
				return
			}
			ids <- id
		}()
	}
	var first int64
	for i := 0; i < n; i++ {
		id := <-ids
		if id == 0 {
			t.Fatal("error in goroutine")
		}
		if i == 0 {
			first = id
		}
		if id != first {
			t.Fatalf("expected same id, got %d and %d", first, id)
		}
	}
	var cnt int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM sources WHERE url = ?`, "https://example.com/a").Scan(&cnt); err != nil {
		t.Fatalf("count: %v", err)
	}
	if cnt != 1 {
		t.Fatalf("expected 1 source row, got %d", cnt)
	}
}

func TestUpdateSourceVerseCount(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	id, err := CreateOrGetSource(conn, "json_corpus", "t", "u", "")
	if err != nil {
		t.Fatalf("create source: %v", err)
	}
	if err := UpdateSourceVerseCount(conn, id, 42); err != nil {
		t.Fatalf("update verse count: %v", err)
	}
	var count int
	if err := conn.QueryRow(`SELECT verse_count FROM sources WHERE id = ?`, id).Scan(&count); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 42 {
		t.Fatalf("verse_count = %d, want 42", count)
	}

	if err := UpdateSourceVerseCount(conn, 0, 1); err == nil {
		t.Fatal("zero source id accepted")
	}
}
