package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	corpus := `{
		"title": "test corpus",
		"verses": [
			{"content": "राम वनं गच्छति।", "number": 1},
			{"content": "राम राम", "number": 2},
			{"meta": {"content": "सीता"}}
		]
	}`
	path := writeFile(t, "corpus.json", corpus)

	d := NewEmpty()
	if err := d.LoadJSON(path, "content", true); err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	if f := d.Frequency("राम"); f != 3 {
		t.Fatalf("राम frequency = %d, want 3", f)
	}
	if !d.Contains("वनं") || !d.Contains("गच्छति") {
		t.Fatal("verse words missing")
	}
	// Nested objects are walked too.
	if !d.Contains("सीता") {
		t.Fatal("nested text field not loaded")
	}
	// The danda is punctuation, never a word.
	if d.Contains("।") || d.Contains("गच्छति।") {
		t.Fatal("danda leaked into the vocabulary")
	}
}

func TestLoadJSONSeedsCompoundSplits(t *testing.T) {
	path := writeFile(t, "corpus.json", `{"content": "गजेन्द्रमोक्ष"}`)

	d := NewEmpty()
	if err := d.LoadJSON(path, "content", true); err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	// Long words seed their binary splits as candidate components.
	if !d.Contains("गजेन्द्रमोक्ष") {
		t.Fatal("compound itself missing")
	}
	if d.Size() <= 1 {
		t.Fatal("no split candidates seeded for a long compound")
	}
}

func TestLoadJSONVerbatim(t *testing.T) {
	path := writeFile(t, "corpus.json", `{"content": "राम वनं"}`)

	d := NewEmpty()
	if err := d.LoadJSON(path, "content", false); err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if !d.Contains("राम वनं") {
		t.Fatal("verbatim text not stored as a single entry")
	}
	if d.Contains("राम") {
		t.Fatal("verbatim mode must not extract words")
	}
}

func TestLoadJSONErrors(t *testing.T) {
	d := NewEmpty()
	if err := d.LoadJSON(filepath.Join(t.TempDir(), "missing.json"), "content", true); err == nil {
		t.Fatal("missing file accepted")
	}
	path := writeFile(t, "bad.json", "{not json")
	if err := d.LoadJSON(path, "content", true); err == nil {
		t.Fatal("malformed JSON accepted")
	}
}

func TestLoadWordList(t *testing.T) {
	path := writeFile(t, "words.txt", "राम\n\n# comment\nसीता\n  वन  \n")

	d := NewEmpty()
	if err := d.LoadWordList(path); err != nil {
		t.Fatalf("LoadWordList: %v", err)
	}
	for _, w := range []string{"राम", "सीता", "वन"} {
		if !d.Contains(w) {
			t.Fatalf("word %q missing", w)
		}
	}
	if d.Size() != 3 {
		t.Fatalf("size = %d, want 3", d.Size())
	}
}
