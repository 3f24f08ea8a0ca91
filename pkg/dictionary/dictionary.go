// Package dictionary holds the Sanskrit vocabulary: word membership,
// corpus frequencies, and prefix/suffix indexes used by compound analysis.
package dictionary

import (
	"strings"
	"sync"

	"github.com/derekparker/trie"
)

// commonWords is the seed vocabulary available before any corpus is
// loaded: high-frequency nouns, pronouns, roots, numerals and particles.
// Seeded words are present with frequency zero until a corpus attests them.
var commonWords = []string{
	"राम", "सीता", "लक्ष्मण", "हनुमान्",
	"गज", "इन्द्र", "गजेन्द्र",
	"धर्म", "अर्थ", "काम", "मोक्ष",
	"अहम्", "त्वम्", "सः", "सा", "तत्",
	"गच्छ", "पठ्", "लिख्", "कृ",
	"सुन्दर", "महान्",
	"एक", "द्वि", "त्रि", "चतुर्",
	"च", "वा", "अपि", "एव",
}

// Dictionary is a concurrent-safe vocabulary store. Membership and
// frequency are tracked per word; two tries index the words by prefix
// and by suffix (the suffix trie stores rune-reversed keys).
type Dictionary struct {
	mu       sync.RWMutex
	entries  map[string]int
	prefixes *trie.Trie
	suffixes *trie.Trie
}

// New returns a dictionary seeded with the common-word vocabulary.
func New() *Dictionary {
	d := NewEmpty()
	for _, w := range commonWords {
		d.add(w, 0)
	}
	return d
}

// NewEmpty returns a dictionary with no seed vocabulary.
func NewEmpty() *Dictionary {
	return &Dictionary{
		entries:  make(map[string]int),
		prefixes: trie.New(),
		suffixes: trie.New(),
	}
}

// Contains reports whether word is in the vocabulary.
func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.entries[word]
	return ok
}

// Frequency returns the observed corpus frequency of word, zero when the
// word is unknown or only seeded.
func (d *Dictionary) Frequency(word string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.entries[word]
}

// Size returns the number of distinct words.
func (d *Dictionary) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Add records one occurrence of word. Whitespace is trimmed; empty words
// are ignored.
func (d *Dictionary) Add(word string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.add(word, 1)
}

// AddN records n occurrences of word, used when restoring persisted
// frequencies.
func (d *Dictionary) AddN(word string, n int) {
	if n < 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.add(word, n)
}

// AddAll records one occurrence of each word.
func (d *Dictionary) AddAll(words []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, w := range words {
		d.add(w, 1)
	}
}

// add requires d.mu held for writing.
func (d *Dictionary) add(word string, n int) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	if _, known := d.entries[word]; !known {
		d.prefixes.Add(word, nil)
		d.suffixes.Add(reverseRunes(word), nil)
	}
	d.entries[word] += n
}

// WordsWithPrefix returns every word starting with prefix.
func (d *Dictionary) WordsWithPrefix(prefix string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.prefixes.PrefixSearch(prefix)
}

// WordsWithSuffix returns every word ending with suffix.
func (d *Dictionary) WordsWithSuffix(suffix string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	keys := d.suffixes.PrefixSearch(reverseRunes(suffix))
	words := make([]string, len(keys))
	for i, k := range keys {
		words[i] = reverseRunes(k)
	}
	return words
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
