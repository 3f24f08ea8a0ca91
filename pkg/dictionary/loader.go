package dictionary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// punctuation stripped from corpus text before word extraction. Dandas are
// verse separators, not word characters.
var punctuation = strings.NewReplacer("।", " ", "॥", " ", ".", " ", ",", " ", "\n", " ")

// compoundSeedThreshold is the rune length above which a corpus word is
// likely a compound; its binary splits are seeded as candidate components.
const compoundSeedThreshold = 6

// LoadJSON loads vocabulary from a JSON corpus file such as a digitized
// Ramayana or Veda dataset. Every string under a field named textField is
// taken as Sanskrit text, at any nesting depth. With extractWords set, the
// text is split into words (and likely compounds seed their binary splits);
// otherwise each text value is added verbatim.
func (d *Dictionary) LoadJSON(path, textField string, extractWords bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("dictionary: read corpus: %w", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("dictionary: parse corpus %s: %w", path, err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.walkJSON(data, textField, extractWords)
	return nil
}

// walkJSON requires d.mu held for writing.
func (d *Dictionary) walkJSON(data any, textField string, extractWords bool) {
	switch v := data.(type) {
	case map[string]any:
		if text, ok := v[textField].(string); ok {
			if extractWords {
				d.extractWords(text)
			} else {
				d.add(text, 1)
			}
		}
		for _, child := range v {
			switch child.(type) {
			case map[string]any, []any:
				d.walkJSON(child, textField, extractWords)
			}
		}
	case []any:
		for _, item := range v {
			switch item.(type) {
			case map[string]any, []any:
				d.walkJSON(item, textField, extractWords)
			}
		}
	}
}

// extractWords splits a passage into words. Words longer than the compound
// threshold also seed their binary splits, so compound components become
// known before any formal decomposition. Requires d.mu held for writing.
func (d *Dictionary) extractWords(text string) {
	text = punctuation.Replace(text)
	for _, word := range strings.Fields(text) {
		d.add(word, 1)
		runes := []rune(word)
		if len(runes) > compoundSeedThreshold {
			for i := 2; i < len(runes)-1; i++ {
				d.add(string(runes[:i]), 1)
				d.add(string(runes[i:]), 1)
			}
		}
	}
}

// LoadWordList loads a plain word list, one word per line. Blank lines and
// lines starting with # are skipped.
func (d *Dictionary) LoadWordList(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dictionary: open word list: %w", err)
	}
	defer f.Close()

	d.mu.Lock()
	defer d.mu.Unlock()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.add(word, 1)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("dictionary: read word list: %w", err)
	}
	return nil
}
