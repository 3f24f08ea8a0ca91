// Package sandhi implements the phonetic-junction rules of classical
// Sanskrit and a candidate engine that enumerates and ranks the possible
// pre-sandhi splits of a combined word form.
package sandhi

import (
	"strings"

	"github.com/samskrita/sandhi/pkg/devanagari"
)

// Category partitions the rule catalog.
type Category int

const (
	CategoryVowel Category = iota
	CategoryConsonant
	CategoryVisarga
	CategorySpecial
)

func (c Category) String() string {
	switch c {
	case CategoryVowel:
		return "svara"
	case CategoryConsonant:
		return "vyanjana"
	case CategoryVisarga:
		return "visarga"
	case CategorySpecial:
		return "vishista"
	}
	return "unknown"
}

// Example is a literal (left, right, combined) triple. Every example must
// round-trip through ForwardApply byte-for-byte; NewCatalog enforces this.
type Example struct {
	Left     string
	Right    string
	Combined string
}

// Rule is one bidirectional phonetic transformation at a word boundary.
//
// LeftPattern and RightPattern are phonetic patterns, not literal substrings:
// a left pattern of अ stands for the inherent or explicit short a, which may
// be invisible (bare consonant), an independent letter, or absent entirely,
// and matching must distinguish those renderings.
type Rule struct {
	ID           string
	Category     Category
	LeftPattern  string
	RightPattern string
	Result       string
	Priority     int // 1..10, higher = more common
	VedicOnly    bool
	Sutra        string // Panini sutra citation, provenance only
	Description  string
	Examples     []Example
}

// Split is one reconstructed (left, right) pair produced by ReverseApply.
type Split struct {
	Left  string
	Right string
}

// Applies reports whether the rule's boundary condition holds between the
// end of left and the start of right.
func (r *Rule) Applies(left, right string) bool {
	// The right side is close to literal prefix matching, except that a
	// pattern ending in a virama (e.g. स्) also matches the bare consonant
	// carrying any vowel.
	if !strings.HasPrefix(right, r.RightPattern) {
		relaxed := false
		if strings.HasSuffix(r.RightPattern, string(devanagari.Virama)) {
			bare := strings.TrimSuffix(r.RightPattern, string(devanagari.Virama))
			relaxed = strings.HasPrefix(right, bare)
		}
		if !relaxed {
			return false
		}
	}

	switch r.LeftPattern {
	case "अ":
		// Inherent or explicit short a: the final character must not be a
		// virama, matra, visarga or nasal sign.
		return left != "" && devanagari.EndsInInherentA(left)

	case "अः":
		if strings.HasSuffix(left, "अः") {
			return true
		}
		// Consonant + visarga: the rune before the visarga must carry the
		// inherent a, so it cannot be a virama, matra, nasal sign or an
		// independent vowel.
		if !strings.HasSuffix(left, "ः") {
			return false
		}
		runes := []rune(left)
		if len(runes) < 2 {
			return false
		}
		prev := runes[len(runes)-2]
		if devanagari.IsVirama(prev) || devanagari.IsMatra(prev) ||
			prev == devanagari.Anusvara || prev == devanagari.Chandrabindu ||
			devanagari.IsIndependentVowel(prev) {
			return false
		}
		return true

	case "आ", "इ", "ई", "उ", "ऊ", "ऋ":
		// Matches either the dependent sign or the independent letter.
		m, _ := devanagari.MatraFor([]rune(r.LeftPattern)[0])
		return strings.HasSuffix(left, string(m)) || strings.HasSuffix(left, r.LeftPattern)

	case "इः":
		return strings.HasSuffix(left, "िः") || strings.HasSuffix(left, "इः")

	case "उः":
		return strings.HasSuffix(left, "ुः") || strings.HasSuffix(left, "उः")
	}

	// Consonant and special patterns are literal suffixes.
	return strings.HasSuffix(left, r.LeftPattern)
}

// ForwardApply combines left and right across this rule's boundary.
// ok is false when the rule does not apply; that is a normal non-match,
// not a failure.
func (r *Rule) ForwardApply(left, right string) (string, bool) {
	if !r.Applies(left, right) {
		return "", false
	}

	// Reduce left to its bare consonant base (consonant + virama form).
	base := left
	switch {
	case r.LeftPattern == "अ":
		// Inherent a: stopping the final consonant exposes the base.
		base = left + string(devanagari.Virama)

	case r.LeftPattern == "अः":
		if strings.HasSuffix(left, "अः") {
			base = trimLastRunes(left, 2) + string(devanagari.Virama)
		} else {
			// Consonant + visarga: drop the visarga, stop the consonant.
			base = trimLastRunes(left, 1) + string(devanagari.Virama)
		}

	case isVowelPattern(r.LeftPattern):
		if strings.HasSuffix(left, r.LeftPattern) {
			// Explicit independent vowel.
			base = strings.TrimSuffix(left, r.LeftPattern)
			if base != "" && !strings.HasSuffix(base, string(devanagari.Virama)) {
				base += string(devanagari.Virama)
			}
		} else {
			// Dependent sign: strip it and stop the consonant.
			base = trimLastRunes(left, 1) + string(devanagari.Virama)
		}

	default:
		// Consonant patterns strip their own length.
		base = trimLastRunes(left, runeLen(r.LeftPattern))
	}

	rest := trimFirstRunes(right, runeLen(r.RightPattern))

	// Render the result: a leading vowel collapses into a matra on a
	// non-empty consonant base; a leading अ disappears into the inherent
	// vowel of the base consonant.
	result := r.Result
	if first, ok := firstRune(result); ok {
		if m, hasMatra := devanagari.MatraFor(first); hasMatra {
			if base != "" {
				result = string(m) + trimFirstRunes(result, 1)
				base = strings.TrimSuffix(base, string(devanagari.Virama))
			}
		} else if first == 'अ' {
			if strings.HasSuffix(base, string(devanagari.Virama)) {
				base = strings.TrimSuffix(base, string(devanagari.Virama))
				result = trimFirstRunes(result, 1)
			}
		}
	}

	return base + result + rest, true
}

// ReverseApply finds every occurrence of the rule's result (independent or
// matra rendering) in combined and reconstructs the (left, right) pair for
// each. All occurrences are reported, not just the first; pairs with an
// empty side are skipped as malformed.
func (r *Rule) ReverseApply(combined string) []Split {
	patterns := searchPatterns(r.Result)
	var splits []Split
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		offset := 0
		for {
			i := strings.Index(combined[offset:], pattern)
			if i < 0 {
				break
			}
			at := offset + i
			prefix := combined[:at]
			suffix := combined[at+len(pattern):]

			left := r.reconstructLeft(prefix)
			right := r.RightPattern + suffix
			if left != "" && right != "" {
				splits = append(splits, Split{Left: left, Right: right})
			}

			// Advance one rune so overlapping occurrences are still found.
			_, size := firstRuneSize(combined[at:])
			offset = at + size
		}
	}
	return splits
}

// searchPatterns returns the literal forms a result can take in a combined
// word: the result itself, plus the rendering with its leading vowel
// replaced by the dependent sign (a result attached to a consonant base
// surfaces as a matra, e.g. ओऽ appears as ोऽ in रामोऽत्र).
func searchPatterns(result string) []string {
	patterns := []string{result}
	if first, ok := firstRune(result); ok {
		if m, hasMatra := devanagari.MatraFor(first); hasMatra {
			patterns = append(patterns, string(m)+trimFirstRunes(result, 1))
		}
	}
	return patterns
}

// reconstructLeft re-attaches the rule's left pattern to the prefix before
// a result occurrence, choosing the dependent or independent rendering by
// what the prefix ends in.
func (r *Rule) reconstructLeft(prefix string) string {
	switch r.LeftPattern {
	case "अ":
		// The inherent a is already carried by the prefix's final consonant.
		return prefix
	case "अः":
		if devanagari.EndsInBareConsonant(prefix) {
			return prefix + "ः"
		}
		return prefix + "अः"
	case "इः":
		if devanagari.EndsInBareConsonant(prefix) {
			return prefix + "िः"
		}
		return prefix + r.LeftPattern
	case "उः":
		if devanagari.EndsInBareConsonant(prefix) {
			return prefix + "ुः"
		}
		return prefix + r.LeftPattern
	}
	if isVowelPattern(r.LeftPattern) {
		if m, ok := devanagari.MatraFor([]rune(r.LeftPattern)[0]); ok {
			if devanagari.EndsInBareConsonant(prefix) {
				return prefix + string(m)
			}
		}
		return prefix + r.LeftPattern
	}
	return prefix + r.LeftPattern
}

func isVowelPattern(p string) bool {
	switch p {
	case "आ", "इ", "ई", "उ", "ऊ", "ऋ", "ए", "ऐ", "ओ", "औ":
		return true
	}
	return false
}

// ---- rune slicing helpers ----

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func trimLastRunes(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return string(runes[:len(runes)-n])
}

func trimFirstRunes(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return string(runes[n:])
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func firstRuneSize(s string) (rune, int) {
	for i, r := range s {
		_ = i
		return r, len(string(r))
	}
	return 0, 1
}
