package devanagari

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// vedicAccents are the Swara tone marks preserved when normalizing
// manuscript text.
var vedicAccents = map[rune]bool{
	'॑': true, // udatta
	'॒': true, // anudatta
	'᳐': true, // karshana
	'᳑': true, // shara
	'᳒': true, // prenkha
	'᳓': true, // nihshvasa
}

// Normalizer canonicalizes Devanagari text before tokenization: NFC
// composition, whitespace standardization, and removal of characters
// outside the Devanagari blocks.
type Normalizer struct {
	// PreserveVedicAccents keeps Swara tone marks outside the core
	// Devanagari block instead of filtering them.
	PreserveVedicAccents bool
}

// NewNormalizer returns a Normalizer that preserves Vedic accents.
func NewNormalizer() *Normalizer {
	return &Normalizer{PreserveVedicAccents: true}
}

// Normalize returns text in canonical form: NFC-composed, runs of
// whitespace collapsed to single spaces, leading/trailing whitespace
// trimmed, and non-Devanagari characters dropped.
func (n *Normalizer) Normalize(text string) string {
	text = norm.NFC.String(text)
	text = standardizeWhitespace(text)
	return n.filter(text)
}

func standardizeWhitespace(text string) string {
	fields := strings.Fields(text)
	return strings.Join(fields, " ")
}

func (n *Normalizer) filter(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == ' ':
			b.WriteRune(r)
		case n.PreserveVedicAccents && vedicAccents[r]:
			b.WriteRune(r)
		case IsDevanagari(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
