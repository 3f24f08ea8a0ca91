// Package devanagari classifies Devanagari characters for sandhi analysis.
//
// A single logical vowel can surface three ways in Devanagari: inherent in a
// bare consonant (invisible), as an independent vowel letter (अ आ इ ...), or
// as a dependent vowel sign (matra) attached to a consonant (ा ि ...). Every
// rule in pkg/sandhi funnels its character tests through this package so the
// distinctions are made in exactly one place.
package devanagari

// Character constants used throughout the sandhi rules.
const (
	Virama       = '्' // ् : consonant carries no vowel
	Visarga      = 'ः' // ः
	Anusvara     = 'ं' // ं
	Chandrabindu = 'ँ' // ँ
	Avagraha     = 'ऽ' // ऽ : marks an elided initial a
	Danda        = '।' // । verse separator
	DoubleDanda  = '॥' // ॥
)

// vowelToMatra maps independent vowel letters to their dependent signs.
// अ has no dependent form; it is inherent in a bare consonant.
var vowelToMatra = map[rune]rune{
	'आ': 'ा',
	'इ': 'ि',
	'ई': 'ी',
	'उ': 'ु',
	'ऊ': 'ू',
	'ऋ': 'ृ',
	'ॠ': 'ॄ',
	'ए': 'े',
	'ऐ': 'ै',
	'ओ': 'ो',
	'औ': 'ौ',
}

var matraToVowel = func() map[rune]rune {
	m := make(map[rune]rune, len(vowelToMatra))
	for v, s := range vowelToMatra {
		m[s] = v
	}
	return m
}()

// IsConsonant reports whether r is a Devanagari consonant letter (क..ह plus
// the nukta extensions क़..य़).
func IsConsonant(r rune) bool {
	return (r >= 'क' && r <= 'ह') || (r >= 'क़' && r <= 'य़')
}

// IsIndependentVowel reports whether r is an independent vowel letter.
func IsIndependentVowel(r rune) bool {
	return (r >= 'ऄ' && r <= 'औ') || r == 'ॠ' || r == 'ॡ'
}

// IsMatra reports whether r is a dependent vowel sign.
func IsMatra(r rune) bool {
	return (r >= 'ा' && r <= 'ौ') || r == 'ॢ' || r == 'ॣ'
}

// IsVirama reports whether r is the virama (halant).
func IsVirama(r rune) bool { return r == Virama }

// IsVisarga reports whether r is the visarga sign.
func IsVisarga(r rune) bool { return r == Visarga }

// IsDevanagari reports whether r lies in the Devanagari or Devanagari
// Extended blocks.
func IsDevanagari(r rune) bool {
	return (r >= 0x0900 && r <= 0x097f) || (r >= 0xa8e0 && r <= 0xa8ff)
}

// MatraFor returns the dependent sign for an independent vowel letter.
// The second result is false when the vowel has no dependent form (अ) or
// r is not an independent vowel.
func MatraFor(r rune) (rune, bool) {
	m, ok := vowelToMatra[r]
	return m, ok
}

// VowelFor returns the independent vowel letter for a dependent sign.
func VowelFor(r rune) (rune, bool) {
	v, ok := matraToVowel[r]
	return v, ok
}

// EndsInBareConsonant reports whether the last rune of s is a consonant with
// its inherent vowel intact, i.e. not stopped by a virama and not carrying a
// matra or visarga (those would be the last rune instead).
func EndsInBareConsonant(s string) bool {
	r, ok := lastRune(s)
	return ok && IsConsonant(r)
}

// EndsInInherentA reports whether s ends in the inherent short a: the final
// rune must be something other than a virama, matra, visarga, anusvara or
// chandrabindu. This mirrors the "ends in a" test a sandhi rule keyed on अ
// performs: a bare consonant, or an explicit अ, both qualify.
func EndsInInherentA(s string) bool {
	r, ok := lastRune(s)
	if !ok {
		return false
	}
	if IsVirama(r) || IsMatra(r) || IsVisarga(r) || r == Anusvara || r == Chandrabindu {
		return false
	}
	return true
}

func lastRune(s string) (rune, bool) {
	var r rune
	var ok bool
	for _, c := range s {
		r, ok = c, true
	}
	return r, ok
}

// LastRune returns the final rune of s, with ok=false for the empty string.
func LastRune(s string) (rune, bool) { return lastRune(s) }
