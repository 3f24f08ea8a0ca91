// Package grammar provides suffix-based morphology oracles for Sanskrit:
// vibhakti (case ending) and pratyaya (derivational suffix) analysis. Both
// are heuristic surface analyzers over Devanagari endings; they supply
// plausibility evidence to the sandhi engine, not full parses.
package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// Case is one of the eight Sanskrit vibhaktis.
type Case int

const (
	Nominative Case = iota
	Accusative
	Instrumental
	Dative
	Ablative
	Genitive
	Locative
	Vocative
)

func (c Case) String() string {
	switch c {
	case Nominative:
		return "nominative"
	case Accusative:
		return "accusative"
	case Instrumental:
		return "instrumental"
	case Dative:
		return "dative"
	case Ablative:
		return "ablative"
	case Genitive:
		return "genitive"
	case Locative:
		return "locative"
	case Vocative:
		return "vocative"
	}
	return "unknown"
}

// Number is the grammatical number.
type Number int

const (
	Singular Number = iota
	Dual
	Plural
)

func (n Number) String() string {
	switch n {
	case Singular:
		return "singular"
	case Dual:
		return "dual"
	case Plural:
		return "plural"
	}
	return "unknown"
}

// Gender is the grammatical gender. GenderAny marks endings shared by all
// genders (the simplified consonant-stem set).
type Gender int

const (
	GenderAny Gender = iota
	Masculine
	Feminine
	Neuter
)

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	case Neuter:
		return "neuter"
	}
	return "any"
}

// StemType classifies the nominal stem a declension belongs to.
type StemType int

const (
	StemA StemType = iota
	StemAA
	StemI
	StemII
	StemU
	StemUU
	StemR
	StemConsonant
)

func (s StemType) String() string {
	switch s {
	case StemA:
		return "a-stem"
	case StemAA:
		return "aa-stem"
	case StemI:
		return "i-stem"
	case StemII:
		return "ii-stem"
	case StemU:
		return "u-stem"
	case StemUU:
		return "uu-stem"
	case StemR:
		return "r-stem"
	case StemConsonant:
		return "consonant-stem"
	}
	return "unknown"
}

// stemVowel is the independent vowel restored when a stem is extracted.
// Consonant stems restore nothing.
func (s StemType) stemVowel() string {
	switch s {
	case StemA:
		return "अ"
	case StemAA:
		return "आ"
	case StemI:
		return "इ"
	case StemII:
		return "ई"
	case StemU:
		return "उ"
	case StemUU:
		return "ऊ"
	case StemR:
		return "ऋ"
	}
	return ""
}

// VibhaktiPattern is one case-ending suffix with its grammatical reading.
type VibhaktiPattern struct {
	Ending   string
	Case     Case
	Number   Number
	Gender   Gender
	Stem     StemType
	Priority int
}

// VibhaktiAnalysis is one possible reading of an inflected word.
type VibhaktiAnalysis struct {
	Stem       string
	Ending     string
	Case       Case
	Number     Number
	Gender     Gender
	StemType   StemType
	Confidence float64
}

// Tag renders the analysis as a compact label, e.g. "nominative_singular".
func (a VibhaktiAnalysis) Tag() string {
	return fmt.Sprintf("%s_%s", a.Case, a.Number)
}

// VibhaktiAnalyzer matches case endings against the declension tables.
// It is immutable after construction and safe for concurrent use.
type VibhaktiAnalyzer struct {
	patterns []VibhaktiPattern
}

// NewVibhaktiAnalyzer builds the analyzer over the full pattern set,
// ordered by priority descending (stable, so table order breaks ties).
func NewVibhaktiAnalyzer() *VibhaktiAnalyzer {
	patterns := vibhaktiPatterns()
	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Priority > patterns[j].Priority
	})
	return &VibhaktiAnalyzer{patterns: patterns}
}

// Analyze returns every plausible case reading of word, best first. An
// empty result means no ending matched; that is a normal outcome for
// indeclinables and foreign material.
func (v *VibhaktiAnalyzer) Analyze(word string) []VibhaktiAnalysis {
	var results []VibhaktiAnalysis
	for _, p := range v.patterns {
		if !strings.HasSuffix(word, p.Ending) {
			continue
		}
		stem := extractStem(word, p)
		if stem == "" {
			continue
		}
		results = append(results, VibhaktiAnalysis{
			Stem:       stem,
			Ending:     p.Ending,
			Case:       p.Case,
			Number:     p.Number,
			Gender:     p.Gender,
			StemType:   p.Stem,
			Confidence: float64(p.Priority) / 10.0,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results
}

// Tag returns the label of the best analysis, with ok=false when no
// ending matches.
func (v *VibhaktiAnalyzer) Tag(word string) (string, bool) {
	analyses := v.Analyze(word)
	if len(analyses) == 0 {
		return "", false
	}
	return analyses[0].Tag(), true
}

// extractStem strips the ending and restores the stem vowel. A zero
// ending (bare vocative) leaves the word as its own stem.
func extractStem(word string, p VibhaktiPattern) string {
	if p.Ending == "" {
		return word
	}
	stem := strings.TrimSuffix(word, p.Ending)
	return stem + p.Stem.stemVowel()
}

// vibhaktiPatterns lists the declension tables: the four major vowel-stem
// paradigms, the r-stem, and a simplified shared consonant-stem set.
func vibhaktiPatterns() []VibhaktiPattern {
	var patterns []VibhaktiPattern

	// A-stem masculine (राम)
	patterns = append(patterns,
		VibhaktiPattern{"ः", Nominative, Singular, Masculine, StemA, 10},
		VibhaktiPattern{"म्", Accusative, Singular, Masculine, StemA, 10},
		VibhaktiPattern{"ेन", Instrumental, Singular, Masculine, StemA, 10},
		VibhaktiPattern{"ाय", Dative, Singular, Masculine, StemA, 10},
		VibhaktiPattern{"ात्", Ablative, Singular, Masculine, StemA, 10},
		VibhaktiPattern{"स्य", Genitive, Singular, Masculine, StemA, 10},
		VibhaktiPattern{"े", Locative, Singular, Masculine, StemA, 10},
		VibhaktiPattern{"", Vocative, Singular, Masculine, StemA, 9},
		VibhaktiPattern{"ौ", Nominative, Dual, Masculine, StemA, 9},
		VibhaktiPattern{"ौ", Accusative, Dual, Masculine, StemA, 9},
		VibhaktiPattern{"ाभ्याम्", Instrumental, Dual, Masculine, StemA, 10},
		VibhaktiPattern{"ाभ्याम्", Dative, Dual, Masculine, StemA, 10},
		VibhaktiPattern{"ाभ्याम्", Ablative, Dual, Masculine, StemA, 10},
		VibhaktiPattern{"योः", Genitive, Dual, Masculine, StemA, 9},
		VibhaktiPattern{"योः", Locative, Dual, Masculine, StemA, 9},
		VibhaktiPattern{"ौ", Vocative, Dual, Masculine, StemA, 9},
		VibhaktiPattern{"ाः", Nominative, Plural, Masculine, StemA, 9},
		VibhaktiPattern{"ान्", Accusative, Plural, Masculine, StemA, 9},
		VibhaktiPattern{"ैः", Instrumental, Plural, Masculine, StemA, 9},
		VibhaktiPattern{"ेभ्यः", Dative, Plural, Masculine, StemA, 10},
		VibhaktiPattern{"ेभ्यः", Ablative, Plural, Masculine, StemA, 10},
		VibhaktiPattern{"ानाम्", Genitive, Plural, Masculine, StemA, 10},
		VibhaktiPattern{"ेषु", Locative, Plural, Masculine, StemA, 9},
		VibhaktiPattern{"ाः", Vocative, Plural, Masculine, StemA, 9},
	)

	// Ā-stem feminine (रमा)
	patterns = append(patterns,
		VibhaktiPattern{"ा", Nominative, Singular, Feminine, StemAA, 10},
		VibhaktiPattern{"ाम्", Accusative, Singular, Feminine, StemAA, 10},
		VibhaktiPattern{"या", Instrumental, Singular, Feminine, StemAA, 10},
		VibhaktiPattern{"ायै", Dative, Singular, Feminine, StemAA, 10},
		VibhaktiPattern{"ायाः", Ablative, Singular, Feminine, StemAA, 10},
		VibhaktiPattern{"ायाः", Genitive, Singular, Feminine, StemAA, 10},
		VibhaktiPattern{"ायाम्", Locative, Singular, Feminine, StemAA, 10},
		VibhaktiPattern{"े", Vocative, Singular, Feminine, StemAA, 9},
		VibhaktiPattern{"े", Nominative, Dual, Feminine, StemAA, 9},
		VibhaktiPattern{"े", Accusative, Dual, Feminine, StemAA, 9},
		VibhaktiPattern{"ाभ्याम्", Instrumental, Dual, Feminine, StemAA, 10},
		VibhaktiPattern{"ाभ्याम्", Dative, Dual, Feminine, StemAA, 10},
		VibhaktiPattern{"ाभ्याम्", Ablative, Dual, Feminine, StemAA, 10},
		VibhaktiPattern{"योः", Genitive, Dual, Feminine, StemAA, 9},
		VibhaktiPattern{"योः", Locative, Dual, Feminine, StemAA, 9},
		VibhaktiPattern{"े", Vocative, Dual, Feminine, StemAA, 9},
		VibhaktiPattern{"ाः", Nominative, Plural, Feminine, StemAA, 9},
		VibhaktiPattern{"ाः", Accusative, Plural, Feminine, StemAA, 9},
		VibhaktiPattern{"ाभिः", Instrumental, Plural, Feminine, StemAA, 10},
		VibhaktiPattern{"ाभ्यः", Dative, Plural, Feminine, StemAA, 10},
		VibhaktiPattern{"ाभ्यः", Ablative, Plural, Feminine, StemAA, 10},
		VibhaktiPattern{"ानाम्", Genitive, Plural, Feminine, StemAA, 10},
		VibhaktiPattern{"ासु", Locative, Plural, Feminine, StemAA, 9},
		VibhaktiPattern{"ाः", Vocative, Plural, Feminine, StemAA, 9},
	)

	// A-stem neuter (फल)
	patterns = append(patterns,
		VibhaktiPattern{"म्", Nominative, Singular, Neuter, StemA, 10},
		VibhaktiPattern{"म्", Accusative, Singular, Neuter, StemA, 10},
		VibhaktiPattern{"ेन", Instrumental, Singular, Neuter, StemA, 10},
		VibhaktiPattern{"ाय", Dative, Singular, Neuter, StemA, 10},
		VibhaktiPattern{"ात्", Ablative, Singular, Neuter, StemA, 10},
		VibhaktiPattern{"स्य", Genitive, Singular, Neuter, StemA, 10},
		VibhaktiPattern{"े", Locative, Singular, Neuter, StemA, 10},
		VibhaktiPattern{"", Vocative, Singular, Neuter, StemA, 9},
		VibhaktiPattern{"े", Nominative, Dual, Neuter, StemA, 9},
		VibhaktiPattern{"े", Accusative, Dual, Neuter, StemA, 9},
		VibhaktiPattern{"ाभ्याम्", Instrumental, Dual, Neuter, StemA, 10},
		VibhaktiPattern{"ाभ्याम्", Dative, Dual, Neuter, StemA, 10},
		VibhaktiPattern{"ाभ्याम्", Ablative, Dual, Neuter, StemA, 10},
		VibhaktiPattern{"योः", Genitive, Dual, Neuter, StemA, 9},
		VibhaktiPattern{"योः", Locative, Dual, Neuter, StemA, 9},
		VibhaktiPattern{"े", Vocative, Dual, Neuter, StemA, 9},
		VibhaktiPattern{"ानि", Nominative, Plural, Neuter, StemA, 10},
		VibhaktiPattern{"ानि", Accusative, Plural, Neuter, StemA, 10},
		VibhaktiPattern{"ैः", Instrumental, Plural, Neuter, StemA, 9},
		VibhaktiPattern{"ेभ्यः", Dative, Plural, Neuter, StemA, 10},
		VibhaktiPattern{"ेभ्यः", Ablative, Plural, Neuter, StemA, 10},
		VibhaktiPattern{"ानाम्", Genitive, Plural, Neuter, StemA, 10},
		VibhaktiPattern{"ेषु", Locative, Plural, Neuter, StemA, 9},
		VibhaktiPattern{"ानि", Vocative, Plural, Neuter, StemA, 10},
	)

	// I-stem masculine (कवि)
	patterns = append(patterns,
		VibhaktiPattern{"िः", Nominative, Singular, Masculine, StemI, 10},
		VibhaktiPattern{"िम्", Accusative, Singular, Masculine, StemI, 10},
		VibhaktiPattern{"िना", Instrumental, Singular, Masculine, StemI, 10},
		VibhaktiPattern{"ये", Dative, Singular, Masculine, StemI, 9},
		VibhaktiPattern{"ेः", Ablative, Singular, Masculine, StemI, 9},
		VibhaktiPattern{"ेः", Genitive, Singular, Masculine, StemI, 9},
		VibhaktiPattern{"ौ", Locative, Singular, Masculine, StemI, 9},
		VibhaktiPattern{"े", Vocative, Singular, Masculine, StemI, 9},
		VibhaktiPattern{"यः", Nominative, Plural, Masculine, StemI, 9},
		VibhaktiPattern{"ीन्", Accusative, Plural, Masculine, StemI, 9},
		VibhaktiPattern{"िभिः", Instrumental, Plural, Masculine, StemI, 10},
		VibhaktiPattern{"िभ्यः", Dative, Plural, Masculine, StemI, 10},
		VibhaktiPattern{"िभ्यः", Ablative, Plural, Masculine, StemI, 10},
		VibhaktiPattern{"ीनाम्", Genitive, Plural, Masculine, StemI, 10},
		VibhaktiPattern{"िषु", Locative, Plural, Masculine, StemI, 9},
	)

	// Ī-stem feminine (नदी)
	patterns = append(patterns,
		VibhaktiPattern{"ी", Nominative, Singular, Feminine, StemII, 10},
		VibhaktiPattern{"ीम्", Accusative, Singular, Feminine, StemII, 10},
		VibhaktiPattern{"या", Instrumental, Singular, Feminine, StemII, 10},
		VibhaktiPattern{"यै", Dative, Singular, Feminine, StemII, 9},
		VibhaktiPattern{"याः", Ablative, Singular, Feminine, StemII, 9},
		VibhaktiPattern{"याः", Genitive, Singular, Feminine, StemII, 9},
		VibhaktiPattern{"याम्", Locative, Singular, Feminine, StemII, 10},
		VibhaktiPattern{"ि", Vocative, Singular, Feminine, StemII, 9},
		VibhaktiPattern{"यः", Nominative, Plural, Feminine, StemII, 9},
		VibhaktiPattern{"ीः", Accusative, Plural, Feminine, StemII, 9},
		VibhaktiPattern{"ीभिः", Instrumental, Plural, Feminine, StemII, 10},
		VibhaktiPattern{"ीभ्यः", Dative, Plural, Feminine, StemII, 10},
		VibhaktiPattern{"ीभ्यः", Ablative, Plural, Feminine, StemII, 10},
		VibhaktiPattern{"ीनाम्", Genitive, Plural, Feminine, StemII, 10},
		VibhaktiPattern{"ीषु", Locative, Plural, Feminine, StemII, 9},
	)

	// U-stem masculine (गुरु)
	patterns = append(patterns,
		VibhaktiPattern{"ुः", Nominative, Singular, Masculine, StemU, 10},
		VibhaktiPattern{"ुम्", Accusative, Singular, Masculine, StemU, 10},
		VibhaktiPattern{"ुना", Instrumental, Singular, Masculine, StemU, 10},
		VibhaktiPattern{"वे", Dative, Singular, Masculine, StemU, 9},
		VibhaktiPattern{"ोः", Ablative, Singular, Masculine, StemU, 9},
		VibhaktiPattern{"ोः", Genitive, Singular, Masculine, StemU, 9},
		VibhaktiPattern{"ौ", Locative, Singular, Masculine, StemU, 9},
		VibhaktiPattern{"ो", Vocative, Singular, Masculine, StemU, 9},
		VibhaktiPattern{"वः", Nominative, Plural, Masculine, StemU, 9},
		VibhaktiPattern{"ून्", Accusative, Plural, Masculine, StemU, 9},
		VibhaktiPattern{"ुभिः", Instrumental, Plural, Masculine, StemU, 10},
		VibhaktiPattern{"ुभ्यः", Dative, Plural, Masculine, StemU, 10},
		VibhaktiPattern{"ुभ्यः", Ablative, Plural, Masculine, StemU, 10},
		VibhaktiPattern{"ूनाम्", Genitive, Plural, Masculine, StemU, 10},
		VibhaktiPattern{"ुषु", Locative, Plural, Masculine, StemU, 9},
	)

	// Ū-stem feminine (वधू)
	patterns = append(patterns,
		VibhaktiPattern{"ूः", Nominative, Singular, Feminine, StemUU, 10},
		VibhaktiPattern{"ूम्", Accusative, Singular, Feminine, StemUU, 10},
		VibhaktiPattern{"वा", Instrumental, Singular, Feminine, StemUU, 10},
		VibhaktiPattern{"वै", Dative, Singular, Feminine, StemUU, 9},
		VibhaktiPattern{"वाः", Ablative, Singular, Feminine, StemUU, 9},
		VibhaktiPattern{"वाः", Genitive, Singular, Feminine, StemUU, 9},
		VibhaktiPattern{"वाम्", Locative, Singular, Feminine, StemUU, 10},
		VibhaktiPattern{"ु", Vocative, Singular, Feminine, StemUU, 9},
		VibhaktiPattern{"वः", Nominative, Plural, Feminine, StemUU, 9},
		VibhaktiPattern{"ूः", Accusative, Plural, Feminine, StemUU, 9},
		VibhaktiPattern{"ूभिः", Instrumental, Plural, Feminine, StemUU, 10},
		VibhaktiPattern{"ूभ्यः", Dative, Plural, Feminine, StemUU, 10},
		VibhaktiPattern{"ूभ्यः", Ablative, Plural, Feminine, StemUU, 10},
		VibhaktiPattern{"ूनाम्", Genitive, Plural, Feminine, StemUU, 10},
		VibhaktiPattern{"ूषु", Locative, Plural, Feminine, StemUU, 9},
	)

	// Ṛ-stem masculine (पितृ)
	patterns = append(patterns,
		VibhaktiPattern{"ा", Nominative, Singular, Masculine, StemR, 9},
		VibhaktiPattern{"रम्", Accusative, Singular, Masculine, StemR, 9},
		VibhaktiPattern{"रा", Instrumental, Singular, Masculine, StemR, 9},
		VibhaktiPattern{"रे", Dative, Singular, Masculine, StemR, 9},
		VibhaktiPattern{"ुः", Ablative, Singular, Masculine, StemR, 9},
		VibhaktiPattern{"ुः", Genitive, Singular, Masculine, StemR, 9},
		VibhaktiPattern{"रि", Locative, Singular, Masculine, StemR, 9},
		VibhaktiPattern{"रः", Nominative, Plural, Masculine, StemR, 9},
		VibhaktiPattern{"ॄन्", Accusative, Plural, Masculine, StemR, 9},
		VibhaktiPattern{"ृभिः", Instrumental, Plural, Masculine, StemR, 10},
		VibhaktiPattern{"ृभ्यः", Dative, Plural, Masculine, StemR, 10},
		VibhaktiPattern{"ृभ्यः", Ablative, Plural, Masculine, StemR, 10},
		VibhaktiPattern{"ॄणाम्", Genitive, Plural, Masculine, StemR, 10},
		VibhaktiPattern{"ृषु", Locative, Plural, Masculine, StemR, 9},
	)

	// Consonant stems, simplified shared endings
	patterns = append(patterns,
		VibhaktiPattern{"्", Nominative, Singular, GenderAny, StemConsonant, 7},
		VibhaktiPattern{"म्", Accusative, Singular, GenderAny, StemConsonant, 8},
		VibhaktiPattern{"ा", Instrumental, Singular, GenderAny, StemConsonant, 8},
		VibhaktiPattern{"े", Dative, Singular, GenderAny, StemConsonant, 7},
		VibhaktiPattern{"ः", Ablative, Singular, GenderAny, StemConsonant, 7},
		VibhaktiPattern{"ः", Genitive, Singular, GenderAny, StemConsonant, 7},
		VibhaktiPattern{"ि", Locative, Singular, GenderAny, StemConsonant, 7},
		VibhaktiPattern{"ः", Nominative, Plural, GenderAny, StemConsonant, 7},
		VibhaktiPattern{"ः", Accusative, Plural, GenderAny, StemConsonant, 7},
		VibhaktiPattern{"भिः", Instrumental, Plural, GenderAny, StemConsonant, 9},
		VibhaktiPattern{"भ्यः", Dative, Plural, GenderAny, StemConsonant, 9},
		VibhaktiPattern{"भ्यः", Ablative, Plural, GenderAny, StemConsonant, 9},
		VibhaktiPattern{"ाम्", Genitive, Plural, GenderAny, StemConsonant, 8},
		VibhaktiPattern{"सु", Locative, Plural, GenderAny, StemConsonant, 8},
	)

	return patterns
}
