package tokenizer

import (
	"sort"
	"strings"

	"github.com/samskrita/sandhi/pkg/dictionary"
)

// SamasaType classifies a Sanskrit compound.
type SamasaType int

const (
	SamasaUnknown SamasaType = iota
	Dvandva                  // copulative
	Tatpurusha               // determinative
	Karmadharaya             // descriptive
	Dvigu                    // numerical
	Bahuvrihi                // possessive
	Avyayibhava              // adverbial
)

func (t SamasaType) String() string {
	switch t {
	case Dvandva:
		return "द्वन्द्व"
	case Tatpurusha:
		return "तत्पुरुष"
	case Karmadharaya:
		return "कर्मधारय"
	case Dvigu:
		return "द्विगु"
	case Bahuvrihi:
		return "बहुव्रीहि"
	case Avyayibhava:
		return "अव्ययीभाव"
	default:
		return "unknown"
	}
}

// SamasaAnalysis is one proposed decomposition of a compound.
// SplitPoints are rune offsets where each component begins.
type SamasaAnalysis struct {
	Components  []string
	Type        SamasaType
	Confidence  float64
	SplitPoints []int
}

// compound members that mark a numerical compound (dvigu)
var numeralMembers = map[string]bool{
	"एक": true, "द्वि": true, "त्रि": true, "चतुर्": true, "पञ्च": true,
	"षट्": true, "सप्त": true, "अष्ट": true, "नव": true, "दश": true,
}

// SamasaAnalyzer decomposes compounds by longest dictionary match.
// Every decomposition partitions the compound's runes, so rejoining the
// components always reproduces the input.
type SamasaAnalyzer struct {
	dict *dictionary.Dictionary
}

// NewSamasaAnalyzer builds an analyzer over the given vocabulary.
func NewSamasaAnalyzer(dict *dictionary.Dictionary) *SamasaAnalyzer {
	return &SamasaAnalyzer{dict: dict}
}

// Analyze proposes decompositions of compound, best first. Words shorter
// than four runes are never treated as compounds.
func (a *SamasaAnalyzer) Analyze(compound string, maxComponents int) []SamasaAnalysis {
	runes := []rune(compound)
	if len(runes) < 4 {
		return nil
	}

	var analyses []SamasaAnalysis
	if an, ok := a.greedyLeft(runes, maxComponents); ok {
		analyses = append(analyses, an)
	}
	if an, ok := a.greedyRight(runes, maxComponents); ok {
		analyses = append(analyses, an)
	}
	if an, ok := a.balancedSplit(runes, maxComponents); ok {
		analyses = append(analyses, an)
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].Confidence > analyses[j].Confidence
	})

	seen := make(map[string]bool)
	unique := analyses[:0]
	for _, an := range analyses {
		key := strings.Join(an.Components, "\x00")
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, an)
	}
	return unique
}

// Decompose returns the best decomposition of compound, or the compound
// itself when no analysis is confident enough.
func (a *SamasaAnalyzer) Decompose(compound string) []string {
	analyses := a.Analyze(compound, 5)
	if len(analyses) > 0 && analyses[0].Confidence > 0.5 {
		return analyses[0].Components
	}
	return []string{compound}
}

// greedyLeft takes the longest known word from the left and repeats on
// the remainder.
func (a *SamasaAnalyzer) greedyLeft(runes []rune, maxComponents int) (SamasaAnalysis, bool) {
	var components []string
	var splitPoints []int
	position := 0

	for position < len(runes) && len(components) < maxComponents {
		found := false
		for length := len(runes) - position; length > 0; length-- {
			candidate := string(runes[position : position+length])
			if a.dict.Contains(candidate) {
				components = append(components, candidate)
				splitPoints = append(splitPoints, position)
				position += length
				found = true
				break
			}
		}
		if !found {
			components = append(components, string(runes[position:]))
			splitPoints = append(splitPoints, position)
			break
		}
	}

	return a.finish(components, splitPoints, 1.0)
}

// greedyRight takes the longest known word from the right. Final members
// of a compound are often the most stable, but the strategy carries a
// small penalty against the left greedy pass.
func (a *SamasaAnalyzer) greedyRight(runes []rune, maxComponents int) (SamasaAnalysis, bool) {
	var components []string
	var splitPoints []int
	end := len(runes)

	for end > 0 && len(components) < maxComponents {
		found := false
		for length := end; length > 0; length-- {
			candidate := string(runes[end-length : end])
			if a.dict.Contains(candidate) {
				components = append([]string{candidate}, components...)
				splitPoints = append([]int{end - length}, splitPoints...)
				end -= length
				found = true
				break
			}
		}
		if !found {
			components = append([]string{string(runes[:end])}, components...)
			splitPoints = append([]int{0}, splitPoints...)
			break
		}
	}

	return a.finish(components, splitPoints, 0.95)
}

// balancedSplit looks for a two-way split near the midpoint where both
// halves are known words. Dvandva compounds tend to balance this way.
func (a *SamasaAnalyzer) balancedSplit(runes []rune, maxComponents int) (SamasaAnalysis, bool) {
	if maxComponents < 2 {
		return SamasaAnalysis{}, false
	}
	mid := len(runes) / 2
	maxOffset := mid
	if len(runes)-mid < maxOffset {
		maxOffset = len(runes) - mid
	}

	for offset := 0; offset < maxOffset; offset++ {
		for _, pos := range []int{mid - offset, mid + offset} {
			if pos <= 0 || pos >= len(runes) {
				continue
			}
			left := string(runes[:pos])
			right := string(runes[pos:])
			if a.dict.Contains(left) && a.dict.Contains(right) {
				return SamasaAnalysis{
					Components:  []string{left, right},
					Type:        Dvandva,
					Confidence:  0.8,
					SplitPoints: []int{0, pos},
				}, true
			}
		}
	}
	return SamasaAnalysis{}, false
}

func (a *SamasaAnalyzer) finish(components []string, splitPoints []int, penalty float64) (SamasaAnalysis, bool) {
	if len(components) <= 1 {
		return SamasaAnalysis{}, false
	}
	valid := 0
	for _, c := range components {
		if a.dict.Contains(c) {
			valid++
		}
	}
	return SamasaAnalysis{
		Components:  components,
		Type:        a.inferType(components),
		Confidence:  float64(valid) / float64(len(components)) * penalty,
		SplitPoints: splitPoints,
	}, true
}

// inferType guesses the compound class from its members. Two-member
// compounds default to tatpurusha, the most common class.
func (a *SamasaAnalyzer) inferType(components []string) SamasaType {
	if len(components) == 2 {
		if numeralMembers[components[0]] {
			return Dvigu
		}
		return Tatpurusha
	}
	if len(components) > 2 {
		return Dvandva
	}
	return SamasaUnknown
}
