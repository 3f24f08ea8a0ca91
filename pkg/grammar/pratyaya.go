package grammar

import (
	"sort"
	"strings"
)

// PratyayaType distinguishes primary (krt), secondary (taddhita) and
// feminine-forming (stri) suffixes.
type PratyayaType int

const (
	Krt PratyayaType = iota
	Taddhita
	Stri
)

func (t PratyayaType) String() string {
	switch t {
	case Krt:
		return "krt"
	case Taddhita:
		return "taddhita"
	case Stri:
		return "stri"
	}
	return "unknown"
}

// SuffixClass is the semantic function of a suffix within its type.
type SuffixClass int

const (
	ClassNone SuffixClass = iota
	ClassInfinitive
	ClassAbsolutive
	ClassPastParticiple
	ClassPresentParticiple
	ClassFutureParticiple
	ClassAgentNoun
	ClassActionNoun
	ClassInstrumentalNoun
	ClassAbstract
	ClassPossessive
	ClassAdjective
	ClassPatronymic
	ClassFeminine
)

func (c SuffixClass) String() string {
	switch c {
	case ClassInfinitive:
		return "infinitive"
	case ClassAbsolutive:
		return "absolutive"
	case ClassPastParticiple:
		return "past-participle"
	case ClassPresentParticiple:
		return "present-participle"
	case ClassFutureParticiple:
		return "future-participle"
	case ClassAgentNoun:
		return "agent-noun"
	case ClassActionNoun:
		return "action-noun"
	case ClassInstrumentalNoun:
		return "instrumental-noun"
	case ClassAbstract:
		return "abstract"
	case ClassPossessive:
		return "possessive"
	case ClassAdjective:
		return "adjective"
	case ClassPatronymic:
		return "patronymic"
	case ClassFeminine:
		return "feminine"
	}
	return "none"
}

// PratyayaPattern is one derivational suffix with its reading.
type PratyayaPattern struct {
	Suffix   string
	Type     PratyayaType
	Class    SuffixClass
	Meaning  string
	Examples []string
	Priority int
}

// PratyayaAnalysis is one possible derivational reading of a word.
type PratyayaAnalysis struct {
	Base       string
	Suffix     string
	Type       PratyayaType
	Class      SuffixClass
	Meaning    string
	Confidence float64
}

// PratyayaAnalyzer matches derivational suffixes. Immutable after
// construction and safe for concurrent use.
type PratyayaAnalyzer struct {
	patterns []PratyayaPattern
}

// NewPratyayaAnalyzer builds the analyzer, priority-descending.
func NewPratyayaAnalyzer() *PratyayaAnalyzer {
	patterns := pratyayaPatterns()
	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Priority > patterns[j].Priority
	})
	return &PratyayaAnalyzer{patterns: patterns}
}

// Analyze returns the plausible suffix readings of word, best first.
// A match is only accepted when the remaining base has at least two
// runes, so short particles are not shredded into suffix and nothing.
func (p *PratyayaAnalyzer) Analyze(word string) []PratyayaAnalysis {
	var results []PratyayaAnalysis
	for _, pat := range p.patterns {
		if !strings.HasSuffix(word, pat.Suffix) {
			continue
		}
		base := word
		if pat.Suffix != "" {
			base = strings.TrimSuffix(word, pat.Suffix)
		}
		if len([]rune(base)) < 2 {
			continue
		}
		results = append(results, PratyayaAnalysis{
			Base:       base,
			Suffix:     pat.Suffix,
			Type:       pat.Type,
			Class:      pat.Class,
			Meaning:    pat.Meaning,
			Confidence: float64(pat.Priority) / 10.0,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results
}

// Tag returns the type label of the best analysis ("krt", "taddhita",
// "stri"), with ok=false when nothing matches.
func (p *PratyayaAnalyzer) Tag(word string) (string, bool) {
	analyses := p.Analyze(word)
	if len(analyses) == 0 {
		return "", false
	}
	return analyses[0].Type.String(), true
}

// AnalyzeType filters Analyze down to one suffix type.
func (p *PratyayaAnalyzer) AnalyzeType(word string, t PratyayaType) []PratyayaAnalysis {
	var out []PratyayaAnalysis
	for _, a := range p.Analyze(word) {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

func pratyayaPatterns() []PratyayaPattern {
	return []PratyayaPattern{
		// Krt: infinitives
		{"तुम्", Krt, ClassInfinitive, "infinitive (to do)", []string{"कर्तुम्", "गन्तुम्", "भोक्तुम्"}, 10},
		{"तुं", Krt, ClassInfinitive, "infinitive (sandhi form)", []string{"कर्तुं", "गन्तुं"}, 10},

		// Krt: absolutives
		{"त्वा", Krt, ClassAbsolutive, "having done", []string{"कृत्वा", "गत्वा", "दृष्ट्वा"}, 10},
		{"य", Krt, ClassAbsolutive, "having done (compound)", []string{"आगम्य", "उपगम्य"}, 9},
		{"त्य", Krt, ClassAbsolutive, "having done (variant)", []string{"श्रुत्य", "हुत्य"}, 8},

		// Krt: participles
		{"त", Krt, ClassPastParticiple, "done, past passive participle", []string{"कृत", "गत", "दत्त"}, 10},
		{"न", Krt, ClassPastParticiple, "done, past passive participle", []string{"भिन्न", "छिन्न"}, 9},
		{"तवत्", Krt, ClassPastParticiple, "having done, past active participle", []string{"कृतवत्", "गतवत्"}, 9},
		{"अत्", Krt, ClassPresentParticiple, "doing, present active participle", []string{"गच्छत्", "पचत्"}, 10},
		{"अन्त्", Krt, ClassPresentParticiple, "doing, present active participle", []string{"भवन्त्", "कुर्वन्त्"}, 9},
		{"मान", Krt, ClassPresentParticiple, "being done, present passive participle", []string{"क्रियमाण", "गम्यमान"}, 10},
		{"तव्य", Krt, ClassFutureParticiple, "to be done, gerundive", []string{"कर्तव्य", "गन्तव्य"}, 10},
		{"अनीय", Krt, ClassFutureParticiple, "to be done, gerundive", []string{"करणीय", "गमनीय"}, 10},
		{"य", Krt, ClassFutureParticiple, "to be done, gerundive", []string{"कार्य", "भाव्य"}, 9},

		// Krt: agent nouns
		{"तृ", Krt, ClassAgentNoun, "agent, doer", []string{"कर्तृ", "दातृ", "नेतृ"}, 10},
		{"तार", Krt, ClassAgentNoun, "agent (with case ending)", []string{"कर्तार", "दातार"}, 9},
		{"अक", Krt, ClassAgentNoun, "agent, doer", []string{"नायक", "सायक"}, 9},
		{"क", Krt, ClassAgentNoun, "agent, doer", []string{"भोजक", "लेखक"}, 8},
		{"इन्", Krt, ClassAgentNoun, "possessing, characterized by", []string{"मन्त्रिन्", "योगिन्"}, 9},
		{"उक", Krt, ClassAgentNoun, "fond of doing", []string{"भावुक", "कामुक"}, 8},

		// Krt: action nouns
		{"अन", Krt, ClassActionNoun, "action, act of doing", []string{"भवन", "गमन", "दर्शन"}, 9},
		{"न", Krt, ClassActionNoun, "action", []string{"चरण", "स्मरण"}, 8},
		{"ति", Krt, ClassActionNoun, "action, act of doing", []string{"गति", "मति", "भक्ति"}, 9},
		{"आ", Krt, ClassActionNoun, "action (feminine)", []string{"क्रिया", "सेवा", "पूजा"}, 8},
		{"अन", Krt, ClassInstrumentalNoun, "instrument for doing", []string{"भोजन", "लेखन"}, 8},

		// Taddhita: abstracts
		{"त्व", Taddhita, ClassAbstract, "abstract quality, -ness, -hood", []string{"देवत्व", "मनुष्यत्व", "नेतृत्व"}, 10},
		{"ता", Taddhita, ClassAbstract, "abstract quality (fem), -ness", []string{"सुन्दरता", "महत्ता"}, 10},
		{"इमन्", Taddhita, ClassAbstract, "abstract quality", []string{"गरिमन्", "महिमन्"}, 9},
		{"य", Taddhita, ClassAbstract, "abstract quality", []string{"माधुर्य", "सौन्दर्य"}, 8},

		// Taddhita: possessives
		{"मत्", Taddhita, ClassPossessive, "possessing, having", []string{"धनमत्", "बुद्धिमत्"}, 10},
		{"मान्", Taddhita, ClassPossessive, "possessing (masc nom sg)", []string{"धनमान्", "श्रीमान्"}, 9},
		{"वत्", Taddhita, ClassPossessive, "possessing, having, like", []string{"बलवत्", "गुणवत्"}, 10},
		{"वान्", Taddhita, ClassPossessive, "possessing (masc nom sg)", []string{"बलवान्"}, 9},
		{"इन्", Taddhita, ClassPossessive, "possessing, characterized by", []string{"बलिन्", "तपस्विन्"}, 9},
		{"ई", Taddhita, ClassPossessive, "possessing (fem)", []string{"बलिनी", "तपस्विनी"}, 8},

		// Taddhita: adjectives
		{"इक", Taddhita, ClassAdjective, "relating to, pertaining to", []string{"धार्मिक", "भौतिक", "वैदिक"}, 10},
		{"ईय", Taddhita, ClassAdjective, "fit for, worthy of", []string{"श्रेय", "भवदीय"}, 9},
		{"य", Taddhita, ClassAdjective, "made of, relating to", []string{"काव्य", "दिव्य"}, 8},
		{"मय", Taddhita, ClassAdjective, "made of, consisting of", []string{"सुवर्णमय", "काष्ठमय"}, 10},
		{"वत्", Taddhita, ClassAdjective, "like, similar to", []string{"राजवत्", "देववत्"}, 8},
		{"तम", Taddhita, ClassAdjective, "superlative -est", []string{"श्रेष्ठतम", "उत्तमतम"}, 9},
		{"इष्ठ", Taddhita, ClassAdjective, "superlative -est", []string{"गरिष्ठ", "ज्येष्ठ"}, 9},
		{"तर", Taddhita, ClassAdjective, "comparative -er", []string{"उत्तर", "अधर"}, 9},
		{"ीयस्", Taddhita, ClassAdjective, "comparative -er", []string{"गरीयस्", "श्रेयस्"}, 9},

		// Taddhita: patronymics
		{"अ", Taddhita, ClassPatronymic, "descendant of (masc)", []string{"वासुदेव", "माहेश्वर"}, 7},
		{"ई", Taddhita, ClassPatronymic, "descendant of (fem)", []string{"दाक्षायणी"}, 8},
		{"एय", Taddhita, ClassPatronymic, "descendant of", []string{"गार्ग्य", "कौशाम्बेय"}, 8},
		{"आयन", Taddhita, ClassPatronymic, "descendant of", []string{"नारायण"}, 9},

		// Stri: feminine formation
		{"आ", Stri, ClassFeminine, "feminine formation", []string{"बाला", "सुन्दरा"}, 8},
		{"ई", Stri, ClassFeminine, "feminine formation", []string{"देवी", "युवती"}, 9},
		{"इका", Stri, ClassFeminine, "feminine formation", []string{"बालिका", "लेखिका"}, 9},
		{"त्री", Stri, ClassFeminine, "feminine agent", []string{"नेत्री", "कर्त्री"}, 9},
		{"इनी", Stri, ClassFeminine, "feminine possessive", []string{"योगिनी", "तपस्विनी"}, 9},
		{"मती", Stri, ClassFeminine, "feminine possessive", []string{"बुद्धिमती"}, 9},
		{"वती", Stri, ClassFeminine, "feminine possessive", []string{"गुणवती"}, 9},
	}
}
