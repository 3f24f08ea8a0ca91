package sandhi

import (
	"fmt"
	"math"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Vocabulary is what the engine needs from a word store: membership and
// observed corpus frequency.
type Vocabulary interface {
	Contains(word string) bool
	Frequency(word string) int
}

// Tagger is a morphology oracle. Tag returns a label for the best analysis
// of word, with ok=false when no pattern matches.
type Tagger interface {
	Tag(word string) (string, bool)
}

// Config holds the scoring weights and normalization constants. The three
// weights must sum to 1; NewEngine rejects any other combination so a
// mistuned config cannot silently skew candidate ranking.
type Config struct {
	RuleWeight      float64 // weight of rule priority evidence
	FrequencyWeight float64 // weight of corpus frequency evidence
	GrammarWeight   float64 // weight of morphological plausibility

	// FrequencyCeiling is the corpus frequency treated as fully attested.
	// The geometric-mean frequency score saturates at ln(FrequencyCeiling).
	FrequencyCeiling float64

	// NoSplitFrequencyDivisor scales the frequency evidence of the
	// keep-whole-word candidate.
	NoSplitFrequencyDivisor float64

	// MaxCandidates bounds FindAllSplits output. Zero means no bound.
	MaxCandidates int

	// CacheSize is the LRU capacity for SplitToken results.
	CacheSize int
}

// DefaultConfig returns the tuned production weights.
func DefaultConfig() Config {
	return Config{
		RuleWeight:              0.40,
		FrequencyWeight:         0.30,
		GrammarWeight:           0.30,
		FrequencyCeiling:        10000,
		NoSplitFrequencyDivisor: 1000,
		MaxCandidates:           10,
		CacheSize:               100_000,
	}
}

func (c Config) validate() error {
	sum := c.RuleWeight + c.FrequencyWeight + c.GrammarWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("sandhi: scoring weights sum to %g, want 1.0", sum)
	}
	if c.RuleWeight < 0 || c.FrequencyWeight < 0 || c.GrammarWeight < 0 {
		return fmt.Errorf("sandhi: scoring weights must be non-negative")
	}
	if c.FrequencyCeiling <= 1 {
		return fmt.Errorf("sandhi: frequency ceiling %g must exceed 1", c.FrequencyCeiling)
	}
	if c.NoSplitFrequencyDivisor <= 0 {
		return fmt.Errorf("sandhi: no-split frequency divisor %g must be positive", c.NoSplitFrequencyDivisor)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("sandhi: cache size %d must be positive", c.CacheSize)
	}
	return nil
}

// NoSplitRuleID marks the candidate that keeps the word whole.
const NoSplitRuleID = "NO_SPLIT"

// noSplitPriority is the neutral rule evidence of the keep-whole candidate.
const noSplitPriority = 5

// Candidate is one scored hypothesis for a word's pre-sandhi form.
// A candidate with RuleID NoSplitRuleID has Right == "".
type Candidate struct {
	Left           string
	Right          string
	RuleID         string
	RulePriority   int
	LeftFrequency  int
	RightFrequency int
	LeftCase       string // vibhakti tag, empty when none
	RightCase      string
	LeftSuffix     string // pratyaya tag, empty when none
	RightSuffix    string
	Score          float64
}

// Engine enumerates and ranks the possible pre-sandhi splits of a word.
// It is safe for concurrent use: the catalog is immutable, the vocabulary
// guards itself, and the split cache is internally synchronized.
type Engine struct {
	catalog  *Catalog
	vocab    Vocabulary
	vibhakti Tagger
	pratyaya Tagger
	cfg      Config

	splitCache *lru.Cache[string, []string]
}

// NewEngine builds an engine over the given catalog, vocabulary and
// morphology oracles. Either tagger may be nil to disable that evidence.
func NewEngine(catalog *Catalog, vocab Vocabulary, vibhakti, pratyaya Tagger, cfg Config) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("sandhi: nil catalog")
	}
	if vocab == nil {
		return nil, fmt.Errorf("sandhi: nil vocabulary")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cache, err := lru.New[string, []string](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("sandhi: split cache: %w", err)
	}
	return &Engine{
		catalog:    catalog,
		vocab:      vocab,
		vibhakti:   vibhakti,
		pratyaya:   pratyaya,
		cfg:        cfg,
		splitCache: cache,
	}, nil
}

// FindAllSplits returns every scored split hypothesis for word, best first.
// Candidates are deduplicated by (left, right) pair; the keep-whole-word
// candidate is included when the vocabulary knows the word. An unknown,
// unsplittable word yields an empty slice, which is a normal outcome.
func (e *Engine) FindAllSplits(word string, maxCandidates int) []Candidate {
	if word == "" {
		return nil
	}
	runes := []rune(word)
	seen := make(map[[2]string]bool)
	var candidates []Candidate

	for i := 1; i < len(runes); i++ {
		left := string(runes[:i])
		right := string(runes[i:])
		for _, rule := range e.catalog.ApplicableRules(left, right, false) {
			for _, split := range rule.ReverseApply(word) {
				key := [2]string{split.Left, split.Right}
				if seen[key] {
					continue
				}
				seen[key] = true
				candidates = append(candidates, e.scoreSplit(split, rule))
			}
		}
	}

	if e.vocab.Contains(word) {
		key := [2]string{word, ""}
		if !seen[key] {
			candidates = append(candidates, e.scoreNoSplit(word))
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if maxCandidates > 0 && len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

// GetBestSplit returns the highest-scoring split of word. When no rule
// applies and the word is unknown, it returns (word, "").
func (e *Engine) GetBestSplit(word string) (string, string) {
	candidates := e.FindAllSplits(word, 1)
	if len(candidates) == 0 || candidates[0].Right == "" {
		return word, ""
	}
	return candidates[0].Left, candidates[0].Right
}

// SplitToken returns the best split as a token slice: two tokens when a
// split wins, one token otherwise. Results are memoized in an LRU cache.
func (e *Engine) SplitToken(word string) []string {
	if cached, ok := e.splitCache.Get(word); ok {
		return cached
	}
	left, right := e.GetBestSplit(word)
	var tokens []string
	if right == "" {
		tokens = []string{left}
	} else {
		tokens = []string{left, right}
	}
	e.splitCache.Add(word, tokens)
	return tokens
}

// CacheLen reports the number of memoized split results.
func (e *Engine) CacheLen() int { return e.splitCache.Len() }

func (e *Engine) scoreSplit(split Split, rule *Rule) Candidate {
	cand := Candidate{
		Left:           split.Left,
		Right:          split.Right,
		RuleID:         rule.ID,
		RulePriority:   rule.Priority,
		LeftFrequency:  e.vocab.Frequency(split.Left),
		RightFrequency: e.vocab.Frequency(split.Right),
	}
	if e.vibhakti != nil {
		cand.LeftCase, _ = e.vibhakti.Tag(split.Left)
		cand.RightCase, _ = e.vibhakti.Tag(split.Right)
	}
	if e.pratyaya != nil {
		cand.LeftSuffix, _ = e.pratyaya.Tag(split.Left)
		cand.RightSuffix, _ = e.pratyaya.Tag(split.Right)
	}

	ruleScore := float64(rule.Priority) / 10.0
	freqScore := e.frequencyScore(cand.LeftFrequency, cand.RightFrequency)
	grammarScore := grammarScore(cand)

	cand.Score = e.cfg.RuleWeight*ruleScore +
		e.cfg.FrequencyWeight*freqScore +
		e.cfg.GrammarWeight*grammarScore
	return cand
}

// frequencyScore is the geometric mean of log frequencies, normalized by
// the log of the frequency ceiling. A side with zero frequency means the
// word is unattested and the evidence collapses to zero.
func (e *Engine) frequencyScore(leftFreq, rightFreq int) float64 {
	if leftFreq == 0 || rightFreq == 0 {
		return 0
	}
	s := math.Sqrt(math.Log(float64(leftFreq)+1)*math.Log(float64(rightFreq)+1)) /
		math.Log(e.cfg.FrequencyCeiling)
	return math.Min(1, s)
}

// grammarScore adds 0.2 for each morphological signal: a case tag on each
// side, a suffix tag on each side, and a bonus when both sides carry any
// tag at all. Capped at 1.
func grammarScore(c Candidate) float64 {
	score := 0.0
	if c.LeftCase != "" {
		score += 0.2
	}
	if c.RightCase != "" {
		score += 0.2
	}
	if c.LeftSuffix != "" {
		score += 0.2
	}
	if c.RightSuffix != "" {
		score += 0.2
	}
	leftAny := c.LeftCase != "" || c.LeftSuffix != ""
	rightAny := c.RightCase != "" || c.RightSuffix != ""
	if leftAny && rightAny {
		score += 0.2
	}
	return math.Min(1, score)
}

func (e *Engine) scoreNoSplit(word string) Candidate {
	cand := Candidate{
		Left:          word,
		RuleID:        NoSplitRuleID,
		RulePriority:  noSplitPriority,
		LeftFrequency: e.vocab.Frequency(word),
	}
	if e.vibhakti != nil {
		cand.LeftCase, _ = e.vibhakti.Tag(word)
	}
	if e.pratyaya != nil {
		cand.LeftSuffix, _ = e.pratyaya.Tag(word)
	}

	freqScore := math.Min(1, float64(cand.LeftFrequency)/e.cfg.NoSplitFrequencyDivisor)
	grammar := 0.3
	if cand.LeftCase != "" || cand.LeftSuffix != "" {
		grammar = 0.8
	}
	cand.Score = e.cfg.RuleWeight*0.5 +
		e.cfg.FrequencyWeight*freqScore +
		e.cfg.GrammarWeight*grammar
	return cand
}
