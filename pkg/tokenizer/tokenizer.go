// Package tokenizer is the public tokenization pipeline for Sanskrit
// text in Devanagari. Tokenization is deterministic and lossless:
// joining the returned tokens reproduces the input exactly.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/samskrita/sandhi/pkg/devanagari"
	"github.com/samskrita/sandhi/pkg/dictionary"
	"github.com/samskrita/sandhi/pkg/grammar"
	"github.com/samskrita/sandhi/pkg/sandhi"
)

// Options selects the pipeline stages.
type Options struct {
	// PreserveWhitespace keeps spaces as their own tokens so the token
	// stream joins back to the normalized text.
	PreserveWhitespace bool
	// PreserveVedicAccents keeps svara marks during normalization.
	PreserveVedicAccents bool
	// EnableSandhiSplitting runs each word through the sandhi engine.
	EnableSandhiSplitting bool
	// EnableSamasaDecomposition splits compound words on dictionary
	// boundaries.
	EnableSamasaDecomposition bool
	// AutoVerify checks every Tokenize call against the input and falls
	// back to a plain whitespace split when the check fails.
	AutoVerify bool
}

// DefaultOptions enables every stage.
func DefaultOptions() Options {
	return Options{
		PreserveWhitespace:        true,
		PreserveVedicAccents:      true,
		EnableSandhiSplitting:     true,
		EnableSamasaDecomposition: true,
		AutoVerify:                true,
	}
}

// Tokenizer orchestrates normalization, sandhi splitting, compound
// decomposition and integrity verification. Safe for concurrent use.
type Tokenizer struct {
	opts Options

	norm     *devanagari.Normalizer
	dict     *dictionary.Dictionary
	catalog  *sandhi.Catalog
	engine   *sandhi.Engine
	samasa   *SamasaAnalyzer
	verifier *Verifier
}

// New builds a tokenizer over dict. A nil dict gets the seed vocabulary.
func New(dict *dictionary.Dictionary, opts Options) (*Tokenizer, error) {
	if dict == nil {
		dict = dictionary.New()
	}

	catalog, err := sandhi.NewCatalog()
	if err != nil {
		return nil, err
	}
	engine, err := sandhi.NewEngine(
		catalog,
		dict,
		grammar.NewVibhaktiAnalyzer(),
		grammar.NewPratyayaAnalyzer(),
		sandhi.DefaultConfig(),
	)
	if err != nil {
		return nil, err
	}

	norm := devanagari.NewNormalizer()
	norm.PreserveVedicAccents = opts.PreserveVedicAccents

	return &Tokenizer{
		opts:     opts,
		norm:     norm,
		dict:     dict,
		catalog:  catalog,
		engine:   engine,
		samasa:   NewSamasaAnalyzer(dict),
		verifier: NewVerifier(),
	}, nil
}

// Dictionary returns the tokenizer's vocabulary for loading and lookup.
func (t *Tokenizer) Dictionary() *dictionary.Dictionary { return t.dict }

// Engine exposes the sandhi engine for split analysis.
func (t *Tokenizer) Engine() *sandhi.Engine { return t.engine }

// Catalog exposes the sandhi rule catalog.
func (t *Tokenizer) Catalog() *sandhi.Catalog { return t.catalog }

// Tokenize splits text into tokens. The result always joins back to
// text: any stage whose output would not is discarded, and when
// AutoVerify detects a mismatch the whole pipeline is replaced by a
// whitespace-run split of the original input.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	normalized := t.norm.Normalize(text)

	var tokens []string
	if t.opts.PreserveWhitespace {
		tokens = splitKeepingSpaces(normalized)
	} else {
		tokens = strings.Fields(normalized)
	}

	if t.opts.EnableSandhiSplitting {
		tokens = t.applySandhi(tokens)
	}
	if t.opts.EnableSamasaDecomposition {
		tokens = t.applySamasa(tokens)
	}

	if t.opts.AutoVerify {
		if ok, _ := t.verifier.VerifyIntegrity(text, tokens); !ok {
			tokens = fallbackTokenize(text)
		}
	}
	return tokens
}

// Detokenize reconstructs text from tokens.
func (t *Tokenizer) Detokenize(tokens []string) string {
	return strings.Join(tokens, "")
}

// VerifyIntegrity reports whether tokens reproduce original exactly.
func (t *Tokenizer) VerifyIntegrity(original string, tokens []string) (bool, Metrics) {
	return t.verifier.VerifyIntegrity(original, tokens)
}

// Statistics describes the tokenizer's current state.
type Statistics struct {
	DictionarySize int
	RuleCount      int
	SandhiEnabled  bool
	SamasaEnabled  bool
	Verification   Summary
}

// Statistics returns dictionary, rule and verification counters.
func (t *Tokenizer) Statistics() Statistics {
	return Statistics{
		DictionarySize: t.dict.Size(),
		RuleCount:      t.catalog.Len(),
		SandhiEnabled:  t.opts.EnableSandhiSplitting,
		SamasaEnabled:  t.opts.EnableSamasaDecomposition,
		Verification:   t.verifier.MetricsSummary(),
	}
}

// applySandhi runs each word token through the sandhi engine. A split is
// kept only when its parts join back to the token, so sandhi resolution
// can never break the lossless property.
func (t *Tokenizer) applySandhi(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			result = append(result, token)
			continue
		}
		sub := t.engine.SplitToken(token)
		if joins(sub, token) {
			result = append(result, sub...)
		} else {
			result = append(result, token)
		}
	}
	return result
}

// applySamasa decomposes compound tokens on dictionary boundaries.
// Decompositions partition the token's runes, but the same join guard
// applies.
func (t *Tokenizer) applySamasa(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			result = append(result, token)
			continue
		}
		parts := t.samasa.Decompose(token)
		if joins(parts, token) {
			result = append(result, parts...)
		} else {
			result = append(result, token)
		}
	}
	return result
}

func joins(parts []string, whole string) bool {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	if n != len(whole) {
		return false
	}
	return strings.Join(parts, "") == whole
}

// splitKeepingSpaces emits word tokens and one token per space rune.
func splitKeepingSpaces(text string) []string {
	var tokens []string
	var word strings.Builder
	for _, r := range text {
		if r == ' ' {
			if word.Len() > 0 {
				tokens = append(tokens, word.String())
				word.Reset()
			}
			tokens = append(tokens, " ")
			continue
		}
		word.WriteRune(r)
	}
	if word.Len() > 0 {
		tokens = append(tokens, word.String())
	}
	return tokens
}

// fallbackTokenize splits text into alternating runs of whitespace and
// non-whitespace. Tokens are byte slices of the input, so the join
// guarantee holds for any text, even byte strings that are not valid
// UTF-8 (invalid bytes decode as U+FFFD, which is not a space, so they
// stay inside the adjacent non-whitespace run).
func fallbackTokenize(text string) []string {
	if text == "" {
		return nil
	}
	var tokens []string
	start := 0
	prevSpace := false
	for i, r := range text {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			prevSpace = isSpace
			continue
		}
		if isSpace != prevSpace {
			tokens = append(tokens, text[start:i])
			start = i
			prevSpace = isSpace
		}
	}
	return append(tokens, text[start:])
}
