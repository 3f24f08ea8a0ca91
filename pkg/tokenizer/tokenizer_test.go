package tokenizer

import (
	"reflect"
	"testing"

	"github.com/samskrita/sandhi/pkg/dictionary"
)

func newTestTokenizer(t *testing.T, opts Options) *Tokenizer {
	t.Helper()
	tok, err := New(nil, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tok
}

func TestTokenizeEmpty(t *testing.T) {
	tok := newTestTokenizer(t, DefaultOptions())
	if got := tok.Tokenize(""); got != nil {
		t.Fatalf("Tokenize(\"\") = %v", got)
	}
}

func TestTokenizePreservesWhitespace(t *testing.T) {
	tok := newTestTokenizer(t, DefaultOptions())
	got := tok.Tokenize("राम गच्छति")
	want := []string{"राम", " ", "गच्छति"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeLossless(t *testing.T) {
	tok := newTestTokenizer(t, DefaultOptions())

	inputs := []string{
		"राम गच्छति",
		"रामः वनं गच्छति",
		"  राम   गच्छति  ",
		"राम (Rama) गच्छति",
		"hello world",
		" ",
		"अ",
		"रामोऽत्र।",
		"धर्मकाम हसन्ति",
		"\tराम\nगच्छति\n",
	}
	for _, in := range inputs {
		tokens := tok.Tokenize(in)
		if got := tok.Detokenize(tokens); got != in {
			t.Fatalf("round trip failed for %q: tokens %v join to %q", in, tokens, got)
		}
	}
}

func TestTokenizeLosslessOnInvalidUTF8(t *testing.T) {
	tok := newTestTokenizer(t, DefaultOptions())

	// Byte strings that are not valid UTF-8 still round-trip exactly.
	inputs := []string{
		"\xff\xfeराम",
		"राम \x80गच्छति",
		"\xc3 \xc3",
		"\xff",
	}
	for _, in := range inputs {
		tokens := tok.Tokenize(in)
		if got := tok.Detokenize(tokens); got != in {
			t.Fatalf("round trip failed for %q: tokens %q join to %q", in, tokens, got)
		}
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	tok := newTestTokenizer(t, DefaultOptions())
	in := "धर्मकाम हसन्ति रामः"
	first := tok.Tokenize(in)
	for i := 0; i < 5; i++ {
		if got := tok.Tokenize(in); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestTokenizeSandhiSplitting(t *testing.T) {
	tok := newTestTokenizer(t, DefaultOptions())
	// The junction cluster in हसन्ति matches its pre-sandhi consonants,
	// so the split survives the lossless guard.
	got := tok.Tokenize("हसन्ति")
	want := []string{"हसन्", "ति"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeSamasaDecomposition(t *testing.T) {
	tok := newTestTokenizer(t, DefaultOptions())
	got := tok.Tokenize("धर्मकाम")
	want := []string{"धर्म", "काम"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}

	opts := DefaultOptions()
	opts.EnableSamasaDecomposition = false
	plain := newTestTokenizer(t, opts)
	if got := plain.Tokenize("धर्मकाम"); !reflect.DeepEqual(got, []string{"धर्मकाम"}) {
		t.Fatalf("decomposition disabled, got %v", got)
	}
}

func TestTokenizeFallbackKeepsOriginal(t *testing.T) {
	tok := newTestTokenizer(t, DefaultOptions())
	// Normalization collapses the double space, so the pipeline output
	// cannot match and the fallback split of the original takes over.
	in := "राम  गच्छति"
	got := tok.Tokenize(in)
	want := []string{"राम", "  ", "गच्छति"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeWithoutWhitespace(t *testing.T) {
	opts := DefaultOptions()
	opts.PreserveWhitespace = false
	opts.AutoVerify = false
	tok := newTestTokenizer(t, opts)

	got := tok.Tokenize("राम गच्छति")
	want := []string{"राम", "गच्छति"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestDetokenize(t *testing.T) {
	tok := newTestTokenizer(t, DefaultOptions())
	if got := tok.Detokenize([]string{"राम", " ", "गच्छति"}); got != "राम गच्छति" {
		t.Fatalf("Detokenize = %q", got)
	}
	if got := tok.Detokenize(nil); got != "" {
		t.Fatalf("Detokenize(nil) = %q", got)
	}
}

func TestStatistics(t *testing.T) {
	tok := newTestTokenizer(t, DefaultOptions())
	tok.Tokenize("राम गच्छति")

	s := tok.Statistics()
	if s.DictionarySize == 0 {
		t.Fatal("dictionary size is zero")
	}
	if s.RuleCount != 130 {
		t.Fatalf("rule count = %d, want 130", s.RuleCount)
	}
	if !s.SandhiEnabled || !s.SamasaEnabled {
		t.Fatal("stage flags not reported")
	}
	if s.Verification.Total == 0 {
		t.Fatal("verification counter not advanced")
	}
}

func TestTokenizerSharesDictionary(t *testing.T) {
	dict := dictionary.NewEmpty()
	dict.AddAll([]string{"धर्म", "काम"})
	tok, err := New(dict, DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tok.Dictionary() != dict {
		t.Fatal("tokenizer did not adopt the provided dictionary")
	}
	got := tok.Tokenize("धर्मकाम")
	if !reflect.DeepEqual(got, []string{"धर्म", "काम"}) {
		t.Fatalf("Tokenize = %v", got)
	}
}

func TestFallbackTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a b", []string{"a", " ", "b"}},
		{"  a", []string{"  ", "a"}},
		{"a\t\nb", []string{"a", "\t\n", "b"}},
		{"   ", []string{"   "}},
		{"\xffa b\x80", []string{"\xffa", " ", "b\x80"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := fallbackTokenize(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("fallbackTokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
