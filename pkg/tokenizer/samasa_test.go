package tokenizer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/samskrita/sandhi/pkg/dictionary"
)

func TestSamasaDecompose(t *testing.T) {
	a := NewSamasaAnalyzer(dictionary.New())

	got := a.Decompose("धर्मकाम")
	want := []string{"धर्म", "काम"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Decompose = %v, want %v", got, want)
	}
}

func TestSamasaAnalyze(t *testing.T) {
	a := NewSamasaAnalyzer(dictionary.New())

	analyses := a.Analyze("धर्मकाम", 5)
	if len(analyses) == 0 {
		t.Fatal("no analyses for धर्मकाम")
	}
	best := analyses[0]
	if !reflect.DeepEqual(best.Components, []string{"धर्म", "काम"}) {
		t.Fatalf("best components %v", best.Components)
	}
	if best.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", best.Confidence)
	}
	if best.Type != Tatpurusha {
		t.Fatalf("type = %s, want tatpurusha", best.Type)
	}
	for i := 1; i < len(analyses); i++ {
		if analyses[i].Confidence > analyses[i-1].Confidence {
			t.Fatal("analyses not sorted by confidence")
		}
	}
}

func TestSamasaNumericalCompound(t *testing.T) {
	a := NewSamasaAnalyzer(dictionary.New())
	analyses := a.Analyze("त्रिधर्म", 5)
	if len(analyses) == 0 {
		t.Fatal("no analyses for त्रिधर्म")
	}
	if analyses[0].Type != Dvigu {
		t.Fatalf("type = %s, want dvigu", analyses[0].Type)
	}
}

func TestSamasaRejectsShortAndUnknown(t *testing.T) {
	a := NewSamasaAnalyzer(dictionary.New())

	if got := a.Analyze("राम", 5); got != nil {
		t.Fatalf("short word analyzed: %v", got)
	}

	// No component is attested: confidence stays too low to accept.
	got := a.Decompose("क्षत्रियवट")
	if len(got) != 1 || got[0] != "क्षत्रियवट" {
		t.Fatalf("unknown compound decomposed: %v", got)
	}
}

func TestSamasaDecompositionIsLossless(t *testing.T) {
	a := NewSamasaAnalyzer(dictionary.New())
	for _, compound := range []string{"धर्मकाम", "त्रिधर्म", "गजेन्द्रमोक्ष", "क्षत्रियवट"} {
		parts := a.Decompose(compound)
		if joined := strings.Join(parts, ""); joined != compound {
			t.Fatalf("Decompose(%q) = %v, joins to %q", compound, parts, joined)
		}
	}
}

func TestSamasaTypeString(t *testing.T) {
	tests := []struct {
		typ  SamasaType
		want string
	}{
		{Dvandva, "द्वन्द्व"},
		{Tatpurusha, "तत्पुरुष"},
		{Dvigu, "द्विगु"},
		{SamasaUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
