package grammar

import "testing"

func TestPratyayaAnalyze(t *testing.T) {
	p := NewPratyayaAnalyzer()

	tests := []struct {
		word      string
		wantSuffix string
		wantType   PratyayaType
		wantClass  SuffixClass
	}{
		{"गन्तुम्", "तुम्", Krt, ClassInfinitive},
		{"कृत्वा", "त्वा", Krt, ClassAbsolutive},
		{"देवत्व", "त्व", Taddhita, ClassAbstract},
		{"सुन्दरता", "ता", Taddhita, ClassAbstract},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			analyses := p.Analyze(tt.word)
			if len(analyses) == 0 {
				t.Fatalf("no analyses for %q", tt.word)
			}
			for _, a := range analyses {
				if a.Suffix == tt.wantSuffix && a.Type == tt.wantType && a.Class == tt.wantClass {
					return
				}
			}
			t.Fatalf("%q: missing %s/%s reading, got %+v", tt.word, tt.wantType, tt.wantClass, analyses)
		})
	}
}

func TestPratyayaShortBaseRejected(t *testing.T) {
	p := NewPratyayaAnalyzer()
	// Stripping ति would leave nothing; the particle is not derived.
	for _, a := range p.Analyze("ति") {
		t.Fatalf("unexpected analysis %+v for bare particle", a)
	}
}

func TestPratyayaTag(t *testing.T) {
	p := NewPratyayaAnalyzer()

	tag, ok := p.Tag("गन्तुम्")
	if !ok || tag != "krt" {
		t.Fatalf("Tag(गन्तुम्) = %q, %v", tag, ok)
	}

	if _, ok := p.Tag(""); ok {
		t.Fatal("empty word must not tag")
	}
}

func TestPratyayaAnalyzeType(t *testing.T) {
	p := NewPratyayaAnalyzer()
	for _, a := range p.AnalyzeType("देवत्व", Taddhita) {
		if a.Type != Taddhita {
			t.Fatalf("AnalyzeType leaked %s reading", a.Type)
		}
	}
	if got := p.AnalyzeType("कृत्वा", Stri); len(got) != 0 {
		t.Fatalf("expected no stri readings for कृत्वा, got %+v", got)
	}
}

func TestPratyayaTypeStrings(t *testing.T) {
	if Krt.String() != "krt" || Taddhita.String() != "taddhita" || Stri.String() != "stri" {
		t.Fatal("PratyayaType.String mismatch")
	}
	if ClassInfinitive.String() != "infinitive" || ClassAbsolutive.String() != "absolutive" {
		t.Fatal("SuffixClass.String mismatch")
	}
}
