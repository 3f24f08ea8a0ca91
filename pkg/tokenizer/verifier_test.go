package tokenizer

import "testing"

func TestVerifyIntegrity(t *testing.T) {
	v := NewVerifier()

	ok, m := v.VerifyIntegrity("राम गच्छति", []string{"राम", " ", "गच्छति"})
	if !ok || !m.Valid {
		t.Fatalf("expected valid, got %+v", m)
	}
	if m.TokenCount != 3 {
		t.Fatalf("token count = %d", m.TokenCount)
	}
	if m.CharacterAccuracy != 1.0 {
		t.Fatalf("character accuracy = %v", m.CharacterAccuracy)
	}

	ok, m = v.VerifyIntegrity("राम गच्छति", []string{"राम", "गच्छति"})
	if ok || m.Valid {
		t.Fatal("dropped space must fail verification")
	}
	if m.CharacterAccuracy >= 1.0 {
		t.Fatalf("character accuracy = %v for mismatch", m.CharacterAccuracy)
	}
}

func TestVerifyIntegrityEmpty(t *testing.T) {
	v := NewVerifier()
	if ok, _ := v.VerifyIntegrity("", nil); !ok {
		t.Fatal("empty text with no tokens must verify")
	}
	if ok, _ := v.VerifyIntegrity("", []string{"x"}); ok {
		t.Fatal("tokens for empty text must fail")
	}
}

func TestVerifierCounters(t *testing.T) {
	v := NewVerifier()
	if rate := v.SuccessRate(); rate != 0 {
		t.Fatalf("fresh success rate = %v", rate)
	}

	v.VerifyIntegrity("अ", []string{"अ"})
	v.VerifyIntegrity("अ", []string{"आ"})
	v.VerifyIntegrity("अ", []string{"अ"})

	s := v.MetricsSummary()
	if s.Total != 3 || s.Successful != 2 || s.Failed != 1 {
		t.Fatalf("summary %+v", s)
	}
	want := 2.0 / 3.0
	if s.SuccessRate != want {
		t.Fatalf("success rate = %v, want %v", s.SuccessRate, want)
	}

	v.Reset()
	s = v.MetricsSummary()
	if s.Total != 0 || s.SuccessRate != 0 {
		t.Fatalf("summary after reset %+v", s)
	}
}
