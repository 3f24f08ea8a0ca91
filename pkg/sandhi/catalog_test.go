package sandhi

import "testing"

func TestCatalogIntegrity(t *testing.T) {
	c := newTestCatalog(t)

	if c.Len() != 130 {
		t.Fatalf("catalog has %d rules, want 130", c.Len())
	}

	counts := map[Category]int{}
	seen := map[string]bool{}
	for _, r := range c.Rules() {
		if seen[r.ID] {
			t.Fatalf("duplicate rule id %s", r.ID)
		}
		seen[r.ID] = true
		if r.Priority < 1 || r.Priority > 10 {
			t.Fatalf("rule %s priority %d out of range", r.ID, r.Priority)
		}
		counts[r.Category]++
	}

	want := map[Category]int{
		CategoryVowel:     33,
		CategoryConsonant: 50,
		CategoryVisarga:   20,
		CategorySpecial:   27,
	}
	for cat, n := range want {
		if counts[cat] != n {
			t.Errorf("category %s has %d rules, want %d", cat, counts[cat], n)
		}
	}
}

func TestCatalogExamplesRoundTrip(t *testing.T) {
	c := newTestCatalog(t)
	for _, r := range c.Rules() {
		for _, ex := range r.Examples {
			got, ok := r.ForwardApply(ex.Left, ex.Right)
			if !ok {
				t.Errorf("rule %s does not apply to example (%q, %q)", r.ID, ex.Left, ex.Right)
				continue
			}
			if got != ex.Combined {
				t.Errorf("rule %s: ForwardApply(%q, %q) = %q, want %q",
					r.ID, ex.Left, ex.Right, got, ex.Combined)
			}
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	c := newTestCatalog(t)

	r, ok := c.Rule("VS01")
	if !ok || r.ID != "VS01" {
		t.Fatalf("Rule(VS01) = %v, %v", r, ok)
	}
	if _, ok := c.Rule("XX99"); ok {
		t.Fatal("unknown rule id must not resolve")
	}

	for _, r := range c.RulesInCategory(CategoryVisarga) {
		if r.Category != CategoryVisarga {
			t.Fatalf("rule %s has category %s", r.ID, r.Category)
		}
	}

	for _, r := range c.RulesAtOrAbovePriority(9) {
		if r.Priority < 9 {
			t.Fatalf("rule %s priority %d below cutoff", r.ID, r.Priority)
		}
	}
}

func TestApplicableRulesOrderingAndVedicFilter(t *testing.T) {
	c := newTestCatalog(t)

	rules := c.ApplicableRules("रामः", "अत्र", false)
	if len(rules) == 0 {
		t.Fatal("no applicable rules for रामः + अत्र")
	}
	if rules[0].ID != "VIS01" {
		t.Fatalf("best rule %s, want VIS01", rules[0].ID)
	}
	for i := 1; i < len(rules); i++ {
		if rules[i].Priority > rules[i-1].Priority {
			t.Fatalf("rules not sorted by priority: %s before %s", rules[i-1].ID, rules[i].ID)
		}
	}
	for _, r := range rules {
		if r.VedicOnly {
			t.Fatalf("vedic-only rule %s returned without vedic mode", r.ID)
		}
	}

	// Vedic mode is a superset.
	vedic := c.ApplicableRules("रामः", "अत्र", true)
	if len(vedic) < len(rules) {
		t.Fatalf("vedic mode returned fewer rules: %d < %d", len(vedic), len(rules))
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryVowel, "svara"},
		{CategoryConsonant, "vyanjana"},
		{CategoryVisarga, "visarga"},
		{CategorySpecial, "vishista"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}
