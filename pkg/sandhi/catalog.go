package sandhi

import (
	"fmt"
	"sort"
)

// Catalog is the immutable rule set. Construct it once with NewCatalog and
// share it freely; all accessors return copies of the internal slices.
type Catalog struct {
	rules []Rule
	byID  map[string]*Rule
}

// NewCatalog assembles the full rule set and validates its integrity:
// unique IDs, priorities in [1,10], and every example triple reproducing
// its combined form through ForwardApply. A violation is a programming
// error in the rule tables and fails construction.
func NewCatalog() (*Catalog, error) {
	var rules []Rule
	rules = append(rules, vowelRules()...)
	rules = append(rules, consonantRules()...)
	rules = append(rules, visargaRules()...)
	rules = append(rules, specialRules()...)

	c := &Catalog{
		rules: rules,
		byID:  make(map[string]*Rule, len(rules)),
	}
	for i := range c.rules {
		r := &c.rules[i]
		if r.ID == "" {
			return nil, fmt.Errorf("sandhi: rule %d has empty id", i)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("sandhi: duplicate rule id %s", r.ID)
		}
		if r.Priority < 1 || r.Priority > 10 {
			return nil, fmt.Errorf("sandhi: rule %s priority %d out of range [1,10]", r.ID, r.Priority)
		}
		for _, ex := range r.Examples {
			got, ok := r.ForwardApply(ex.Left, ex.Right)
			if !ok {
				return nil, fmt.Errorf("sandhi: rule %s does not apply to its own example (%s, %s)",
					r.ID, ex.Left, ex.Right)
			}
			if got != ex.Combined {
				return nil, fmt.Errorf("sandhi: rule %s example (%s, %s) produced %s, want %s",
					r.ID, ex.Left, ex.Right, got, ex.Combined)
			}
		}
		c.byID[r.ID] = r
	}
	return c, nil
}

// Len returns the number of rules in the catalog.
func (c *Catalog) Len() int { return len(c.rules) }

// Rules returns all rules in catalog order.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Rule looks up a rule by its ID.
func (c *Catalog) Rule(id string) (*Rule, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// RulesInCategory returns the rules of one category in catalog order.
func (c *Catalog) RulesInCategory(cat Category) []Rule {
	var out []Rule
	for _, r := range c.rules {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

// RulesAtOrAbovePriority returns rules with priority >= min. This backs the
// fast mode that only tries the common rules.
func (c *Catalog) RulesAtOrAbovePriority(min int) []Rule {
	var out []Rule
	for _, r := range c.rules {
		if r.Priority >= min {
			out = append(out, r)
		}
	}
	return out
}

// ApplicableRules returns every rule whose boundary condition holds between
// left and right, sorted by priority descending. The sort is stable, so
// equal-priority rules keep catalog order and the result is deterministic.
// Vedic-only rules are skipped unless vedic is set.
func (c *Catalog) ApplicableRules(left, right string, vedic bool) []*Rule {
	var out []*Rule
	for i := range c.rules {
		r := &c.rules[i]
		if r.VedicOnly && !vedic {
			continue
		}
		if r.Applies(left, right) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}
