package domain

import "fmt"

// ResolveRule selects the single best-matching active rule for an event.
//
// Soft-deleted rules are skipped. Among matching rules the one with the
// highest specificity wins; specificity ties are broken by ascending Order.
// A tie on both is a configuration defect and surfaces as
// ErrAmbiguousRuleMatch instead of an arbitrary pick, because silently
// choosing a rule would misdirect the posting.
//
// The function is pure: identical inputs always resolve to the same rule.
// The caller supplies a consistent snapshot of the rule table.
func ResolveRule(event FinancialEvent, rules []*AccountingRule) (*AccountingRule, error) {
	var best *AccountingRule

	bestSpec := -1
	ambiguous := false

	for _, r := range rules {
		if r == nil || r.Deleted || !r.Matches(event) {
			continue
		}

		spec := r.Specificity()

		switch {
		case spec > bestSpec:
			best, bestSpec, ambiguous = r, spec, false
		case spec == bestSpec:
			switch {
			case r.Order < best.Order:
				best, ambiguous = r, false
			case r.Order == best.Order:
				ambiguous = true
			}
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: event type %q attribute %q", ErrNoMatchingRule, event.Type, event.Attribute)
	}

	if ambiguous {
		return nil, fmt.Errorf("%w: multiple rules with specificity %d and order %d match event type %q",
			ErrAmbiguousRuleMatch, bestSpec, best.Order, event.Type)
	}

	return best, nil
}
