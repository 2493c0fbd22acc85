package availability

import "github.com/m04kA/SMC-SalonBookingService/internal/domain"

// Rule is the blocking strategy of one service identifier
type Rule struct {
	Kind       domain.RuleKind
	BlockHours int
}

// Block returns the hours occupied by a service starting at start.
// The result is not clipped to the operating hours.
func (r Rule) Block(start, duration int, day domain.OperatingHours) []int {
	switch r.Kind {
	case domain.RuleWholeDay:
		return day.All()
	case domain.RuleFixed:
		return span(start, r.BlockHours)
	case domain.RuleVariable:
		return span(start, duration)
	default:
		return nil
	}
}

// span returns n consecutive hours from start; n below 1 is treated as 1
func span(start, n int) []int {
	if n < 1 {
		n = 1
	}
	hours := make([]int, n)
	for i := range hours {
		hours[i] = start + i
	}
	return hours
}

// RuleSet maps a service identifier to its blocking rule
type RuleSet map[string]Rule

// NewRuleSet builds a rule set from domain rules; later entries win
func NewRuleSet(rules []domain.ServiceRule) RuleSet {
	set := make(RuleSet, len(rules))
	for _, r := range rules {
		set[r.ServiceID] = Rule{Kind: r.Kind, BlockHours: r.BlockHours}
	}
	return set
}

// DefaultRuleSet returns the built-in catalog rules
func DefaultRuleSet() RuleSet {
	return NewRuleSet(domain.DefaultServiceRules())
}

// Lookup returns the rule of serviceID
func (s RuleSet) Lookup(serviceID string) (Rule, bool) {
	r, ok := s[serviceID]
	return r, ok
}
