package rules

import "github.com/abdidvp/ftf/internal/domain"

// WithPriority wraps rule so that it reports priority p. Everything else is
// delegated unchanged.
func WithPriority(rule domain.Rule, p int) domain.Rule {
	if o, ok := rule.(*priorityOverride); ok {
		rule = o.Rule
	}
	return &priorityOverride{Rule: rule, priority: p}
}

type priorityOverride struct {
	domain.Rule
	priority int
}

func (o *priorityOverride) Priority() int { return o.priority }
