// Package engine evaluates rules against a failed command and ranks the
// corrections they propose.
package engine

import "github.com/abdidvp/ftf/internal/domain"

// Registry is an ordered collection of rules. Names are not required to be
// unique; rules with the same name all run.
//
// A Registry is not safe for concurrent mutation. Callers must not add rules
// while a Corrector built on it is evaluating.
type Registry struct {
	rules []domain.Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Add(rule domain.Rule) {
	r.rules = append(r.rules, rule)
}

func (r *Registry) AddAll(rules ...domain.Rule) {
	r.rules = append(r.rules, rules...)
}

func (r *Registry) Len() int { return len(r.rules) }

func (r *Registry) IsEmpty() bool { return len(r.rules) == 0 }

// Rules returns every rule in insertion order.
func (r *Registry) Rules() []domain.Rule {
	out := make([]domain.Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// EnabledRules returns the rules that are enabled by default, in insertion
// order.
func (r *Registry) EnabledRules() []domain.Rule {
	var out []domain.Rule
	for _, rule := range r.rules {
		if rule.EnabledByDefault() {
			out = append(out, rule)
		}
	}
	return out
}

// Corrector wraps the registry in a Corrector.
func (r *Registry) Corrector(opts ...Option) *Corrector {
	return NewCorrector(r, opts...)
}
