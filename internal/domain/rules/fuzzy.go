package rules

import (
	"github.com/abdidvp/ftf/internal/domain"
	"github.com/abdidvp/ftf/internal/domain/fuzzy"
)

// DefaultThreshold is the score a fuzzy match must exceed when no threshold
// is set.
const DefaultThreshold = 20

// FuzzyBuilder builds rules that match when the command approximately
// contains a target and always propose one fixed replacement.
type FuzzyBuilder struct {
	name           string
	cmdTarget      *string
	outTarget      *string
	replacement    *string
	threshold      int
	priority       int
	requiresOutput bool
	enabled        bool
}

// NewFuzzy starts a fuzzy rule named name.
func NewFuzzy(name string) *FuzzyBuilder {
	return &FuzzyBuilder{
		name:           name,
		threshold:      DefaultThreshold,
		priority:       domain.DefaultPriority,
		requiresOutput: true,
		enabled:        true,
	}
}

func (b *FuzzyBuilder) MatchCommand(target string) *FuzzyBuilder {
	b.cmdTarget = &target
	return b
}

func (b *FuzzyBuilder) MatchOutput(target string) *FuzzyBuilder {
	b.outTarget = &target
	return b
}

// Threshold sets the score a match must exceed, clamped to [0, 100].
func (b *FuzzyBuilder) Threshold(t int) *FuzzyBuilder {
	b.threshold = min(max(t, 0), 100)
	return b
}

func (b *FuzzyBuilder) Priority(p int) *FuzzyBuilder {
	b.priority = p
	return b
}

func (b *FuzzyBuilder) RequiresOutput(v bool) *FuzzyBuilder {
	b.requiresOutput = v
	return b
}

func (b *FuzzyBuilder) EnabledByDefault(v bool) *FuzzyBuilder {
	b.enabled = v
	return b
}

// Replace sets the fixed script the rule proposes.
func (b *FuzzyBuilder) Replace(replacement string) *FuzzyBuilder {
	b.replacement = &replacement
	return b
}

func (b *FuzzyBuilder) Build() (domain.Rule, error) {
	if b.cmdTarget == nil && b.outTarget == nil {
		return nil, b.fail(domain.ErrMissingPattern)
	}
	if b.replacement == nil {
		return nil, b.fail(domain.ErrMissingReplacement)
	}
	return &fuzzyRule{
		name:           b.name,
		cmdTarget:      b.cmdTarget,
		outTarget:      b.outTarget,
		replacement:    *b.replacement,
		threshold:      b.threshold,
		priority:       b.priority,
		requiresOutput: b.requiresOutput,
		enabled:        b.enabled,
	}, nil
}

func (b *FuzzyBuilder) fail(kind error) error {
	return &domain.BuildError{Builder: "fuzzy rule", Rule: b.name, Err: kind}
}

type fuzzyRule struct {
	name           string
	cmdTarget      *string
	outTarget      *string
	replacement    string
	threshold      int
	priority       int
	requiresOutput bool
	enabled        bool
}

func (r *fuzzyRule) Name() string           { return r.name }
func (r *fuzzyRule) Priority() int          { return r.priority }
func (r *fuzzyRule) RequiresOutput() bool   { return r.requiresOutput }
func (r *fuzzyRule) EnabledByDefault() bool { return r.enabled }

func (r *fuzzyRule) Matches(cmd domain.Command) bool {
	if r.cmdTarget != nil && !r.above(*r.cmdTarget, cmd.Script) {
		return false
	}
	if r.outTarget != nil && !r.above(*r.outTarget, cmd.Output) {
		return false
	}
	return true
}

func (r *fuzzyRule) above(target, text string) bool {
	score, ok := fuzzy.Score(target, text)
	return ok && score > r.threshold
}

func (r *fuzzyRule) NewCommands(domain.Command) []string {
	return []string{r.replacement}
}
