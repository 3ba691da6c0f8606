// Package rules builds domain.Rule values from declarative descriptions:
// literal substrings, regular expressions with capture groups, and
// approximate text similarity.
package rules

import (
	"strings"

	"github.com/abdidvp/ftf/internal/domain"
)

// LiteralBuilder builds rules that match on plain substrings and fix the
// script with a literal find/replace.
type LiteralBuilder struct {
	name           string
	matchCmd       *string
	matchOut       *string
	priority       int
	requiresOutput bool
	enabled        bool
}

// NewLiteral starts a literal rule named name.
func NewLiteral(name string) *LiteralBuilder {
	return &LiteralBuilder{
		name:           name,
		priority:       domain.DefaultPriority,
		requiresOutput: true,
		enabled:        true,
	}
}

// MatchCommand requires the script to contain s.
func (b *LiteralBuilder) MatchCommand(s string) *LiteralBuilder {
	b.matchCmd = &s
	return b
}

// MatchOutput requires the output to contain s.
func (b *LiteralBuilder) MatchOutput(s string) *LiteralBuilder {
	b.matchOut = &s
	return b
}

func (b *LiteralBuilder) Priority(p int) *LiteralBuilder {
	b.priority = p
	return b
}

func (b *LiteralBuilder) RequiresOutput(v bool) *LiteralBuilder {
	b.requiresOutput = v
	return b
}

func (b *LiteralBuilder) EnabledByDefault(v bool) *LiteralBuilder {
	b.enabled = v
	return b
}

// Replace builds a rule that replaces every occurrence of from with to in
// the script. An empty from prepends to once.
func (b *LiteralBuilder) Replace(from, to string) domain.Rule {
	r := b.rule()
	r.replace = &[2]string{from, to}
	return r
}

// Build returns a rule that matches but proposes nothing.
func (b *LiteralBuilder) Build() domain.Rule {
	return b.rule()
}

func (b *LiteralBuilder) rule() *literalRule {
	return &literalRule{
		name:           b.name,
		matchCmd:       b.matchCmd,
		matchOut:       b.matchOut,
		priority:       b.priority,
		requiresOutput: b.requiresOutput,
		enabled:        b.enabled,
	}
}

type literalRule struct {
	name           string
	matchCmd       *string
	matchOut       *string
	replace        *[2]string
	priority       int
	requiresOutput bool
	enabled        bool
}

func (r *literalRule) Name() string           { return r.name }
func (r *literalRule) Priority() int          { return r.priority }
func (r *literalRule) RequiresOutput() bool   { return r.requiresOutput }
func (r *literalRule) EnabledByDefault() bool { return r.enabled }

func (r *literalRule) Matches(cmd domain.Command) bool {
	if r.matchCmd != nil && !strings.Contains(cmd.Script, *r.matchCmd) {
		return false
	}
	if r.matchOut != nil && !strings.Contains(cmd.Output, *r.matchOut) {
		return false
	}
	return true
}

func (r *literalRule) NewCommands(cmd domain.Command) []string {
	if r.replace == nil {
		return nil
	}
	from, to := r.replace[0], r.replace[1]
	if from == "" {
		return []string{to + cmd.Script}
	}
	return []string{strings.ReplaceAll(cmd.Script, from, to)}
}
