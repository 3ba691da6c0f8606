package rules

import (
	"regexp"
	"strconv"

	"github.com/abdidvp/ftf/internal/domain"
)

// ReplaceFunc produces candidate scripts from the original script and the
// capture groups of the pattern that matched. groups[0] is the whole match;
// groups that did not participate are empty.
type ReplaceFunc func(script string, groups []string) []string

// RegexBuilder builds rules that match with regular expressions and derive
// fixes from capture groups.
type RegexBuilder struct {
	name           string
	cmdPattern     *regexp.Regexp
	outPattern     *regexp.Regexp
	replace        ReplaceFunc
	priority       int
	requiresOutput bool
	enabled        bool
	err            error
}

// NewRegex starts a regex rule named name.
func NewRegex(name string) *RegexBuilder {
	return &RegexBuilder{
		name:           name,
		priority:       domain.DefaultPriority,
		requiresOutput: true,
		enabled:        true,
	}
}

// MatchCommand sets the pattern the script must match. A pattern that does
// not compile is reported by Build.
func (b *RegexBuilder) MatchCommand(pattern string) *RegexBuilder {
	b.cmdPattern = b.compile(pattern)
	return b
}

// MatchOutput sets the pattern the output must match. A pattern that does
// not compile is reported by Build.
func (b *RegexBuilder) MatchOutput(pattern string) *RegexBuilder {
	b.outPattern = b.compile(pattern)
	return b
}

func (b *RegexBuilder) compile(pattern string) *regexp.Regexp {
	re, err := regexp.Compile(pattern)
	if err != nil {
		if b.err == nil {
			b.err = b.fail(domain.ErrInvalidPattern, err)
		}
		return nil
	}
	return re
}

func (b *RegexBuilder) Priority(p int) *RegexBuilder {
	b.priority = p
	return b
}

func (b *RegexBuilder) RequiresOutput(v bool) *RegexBuilder {
	b.requiresOutput = v
	return b
}

func (b *RegexBuilder) EnabledByDefault(v bool) *RegexBuilder {
	b.enabled = v
	return b
}

func (b *RegexBuilder) ReplaceWith(fn ReplaceFunc) *RegexBuilder {
	b.replace = fn
	return b
}

// Build validates the builder and returns the rule.
func (b *RegexBuilder) Build() (domain.Rule, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.cmdPattern == nil && b.outPattern == nil {
		return nil, b.fail(domain.ErrMissingPattern, nil)
	}
	if b.replace == nil {
		return nil, b.fail(domain.ErrMissingReplacement, nil)
	}
	return &regexRule{
		name:           b.name,
		cmdPattern:     b.cmdPattern,
		outPattern:     b.outPattern,
		replace:        b.replace,
		priority:       b.priority,
		requiresOutput: b.requiresOutput,
		enabled:        b.enabled,
	}, nil
}

// ReplaceTemplate builds a rule whose single candidate is tmpl with $0, $1,
// ... replaced by the command pattern's capture groups. When substitution
// leaves tmpl unchanged, the original script is proposed instead.
func (b *RegexBuilder) ReplaceTemplate(tmpl string) (domain.Rule, error) {
	useGroups := b.cmdPattern != nil
	return b.ReplaceWith(func(script string, groups []string) []string {
		if !useGroups {
			return []string{script}
		}
		result := expandTemplate(tmpl, groups)
		if result == tmpl {
			return []string{script}
		}
		return []string{result}
	}).Build()
}

var placeholder = regexp.MustCompile(`\$(\d+)`)

// expandTemplate replaces each $N in one pass, so text coming from a group
// is never expanded again. $N reads all of its digits; an index past the
// last group is left untouched.
func expandTemplate(tmpl string, groups []string) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		i, err := strconv.Atoi(m[1:])
		if err != nil || i >= len(groups) {
			return m
		}
		return groups[i]
	})
}

func (b *RegexBuilder) fail(kind, cause error) error {
	return &domain.BuildError{Builder: "regex rule", Rule: b.name, Err: kind, Cause: cause}
}

type regexRule struct {
	name           string
	cmdPattern     *regexp.Regexp
	outPattern     *regexp.Regexp
	replace        ReplaceFunc
	priority       int
	requiresOutput bool
	enabled        bool
}

func (r *regexRule) Name() string           { return r.name }
func (r *regexRule) Priority() int          { return r.priority }
func (r *regexRule) RequiresOutput() bool   { return r.requiresOutput }
func (r *regexRule) EnabledByDefault() bool { return r.enabled }

func (r *regexRule) Matches(cmd domain.Command) bool {
	if r.cmdPattern != nil && !r.cmdPattern.MatchString(cmd.Script) {
		return false
	}
	if r.outPattern != nil && !r.outPattern.MatchString(cmd.Output) {
		return false
	}
	return true
}

func (r *regexRule) NewCommands(cmd domain.Command) []string {
	if r.cmdPattern != nil {
		if groups := r.cmdPattern.FindStringSubmatch(cmd.Script); groups != nil {
			return r.replace(cmd.Script, groups)
		}
	}
	if r.outPattern != nil {
		if groups := r.outPattern.FindStringSubmatch(cmd.Output); groups != nil {
			return r.replace(cmd.Script, groups)
		}
	}
	return nil
}
