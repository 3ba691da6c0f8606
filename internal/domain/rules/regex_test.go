package rules_test

import (
	"fmt"
	"regexp/syntax"
	"testing"

	"github.com/abdidvp/ftf/internal/domain"
	"github.com/abdidvp/ftf/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegex_CaptureGroups(t *testing.T) {
	rule, err := rules.NewRegex("git_push_branch").
		MatchCommand(`git push ([a-z]+)$`).
		ReplaceWith(func(_ string, groups []string) []string {
			return []string{fmt.Sprintf("git push -u origin %s", groups[1])}
		}).
		Build()
	require.NoError(t, err)

	cmd := domain.NewCommand("git push main", "", 0)
	assert.True(t, rule.Matches(cmd))
	assert.Equal(t, []string{"git push -u origin main"}, rule.NewCommands(cmd))
}

func TestRegex_OutputCapturesWhenNoCommandPattern(t *testing.T) {
	rule, err := rules.NewRegex("pathspec").
		MatchOutput(`pathspec '([a-z_-]+)' did not match`).
		ReplaceWith(func(_ string, groups []string) []string {
			return []string{"git checkout -b " + groups[1]}
		}).
		Build()
	require.NoError(t, err)

	cmd := domain.NewCommand("git checkout feature", "error: pathspec 'feature' did not match any file(s)", 1)
	assert.Equal(t, []string{"git checkout -b feature"}, rule.NewCommands(cmd))
}

func TestRegex_BothPatternsMustMatch(t *testing.T) {
	rule, err := rules.NewRegex("full").
		MatchCommand(`git`).
		MatchOutput(`error`).
		ReplaceTemplate("echo 'git error'")
	require.NoError(t, err)

	assert.True(t, rule.Matches(domain.NewCommand("git status", "error: not a repository", 1)))
	assert.False(t, rule.Matches(domain.NewCommand("git status", "On branch main", 0)))
}

func TestRegex_BuildValidation(t *testing.T) {
	noop := func(string, []string) []string { return nil }

	tests := []struct {
		name    string
		builder *rules.RegexBuilder
		want    error
	}{
		{"no patterns", rules.NewRegex("r").ReplaceWith(noop), domain.ErrMissingPattern},
		{"nothing at all", rules.NewRegex("r"), domain.ErrMissingPattern},
		{"no replacement", rules.NewRegex("r").MatchCommand(`ls`), domain.ErrMissingReplacement},
		{"bad command pattern", rules.NewRegex("r").MatchCommand(`git (push`).ReplaceWith(noop), domain.ErrInvalidPattern},
		{"bad output pattern", rules.NewRegex("r").MatchOutput(`[a-`).ReplaceWith(noop), domain.ErrInvalidPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := tt.builder.Build()
			assert.Nil(t, rule)
			assert.ErrorIs(t, err, tt.want)

			var be *domain.BuildError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, "r", be.Rule)
		})
	}
}

func TestRegex_InvalidPatternKeepsSyntaxError(t *testing.T) {
	_, err := rules.NewRegex("r").MatchCommand(`(unclosed`).ReplaceTemplate("x")
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrInvalidPattern)

	var syntaxErr *syntax.Error
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, syntax.ErrMissingParen, syntaxErr.Code)
}

func TestRegex_TemplateSubstitutesScriptGroups(t *testing.T) {
	rule, err := rules.NewRegex("swap").
		MatchCommand(`^(\w+) (\w+)$`).
		ReplaceTemplate("$2 $1")
	require.NoError(t, err)

	assert.Equal(t, []string{"world hello"}, rule.NewCommands(domain.NewCommand("hello world", "x", 1)))
}

func TestRegex_TemplateWholeMatch(t *testing.T) {
	rule, err := rules.NewRegex("sudo").MatchCommand(`^apt .*`).ReplaceTemplate("sudo $0")
	require.NoError(t, err)

	assert.Equal(t, []string{"sudo apt update"}, rule.NewCommands(domain.NewCommand("apt update", "x", 1)))
}

func TestRegex_TemplateWithoutPlaceholdersFallsBackToScript(t *testing.T) {
	rule, err := rules.NewRegex("git_push").MatchCommand(`git push$`).ReplaceTemplate("git push -u origin main")
	require.NoError(t, err)

	cmd := domain.NewCommand("git push", "Everything up-to-date", 0)
	assert.True(t, rule.Matches(cmd))
	assert.Equal(t, []string{"git push"}, rule.NewCommands(cmd))
}

func TestRegex_TemplateIgnoresOutputGroups(t *testing.T) {
	rule, err := rules.NewRegex("permission_denied").MatchOutput(`Permission denied`).ReplaceTemplate("sudo $0")
	require.NoError(t, err)

	cmd := domain.NewCommand("apt update", "Permission denied", 1)
	assert.True(t, rule.Matches(cmd))
	assert.Equal(t, []string{"apt update"}, rule.NewCommands(cmd))
}

func TestRegex_TemplateDoubleDigitGroups(t *testing.T) {
	rule, err := rules.NewRegex("many").
		MatchCommand(`(a)(b)(c)(d)(e)(f)(g)(h)(i)(j)`).
		ReplaceTemplate("$10-$1")
	require.NoError(t, err)

	assert.Equal(t, []string{"j-a"}, rule.NewCommands(domain.NewCommand("abcdefghij", "x", 1)))
}

func TestRegex_Attributes(t *testing.T) {
	rule, err := rules.NewRegex("attrs").
		Priority(500).
		RequiresOutput(false).
		EnabledByDefault(false).
		MatchCommand(`test`).
		ReplaceTemplate("corrected")
	require.NoError(t, err)

	assert.Equal(t, "attrs", rule.Name())
	assert.Equal(t, 500, rule.Priority())
	assert.False(t, rule.RequiresOutput())
	assert.False(t, rule.EnabledByDefault())
}

func TestRegex_TemplateDoesNotReexpandGroupText(t *testing.T) {
	rule, err := rules.NewRegex("echo").
		MatchCommand(`^ech (\S+) (\S+)$`).
		ReplaceTemplate("echo $1 $2")
	require.NoError(t, err)

	assert.Equal(t, []string{"echo hi $1"}, rule.NewCommands(domain.NewCommand("ech hi $1", "x", 1)))
}

func TestRegex_TemplateWholeMatchContainingPlaceholder(t *testing.T) {
	rule, err := rules.NewRegex("chmod").
		MatchCommand(`^(\.{0,2}/\S+).*$`).
		ReplaceTemplate("chmod +x $1 && $0")
	require.NoError(t, err)

	assert.Equal(t, []string{"chmod +x ./run$0.sh && ./run$0.sh"},
		rule.NewCommands(domain.NewCommand("./run$0.sh", "Permission denied", 126)))
}

func TestRegex_TemplateIndexPastLastGroupIsKept(t *testing.T) {
	rule, err := rules.NewRegex("short").
		MatchCommand(`^(a)(b)$`).
		ReplaceTemplate("$2$1 $10")
	require.NoError(t, err)

	assert.Equal(t, []string{"ba $10"}, rule.NewCommands(domain.NewCommand("ab", "x", 1)))
}
