package rules_test

import (
	"testing"

	"github.com/abdidvp/ftf/internal/domain"
	"github.com/abdidvp/ftf/internal/domain/rules"
	"github.com/stretchr/testify/assert"
)

func TestLiteral_MatchAndReplace(t *testing.T) {
	rule := rules.NewLiteral("git_branch_delete").
		MatchCommand("git branch -d").
		MatchOutput("If you are sure").
		Replace("-d", "-D")

	cmd := domain.NewCommand("git branch -d feature", "If you are sure you want to delete it", 1)
	assert.True(t, rule.Matches(cmd))
	assert.Equal(t, []string{"git branch -D feature"}, rule.NewCommands(cmd))
}

func TestLiteral_RoundTrip(t *testing.T) {
	rule := rules.NewLiteral("x_to_y").Replace("X", "Y")
	cmd := domain.NewCommand("aXb", "out", 1)

	assert.True(t, rule.Matches(cmd))
	assert.Equal(t, []string{"aYb"}, rule.NewCommands(cmd))
}

func TestLiteral_ReplacesAllOccurrences(t *testing.T) {
	rule := rules.NewLiteral("t").MatchCommand("test").MatchOutput("error").Replace("test", "test2")
	cmd := domain.NewCommand("test test command", "error occurred", 1)
	assert.Equal(t, []string{"test2 test2 command"}, rule.NewCommands(cmd))
}

func TestLiteral_EmptyFindPrependsOnce(t *testing.T) {
	rule := rules.NewLiteral("sudo").MatchOutput("Permission denied").Replace("", "sudo ")
	cmd := domain.NewCommand("cat /etc/shadow", "cat: /etc/shadow: Permission denied", 1)

	assert.True(t, rule.Matches(cmd))
	assert.Equal(t, []string{"sudo cat /etc/shadow"}, rule.NewCommands(cmd))
}

func TestLiteral_UnsetPatternsAlwaysMatch(t *testing.T) {
	rule := rules.NewLiteral("any").Replace("a", "b")
	assert.True(t, rule.Matches(domain.NewCommand("", "", 0)))
}

func TestLiteral_EachPatternConstrains(t *testing.T) {
	rule := rules.NewLiteral("both").MatchCommand("git").MatchOutput("error").Replace("git", "hub")

	assert.False(t, rule.Matches(domain.NewCommand("git status", "fine", 0)))
	assert.False(t, rule.Matches(domain.NewCommand("svn status", "error", 1)))
	assert.True(t, rule.Matches(domain.NewCommand("git status", "error", 1)))
}

func TestLiteral_WithoutReplacementProposesNothing(t *testing.T) {
	rule := rules.NewLiteral("noop").MatchCommand("ls").Build()
	cmd := domain.NewCommand("ls", "x", 1)
	assert.True(t, rule.Matches(cmd))
	assert.Empty(t, rule.NewCommands(cmd))
}

func TestLiteral_Attributes(t *testing.T) {
	rule := rules.NewLiteral("attrs").Replace("a", "b")
	assert.Equal(t, "attrs", rule.Name())
	assert.Equal(t, 1000, rule.Priority())
	assert.True(t, rule.RequiresOutput())
	assert.True(t, rule.EnabledByDefault())

	custom := rules.NewLiteral("custom").
		Priority(500).
		RequiresOutput(false).
		EnabledByDefault(false).
		Replace("a", "b")
	assert.Equal(t, 500, custom.Priority())
	assert.False(t, custom.RequiresOutput())
	assert.False(t, custom.EnabledByDefault())
}
