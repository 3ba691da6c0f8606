package domain

// DefaultPriority is the priority of a rule that does not choose one.
const DefaultPriority = 1000

// Rule recognizes a failure pattern and proposes fixes for it.
//
// Matches and NewCommands must be pure: they may be called concurrently on
// the same rule and must not mutate the command or the rule. A rule that
// cannot produce a fix reports a non-match instead of failing.
type Rule interface {
	Name() string
	Matches(cmd Command) bool
	// NewCommands returns candidate scripts for a command known to match,
	// most preferred first.
	NewCommands(cmd Command) []string
	Priority() int
	EnabledByDefault() bool
	// RequiresOutput rules are never evaluated against a command with empty
	// output. The engine enforces this, not the rule.
	RequiresOutput() bool
}

// RuleDefaults supplies the default Priority, EnabledByDefault and
// RequiresOutput for custom rules that embed it.
type RuleDefaults struct{}

func (RuleDefaults) Priority() int          { return DefaultPriority }
func (RuleDefaults) EnabledByDefault() bool { return true }
func (RuleDefaults) RequiresOutput() bool   { return true }

// CorrectedCommands turns a rule's scripts into ranked corrections. The i-th
// script gets priority (i+1) * rule.Priority(), so later suggestions from the
// same rule always rank below earlier ones.
func CorrectedCommands(rule Rule, cmd Command) []CorrectedCommand {
	scripts := rule.NewCommands(cmd)
	if len(scripts) == 0 {
		return nil
	}
	base := rule.Priority()
	out := make([]CorrectedCommand, 0, len(scripts))
	for i, script := range scripts {
		out = append(out, NewCorrectedCommand(script, (i+1)*base))
	}
	return out
}

// RuleInfo is a display summary of a registered rule.
type RuleInfo struct {
	Name           string `json:"name"`
	Priority       int    `json:"priority"`
	Enabled        bool   `json:"enabled"`
	RequiresOutput bool   `json:"requires_output"`
}

// DescribeRule captures the attributes of r for listing.
func DescribeRule(r Rule) RuleInfo {
	return RuleInfo{
		Name:           r.Name(),
		Priority:       r.Priority(),
		Enabled:        r.EnabledByDefault(),
		RequiresOutput: r.RequiresOutput(),
	}
}
