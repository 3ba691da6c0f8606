package domain

import (
	"fmt"
	"strings"
)

// Command is one observed failure: the script that ran, what it printed and
// how it exited.
type Command struct {
	Script   string `json:"script"`
	Output   string `json:"output"`
	ExitCode int    `json:"exit_code"`
}

// NewCommand records one failed invocation.
func NewCommand(script, output string, exitCode int) Command {
	return Command{Script: script, Output: output, ExitCode: exitCode}
}

// ScriptParts splits the script on whitespace.
func (c Command) ScriptParts() []string {
	return strings.Fields(c.Script)
}

func (c Command) HasOutput() bool { return c.Output != "" }

func (c Command) String() string {
	return fmt.Sprintf("Command(script=%s, exit_code=%d, output_len=%d)", c.Script, c.ExitCode, len(c.Output))
}

// CorrectedCommand is one proposed fix. Lower Priority ranks first.
// SideEffect is an optional label; empty means none.
type CorrectedCommand struct {
	Script     string `json:"script"`
	Priority   int    `json:"priority"`
	SideEffect string `json:"side_effect,omitempty"`
}

// NewCorrectedCommand returns a candidate with no side effect.
func NewCorrectedCommand(script string, priority int) CorrectedCommand {
	return CorrectedCommand{Script: script, Priority: priority}
}

// WithSideEffect returns a candidate that also runs sideEffect.
func WithSideEffect(script string, priority int, sideEffect string) CorrectedCommand {
	return CorrectedCommand{Script: script, Priority: priority, SideEffect: sideEffect}
}

// Equal reports whether two corrections propose the same thing.
// Priority is deliberately not compared.
func (c CorrectedCommand) Equal(other CorrectedCommand) bool {
	return c.Script == other.Script && c.SideEffect == other.SideEffect
}

// Less orders corrections by priority alone.
func (c CorrectedCommand) Less(other CorrectedCommand) bool {
	return c.Priority < other.Priority
}
