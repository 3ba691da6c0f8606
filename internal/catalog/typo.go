package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/abdidvp/ftf/internal/domain"
	"github.com/abdidvp/ftf/internal/domain/fuzzy"
	"github.com/abdidvp/ftf/internal/domain/rules"
)

// maxTypoDistance bounds how far a typed word may be from its correction.
const maxTypoDistance = 2

// KnownCommands is the default vocabulary for no_command. Earlier entries
// win ties.
var KnownCommands = []string{
	"git", "ls", "cd", "cat", "cp", "mv", "rm", "mkdir", "grep", "find",
	"sed", "awk", "make", "go", "cargo", "npm", "yarn", "pip", "python",
	"python3", "node", "docker", "kubectl", "ssh", "scp", "curl", "wget",
	"vim", "nano", "less", "tar", "chmod", "chown", "sudo", "apt", "brew",
	"echo", "touch", "man", "top", "kill", "ps",
}

// GitSubcommands is the vocabulary for git_not_command.
var GitSubcommands = []string{
	"status", "add", "commit", "push", "pull", "fetch", "checkout", "switch",
	"branch", "merge", "rebase", "log", "diff", "stash", "reset", "restore",
	"clone", "init", "remote", "tag", "show", "cherry-pick", "revert",
	"bisect", "blame", "grep", "config", "clean", "mv", "rm",
}

var (
	notFoundBash  = regexp.MustCompile(`(\S+): command not found`)
	notFoundZsh   = regexp.MustCompile(`command not found: (\S+)`)
	gitNotCommand = regexp.MustCompile(`git: '([^']+)' is not a git command`)
	gitSimilar    = regexp.MustCompile(`(?m)^\t+(\S+)\s*$`)
)

func Typos(env Env) []domain.Rule {
	vocab := env.Commands
	if len(vocab) == 0 {
		vocab = KnownCommands
	}
	return []domain.Rule{
		&noCommandRule{commands: vocab},
		&gitNotCommandRule{},
		must(rules.NewFuzzy("sl_ls").
			MatchCommand("sl").
			MatchOutput("command not found").
			Threshold(0).
			Priority(950).
			Replace("ls").
			Build()),
	}
}

// noCommandRule replaces an unknown program name with the closest known one.
type noCommandRule struct {
	domain.RuleDefaults
	commands []string
}

func (r *noCommandRule) Name() string  { return "no_command" }
func (r *noCommandRule) Priority() int { return 900 }

func (r *noCommandRule) Matches(cmd domain.Command) bool {
	return r.missing(cmd) != ""
}

func (r *noCommandRule) NewCommands(cmd domain.Command) []string {
	word := r.missing(cmd)
	if word == "" {
		return nil
	}
	fix, ok := fuzzy.Closest(word, r.commands, maxTypoDistance)
	if !ok {
		return nil
	}
	rest := strings.TrimPrefix(strings.TrimLeftFunc(cmd.Script, unicode.IsSpace), word)
	return []string{fix + rest}
}

// missing returns the program name the shell could not find, provided it is
// the first word of the script.
func (r *noCommandRule) missing(cmd domain.Command) string {
	parts := cmd.ScriptParts()
	if len(parts) == 0 {
		return ""
	}
	for _, re := range []*regexp.Regexp{notFoundZsh, notFoundBash} {
		if m := re.FindStringSubmatch(cmd.Output); m != nil && m[1] == parts[0] {
			return m[1]
		}
	}
	return ""
}

// gitNotCommandRule fixes a mistyped git subcommand, preferring the
// suggestions git prints itself.
type gitNotCommandRule struct {
	domain.RuleDefaults
}

func (r *gitNotCommandRule) Name() string  { return "git_not_command" }
func (r *gitNotCommandRule) Priority() int { return 850 }

func (r *gitNotCommandRule) Matches(cmd domain.Command) bool {
	m := gitNotCommand.FindStringSubmatch(cmd.Output)
	return m != nil && strings.HasPrefix(cmd.Script, "git ") && strings.Contains(cmd.Script, m[1])
}

func (r *gitNotCommandRule) NewCommands(cmd domain.Command) []string {
	m := gitNotCommand.FindStringSubmatch(cmd.Output)
	if m == nil {
		return nil
	}
	typo := m[1]
	var out []string
	if i := strings.Index(cmd.Output, "The most similar command"); i >= 0 {
		for _, s := range gitSimilar.FindAllStringSubmatch(cmd.Output[i:], -1) {
			out = append(out, strings.Replace(cmd.Script, typo, s[1], 1))
		}
	}
	if fix, ok := fuzzy.Closest(typo, GitSubcommands, maxTypoDistance); ok {
		out = append(out, strings.Replace(cmd.Script, typo, fix, 1))
	}
	return out
}
