package catalog

import (
	"regexp"
	"strings"

	"github.com/abdidvp/ftf/internal/domain"
	"github.com/abdidvp/ftf/internal/domain/rules"
)

func GitBranch() []domain.Rule {
	return []domain.Rule{
		rules.NewLiteral("git_branch_delete").
			MatchCommand("git branch -d").
			MatchOutput("error: The branch").
			Priority(500).
			Replace("git branch -d", "git branch -D"),
		must(rules.NewRegex("git_branch_exists").
			MatchCommand(`git checkout ([a-z_-]+)`).
			MatchOutput(`error: pathspec '([a-z_-]+)' did not match`).
			ReplaceWith(func(_ string, groups []string) []string {
				if len(groups) < 2 || groups[1] == "" {
					return nil
				}
				return []string{"git checkout -b " + groups[1]}
			}).
			Build()),
		rules.NewLiteral("git_branch_0flag").
			MatchCommand("git branch").
			MatchOutput("fatal: bad revision").
			Priority(400).
			Replace("git branch", "git branch -a"),
	}
}

func GitPushPull(env Env) []domain.Rule {
	return []domain.Rule{
		&pushUpstreamRule{branch: env.Branch},
		rules.NewLiteral("git_pull_rebase").
			MatchCommand("git pull").
			MatchOutput("Please specify which branch you want to merge with").
			Priority(500).
			Replace("git pull", "git pull --rebase origin"),
		rules.NewLiteral("git_push_force").
			MatchCommand("git push").
			MatchOutput("rejected").
			Priority(700).
			Replace("git push", "git push --force-with-lease"),
	}
}

func GitStaging() []domain.Rule {
	return []domain.Rule{
		rules.NewLiteral("git_add_all").
			MatchCommand("git commit").
			MatchOutput("fatal: your current branch is behind").
			Priority(800).
			Replace("git commit", "git add -A && git commit"),
		rules.NewLiteral("git_commit_amend").
			MatchCommand("git commit").
			MatchOutput("nothing to commit").
			Priority(550).
			Replace("git commit", "git commit --amend --no-edit"),
	}
}

var upstreamBranch = regexp.MustCompile(`fatal: The current branch (\S+) has no upstream branch`)

// pushUpstreamRule sets the upstream on a first push. When the branch is
// known, from the environment or from git's own message, the explicit form
// is proposed ahead of the bare one.
type pushUpstreamRule struct {
	domain.RuleDefaults
	branch string
}

func (r *pushUpstreamRule) Name() string  { return "git_push_set_upstream" }
func (r *pushUpstreamRule) Priority() int { return 600 }

func (r *pushUpstreamRule) Matches(cmd domain.Command) bool {
	return strings.Contains(cmd.Script, "git push") &&
		strings.Contains(cmd.Output, "fatal: The current branch")
}

func (r *pushUpstreamRule) NewCommands(cmd domain.Command) []string {
	bare := strings.Replace(cmd.Script, "git push", "git push -u origin", 1)
	branch := r.branch
	if branch == "" {
		if m := upstreamBranch.FindStringSubmatch(cmd.Output); m != nil {
			branch = m[1]
		}
	}
	if branch == "" || strings.Contains(cmd.Script, branch) {
		return []string{bare}
	}
	return []string{
		strings.Replace(cmd.Script, "git push", "git push -u origin "+branch, 1),
		bare,
	}
}
