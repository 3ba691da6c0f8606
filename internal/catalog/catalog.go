// Package catalog holds the built-in correction rules shipped with ftf.
package catalog

import "github.com/abdidvp/ftf/internal/domain"

// Env carries facts about the environment the failed command ran in.
// Zero values are valid and mean "unknown".
type Env struct {
	// Branch is the current git branch of the working directory.
	Branch string
	// Commands overrides the command names the typo rules correct towards.
	Commands []string
}

// All returns every built-in rule in registration order.
func All(env Env) []domain.Rule {
	var out []domain.Rule
	out = append(out, GitBranch()...)
	out = append(out, GitPushPull(env)...)
	out = append(out, GitStaging()...)
	out = append(out, Filesystem()...)
	out = append(out, Permissions()...)
	out = append(out, PackageManagers()...)
	out = append(out, Typos(env)...)
	return out
}

// Names lists the names of the built-in rules.
func Names() []string {
	rules := All(Env{})
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name()
	}
	return names
}

// must unwraps builder results for patterns fixed at compile time.
func must(rule domain.Rule, err error) domain.Rule {
	if err != nil {
		panic(err)
	}
	return rule
}
