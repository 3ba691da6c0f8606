package catalog

import (
	"path"
	"strings"

	"github.com/abdidvp/ftf/internal/domain"
	"github.com/abdidvp/ftf/internal/domain/rules"
)

func Filesystem() []domain.Rule {
	return []domain.Rule{
		rules.NewLiteral("mkdir_p").
			MatchCommand("mkdir ").
			MatchOutput("No such file or directory").
			Priority(100).
			Replace("mkdir ", "mkdir -p "),
		rules.NewLiteral("rm_recursive").
			MatchCommand("rm ").
			MatchOutput("Is a directory").
			Priority(200).
			Replace("rm ", "rm -r "),
		rules.NewLiteral("cp_recursive").
			MatchCommand("cp ").
			MatchOutput("Is a directory").
			Priority(300).
			Replace("cp ", "cp -r "),
		must(rules.NewRegex("mv_to_directory").
			MatchCommand(`^mv\s`).
			MatchOutput(`No such file or directory`).
			Priority(400).
			ReplaceWith(mkdirBeforeMove).
			Build()),
	}
}

// mkdirBeforeMove creates the destination's parent directory ahead of the
// move. Destinations without a directory part have nothing to create.
func mkdirBeforeMove(script string, _ []string) []string {
	parts := strings.Fields(script)
	if len(parts) < 3 {
		return nil
	}
	dest := parts[len(parts)-1]
	dir := dest
	if !strings.HasSuffix(dest, "/") {
		dir = path.Dir(dest)
	}
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" || dir == "." {
		return nil
	}
	return []string{"mkdir -p " + dir + " && " + script}
}
