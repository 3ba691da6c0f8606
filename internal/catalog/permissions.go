package catalog

import (
	"github.com/abdidvp/ftf/internal/domain"
	"github.com/abdidvp/ftf/internal/domain/rules"
)

func Permissions() []domain.Rule {
	return []domain.Rule{
		rules.NewLiteral("sudo_permission_denied").
			MatchOutput("Permission denied").
			Priority(100).
			Replace("", "sudo "),
		rules.NewLiteral("sudo_apt").
			MatchCommand("apt ").
			MatchOutput("E: Could not open lock file").
			Priority(200).
			Replace("apt ", "sudo apt "),
		must(rules.NewRegex("chmod_execute").
			MatchCommand(`^(\.{0,2}/\S+).*$`).
			MatchOutput(`Permission denied`).
			Priority(300).
			ReplaceTemplate("chmod +x $1 && $0")),
		rules.NewLiteral("chmod_recursive").
			MatchCommand("chmod ").
			MatchOutput("No such file or directory").
			Priority(400).
			Replace("chmod ", "chmod -R "),
	}
}
