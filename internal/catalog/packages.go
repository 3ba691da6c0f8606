package catalog

import (
	"github.com/abdidvp/ftf/internal/domain"
	"github.com/abdidvp/ftf/internal/domain/rules"
)

func PackageManagers() []domain.Rule {
	return []domain.Rule{
		rules.NewLiteral("apt_autoremove").
			MatchCommand("apt remove").
			MatchOutput("WARNING: The following").
			Priority(600).
			Replace("apt remove", "apt autoremove"),
		rules.NewLiteral("apt_get_search").
			MatchCommand("apt search").
			MatchOutput("E: Invalid operation").
			Priority(500).
			Replace("apt search", "apt-cache search"),
		rules.NewLiteral("apt_install_builddeps").
			MatchCommand("apt install").
			MatchOutput("error: you need to be root").
			Priority(700).
			Replace("apt install", "apt install build-essential"),
	}
}
