package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/ftf/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	scriptStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderCorrections lists corrections best first, one per line.
func RenderCorrections(corrections []domain.CorrectedCommand) string {
	if len(corrections) == 0 {
		return RenderNoCorrections()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("ftf"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d corrections", len(corrections))))
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")
	for i, c := range corrections {
		b.WriteString(fmt.Sprintf("  %s %s%s  %s\n",
			dimStyle.Render(fmt.Sprintf("%2d.", i+1)),
			scriptStyle.Render(c.Script),
			sideEffect(c),
			faintStyle.Render(fmt.Sprintf("[%d]", c.Priority)),
		))
	}
	return b.String()
}

func RenderNoCorrections() string {
	return warnStyle.Render("No corrections found.") + "\n"
}

// RenderRules renders the rule table shown by `ftf rules`.
func RenderRules(rules []domain.RuleInfo) string {
	nameWidth := len("RULE")
	for _, r := range rules {
		nameWidth = max(nameWidth, len(r.Name))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %s  %8s  %-8s  %s",
		padRight("RULE", nameWidth), "PRIORITY", "STATUS", "OUTPUT")))
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")

	enabled := 0
	for _, r := range rules {
		status := failStyle.Render(padRight("disabled", 8))
		if r.Enabled {
			status = passStyle.Render(padRight("enabled", 8))
			enabled++
		}
		output := dimStyle.Render("optional")
		if r.RequiresOutput {
			output = dimStyle.Render("required")
		}
		b.WriteString(fmt.Sprintf("  %s  %8d  %s  %s\n",
			padRight(r.Name, nameWidth), r.Priority, status, output))
	}

	b.WriteString(separatorLine)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d rules, %d enabled", len(rules), enabled)))
	b.WriteString("\n")
	return b.String()
}

func sideEffect(c domain.CorrectedCommand) string {
	if c.SideEffect == "" {
		return ""
	}
	return dimStyle.Render(" (then " + c.SideEffect + ")")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
