package tui_test

import (
	"strings"
	"testing"

	"github.com/abdidvp/ftf/internal/adapters/outbound/tui"
	"github.com/abdidvp/ftf/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleCorrections() []domain.CorrectedCommand {
	return []domain.CorrectedCommand{
		domain.NewCorrectedCommand("mkdir -p a/b", 100),
		domain.WithSideEffect("git push -u origin main", 600, "git fetch"),
	}
}

func TestRenderCorrections(t *testing.T) {
	out := tui.RenderCorrections(sampleCorrections())
	assert.Contains(t, out, "2 corrections")
	assert.Contains(t, out, "mkdir -p a/b")
	assert.Contains(t, out, "[100]")
	assert.Contains(t, out, "then git fetch")
	assert.Less(t, strings.Index(out, "mkdir -p a/b"), strings.Index(out, "git push"))
}

func TestRenderCorrections_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderCorrections(nil), "No corrections found")
}

func TestRenderRules(t *testing.T) {
	out := tui.RenderRules([]domain.RuleInfo{
		{Name: "mkdir_p", Priority: 150, Enabled: true, RequiresOutput: true},
		{Name: "git_branch_delete", Priority: 500, Enabled: false, RequiresOutput: true},
		{Name: "custom", Priority: 1000, Enabled: true},
	})
	assert.Contains(t, out, "RULE")
	assert.Contains(t, out, "mkdir_p")
	assert.Contains(t, out, "150")
	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, "optional")
	assert.Contains(t, out, "3 rules, 2 enabled")
}
