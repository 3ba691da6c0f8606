package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abdidvp/ftf/internal/domain"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "down")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Cancel: key.NewBinding(key.WithKeys("ctrl+c", "esc", "q"), key.WithHelp("esc", "cancel")),
}

// SelectorModel lets the user pick one correction with the arrow keys.
type SelectorModel struct {
	choices []domain.CorrectedCommand
	cursor  int
	chosen  int
	done    bool
}

// NewSelector starts with the cursor on the first choice.
func NewSelector(choices []domain.CorrectedCommand) SelectorModel {
	return SelectorModel{choices: choices, chosen: -1}
}

func (m SelectorModel) Init() tea.Cmd { return nil }

func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else if len(m.choices) > 0 {
			m.cursor = len(m.choices) - 1
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case key.Matches(keyMsg, keys.Choose):
		if len(m.choices) > 0 {
			m.chosen = m.cursor
		}
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Cancel):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SelectorModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	for i, c := range m.choices {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + c.Script))
		} else {
			b.WriteString(dimStyle.Render("  " + c.Script))
		}
		b.WriteString(sideEffect(c))
		b.WriteString("\n")
	}
	b.WriteString(faintStyle.Render(helpLine(keys.Up, keys.Down, keys.Choose, keys.Cancel)))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the selected correction, if the user picked one.
func (m SelectorModel) Choice() (domain.CorrectedCommand, bool) {
	if m.chosen < 0 || m.chosen >= len(m.choices) {
		return domain.CorrectedCommand{}, false
	}
	return m.choices[m.chosen], true
}

// Select runs the selector on in/out and returns the user's pick.
func Select(choices []domain.CorrectedCommand, in io.Reader, out io.Writer) (domain.CorrectedCommand, bool, error) {
	p := tea.NewProgram(NewSelector(choices), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return domain.CorrectedCommand{}, false, fmt.Errorf("running selector: %w", err)
	}
	m, ok := final.(SelectorModel)
	if !ok {
		return domain.CorrectedCommand{}, false, nil
	}
	c, ok := m.Choice()
	return c, ok, nil
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		parts[i] = h.Key + " " + h.Desc
	}
	return strings.Join(parts, " · ")
}
