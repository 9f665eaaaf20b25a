package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wordchain/pkg/chain"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ModeListModel - Interactive mode selection
// =============================================================================

// ModeListModel is the bubbletea model for interactive mode selection.
type ModeListModel struct {
	Modes    []chain.Mode
	Cursor   int
	Selected chain.Mode
}

// NewModeListModel creates a mode list with every available mode.
func NewModeListModel() ModeListModel {
	return ModeListModel{Modes: chain.Modes()}
}

func (m ModeListModel) Init() tea.Cmd {
	return nil
}

func (m ModeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Modes)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Modes[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ModeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chaining Mode"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, mode := range m.Modes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		desc := ""
		if p, err := chain.ForMode(mode); err == nil {
			desc = p.Name()
		}
		line := fmt.Sprintf("%s%-8s  %s", cursor, mode, listDimStyle.Render(desc))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pickMode runs the mode picker. It returns an empty mode if the user quit
// without choosing.
func pickMode(ctx context.Context) (chain.Mode, error) {
	p := tea.NewProgram(NewModeListModel(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("mode picker: %w", err)
	}
	return final.(ModeListModel).Selected, nil
}
