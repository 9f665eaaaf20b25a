package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordchain/pkg/chain"
)

// modesCommand creates the command listing the chaining modes.
func (c *CLI) modesCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "modes",
		Aliases: []string{"list"},
		Short:   "List the available chaining modes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				for _, m := range chain.Modes() {
					fmt.Fprintln(c.out, m)
				}
				return nil
			}
			fmt.Fprintln(c.out, renderModes(c.defaultMode()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print mode names only")
	return cmd
}

// renderModes draws the mode table, marking the configured default.
func renderModes(defaultMode string) string {
	def, _ := chain.ParseMode(defaultMode)

	rows := make([][]string, 0, len(chain.Modes()))
	for _, m := range chain.Modes() {
		p, err := chain.ForMode(m)
		if err != nil {
			continue
		}
		mark := ""
		if m == def {
			mark = "default"
		}
		rows = append(rows, []string{string(m), p.Name(), strings.Join(m.Aliases(), ", "), mark})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Mode", "Description", "Aliases", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 3:
				return StyleSuccess
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
	return t.Render()
}
