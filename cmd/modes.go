package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/regexcat/regexcat/internal/pattern"
	"github.com/regexcat/regexcat/internal/tui/colors"
)

const exampleURL = "http://www.example.com/category/product"

var (
	headerStyle = lipgloss.NewStyle().Foreground(colors.NeonCyan).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(colors.NeonPink).Bold(true)
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List clean-up and matching modes",
		Long:  fmt.Sprintf("Show every mode name and alias accepted by --cleanup and --match, applied to %s.", exampleURL),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Clean-up modes (--cleanup)"))
			fmt.Fprintln(out, cleanupTable())
			fmt.Fprintln(out)
			fmt.Fprintln(out, titleStyle.Render("Matching modes (--match)"))
			fmt.Fprintln(out, matchingTable())
			return nil
		},
	}
}

func cleanupTable() string {
	rows := make([][]string, 0, len(pattern.CleanupModes()))
	for _, m := range pattern.CleanupModes() {
		info := m.Info()
		rows = append(rows, []string{info.Name, info.Alias, info.Description, pattern.Clean(exampleURL, m)})
	}
	return renderTable([]string{"NAME", "ALIAS", "DESCRIPTION", "EXAMPLE"}, rows)
}

func matchingTable() string {
	cleaned := pattern.Clean(exampleURL, pattern.RemoveSchemeSubdomainDomain)
	rows := make([][]string, 0, len(pattern.MatchingModes()))
	for _, m := range pattern.MatchingModes() {
		info := m.Info()
		rows = append(rows, []string{info.Name, info.Alias, info.Description, pattern.Suffix(cleaned, m)})
	}
	return renderTable([]string{"NAME", "ALIAS", "DESCRIPTION", "EXAMPLE"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colors.Gray)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
