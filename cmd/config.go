package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/regexcat/regexcat/internal/config"
	"github.com/regexcat/regexcat/internal/tui/colors"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(colors.NeonCyan).Width(22)
	valueStyle = lipgloss.NewStyle().Foreground(colors.NeonPink).Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(colors.LightGray)
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings and where they are read from",
		Long: fmt.Sprintf(`Print every setting after applying the settings file and environment
overrides (%s, %s, %s). The file is never written by regexcat.`,
			config.EnvCleanup, config.EnvMatch, config.EnvNoCopy),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			return printSettings(cmd.OutOrStdout(), config.GetSettingsPath(), settings)
		},
	}
}

func printSettings(w io.Writer, path string, settings *config.Settings) error {
	values, err := settingsValues(settings)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Settings file: %s\n", path)
	meta := config.GetSettingsMetadata()
	for _, category := range config.CategoryOrder() {
		fmt.Fprintf(w, "\n%s\n", titleStyle.Render(category))
		section := values[strings.ToLower(category)]
		for _, m := range meta[category] {
			fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(m.Label), valueStyle.Render(fmt.Sprint(section[m.Key])))
			fmt.Fprintf(w, "  %s\n", descStyle.Render(fmt.Sprintf("%s (%s)", m.Description, m.Key)))
		}
	}
	return nil
}

// settingsValues flattens settings into category -> json key -> value
func settingsValues(settings *config.Settings) (map[string]map[string]any, error) {
	data, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	var values map[string]map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return values, nil
}
