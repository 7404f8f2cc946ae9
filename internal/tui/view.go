package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/regexcat/regexcat/internal/tui/components"
)

const subtitle = "Regex Concatenation Tool"

func (m RootModel) View() string {
	width := m.width
	if width <= 0 {
		width = DefaultWidth
	}
	paneWidth := width - 4

	header := lipgloss.JoinVertical(lipgloss.Left,
		RenderLogo(),
		SubtitleStyle.Render(subtitle),
	)

	tabs := components.RenderTabBar([]components.Tab{
		{Label: "Input", Count: m.run.Lines},
		{Label: "Clean-Up", Count: -1},
		{Label: "Matching", Count: -1},
	}, int(m.focus), ActiveTabStyle, TabStyle)

	options := m.renderOptions(paneWidth)

	inputStyle := PaneStyle
	if m.focus == focusInput {
		inputStyle = ActivePaneStyle
	}
	inputPane := inputStyle.Width(paneWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		PaneTitleStyle.Render("Input your list of URLs"),
		HintStyle.Render("One URL per line."),
		m.input.View(),
	))

	outputPane := OutputPaneStyle.Width(paneWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		PaneTitleStyle.Render(m.outputTitle()),
		m.renderPattern(paneWidth-4),
	))

	sections := []string{header, tabs, options, inputPane, outputPane}
	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.help.View(m.keys))

	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m RootModel) outputTitle() string {
	if m.service.AutoCopy() {
		return "Output (Automatically Copied to Clipboard):"
	}
	return "Output (Copy to Clipboard with " + m.keys.Copy.Help().Key + "):"
}

func (m RootModel) renderOptions(width int) string {
	cleanupStyle, matchingStyle := PaneStyle, PaneStyle
	switch m.focus {
	case focusCleanup:
		cleanupStyle = ActivePaneStyle
	case focusMatching:
		matchingStyle = ActivePaneStyle
	}

	cleanup := cleanupStyle.Render(m.cleanup.View())
	matching := matchingStyle.Render(m.matching.View())

	// Side by side when both fit, stacked otherwise
	if lipgloss.Width(cleanup)+lipgloss.Width(matching) <= width {
		return lipgloss.JoinHorizontal(lipgloss.Top, cleanup, matching)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cleanup, matching)
}

func (m RootModel) renderPattern(width int) string {
	if m.run.Pattern == "" {
		return PlaceholderStyle.Render("Nothing to show yet.")
	}
	if width < 1 {
		width = 1
	}
	return PatternStyle.Render(wrapHard(m.run.Pattern, width))
}

// wrapHard breaks s every width runes. Patterns have no spaces to wrap on.
func wrapHard(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(runes); i += width {
		if i > 0 {
			b.WriteString("\n")
		}
		end := min(i+width, len(runes))
		b.WriteString(string(runes[i:end]))
	}
	return b.String()
}

func (m RootModel) renderStatus() string {
	if m.notice != "" {
		return StatusFailedStyle.Render(m.notice)
	}
	if !m.hasStatus {
		return ""
	}
	return components.RenderStatusLine(m.run.Result, components.StatusStyles{
		Copied: StatusCopiedStyle,
		Failed: StatusFailedStyle,
		Notice: StatusNoticeStyle,
	})
}
