package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/regexcat/regexcat/internal/clipboard"
)

// StatusStyles maps clipboard outcomes to how they are drawn
type StatusStyles struct {
	Copied lipgloss.Style
	Failed lipgloss.Style
	Notice lipgloss.Style
}

// RenderStatusLine renders the user-facing message for a clipboard result.
func RenderStatusLine(result clipboard.Result, styles StatusStyles) string {
	msg := result.Message()
	if msg == "" {
		return ""
	}

	switch result.Outcome {
	case clipboard.Copied:
		return styles.Copied.Render("✔ " + msg)
	case clipboard.Failed:
		return styles.Failed.Render("✘ " + msg)
	default:
		return styles.Notice.Render(msg)
	}
}
