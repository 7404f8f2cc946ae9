package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/regexcat/regexcat/internal/tui/colors"
)

// Re-export colors from colors package so views only import tui
var (
	ColorNeonPurple  = colors.NeonPurple
	ColorNeonPink    = colors.NeonPink
	ColorNeonCyan    = colors.NeonCyan
	ColorGray        = colors.Gray
	ColorLightGray   = colors.LightGray
	ColorWhite       = colors.White
	ColorStateCopied = colors.StateCopied
	ColorStateFailed = colors.StateFailed
	ColorStateNotice = colors.StateNotice
)

// === Layout Styles ===
var (
	AppStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Padding(0, 1)

	// Standard pane border
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	// Focus style for the active pane
	ActivePaneStyle = PaneStyle.
			BorderForeground(ColorNeonPink)

	// Read-only output pane
	OutputPaneStyle = PaneStyle.
			BorderForeground(ColorNeonCyan)

	// === Text Styles ===

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorLightGray).
			Italic(true)

	// Helper for bold titles inside panes
	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(ColorNeonCyan).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorLightGray)

	PatternStyle = lipgloss.NewStyle().
			Foreground(ColorNeonPink)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorGray).
				Italic(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorLightGray).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(ColorNeonPink).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorNeonPink).
			Padding(0, 1).
			Bold(true)

	// Radio option styles
	RadioStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	RadioSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorNeonPink).
				Bold(true)

	RadioCursorStyle = lipgloss.NewStyle().
				Foreground(ColorNeonPurple)

	// Status line styles
	StatusCopiedStyle = lipgloss.NewStyle().
				Foreground(ColorStateCopied)

	StatusFailedStyle = lipgloss.NewStyle().
				Foreground(ColorStateFailed).
				Bold(true)

	StatusNoticeStyle = lipgloss.NewStyle().
				Foreground(ColorStateNotice)
)
