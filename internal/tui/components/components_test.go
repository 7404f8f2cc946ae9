package components

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/regexcat/regexcat/internal/clipboard"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func threeOptions() []RadioOption {
	return []RadioOption{
		{Label: "One", Description: "first"},
		{Label: "Two", Description: "second"},
		{Label: "Three", Description: "third"},
	}
}

func TestRadioGroup_NavigationWraps(t *testing.T) {
	g := NewRadioGroup("Pick", threeOptions(), 0)

	g.Up()
	assert.Equal(t, 2, g.Cursor)
	g.Down()
	assert.Equal(t, 0, g.Cursor)
	g.Down()
	assert.Equal(t, 1, g.Cursor)
	assert.Equal(t, 0, g.Selected, "moving the cursor does not change the selection")
}

func TestRadioGroup_Select(t *testing.T) {
	g := NewRadioGroup("Pick", threeOptions(), 1)

	assert.False(t, g.Select(), "selecting the current option is not a change")

	g.Down()
	assert.True(t, g.Select())
	assert.Equal(t, 2, g.Selected)
}

func TestRadioGroup_SetSelectedIgnoresOutOfRange(t *testing.T) {
	g := NewRadioGroup("Pick", threeOptions(), 1)
	g.SetSelected(7)
	g.SetSelected(-1)
	assert.Equal(t, 1, g.Selected)
	assert.Equal(t, 1, g.Cursor)
}

func TestRadioGroup_EmptyIsSafe(t *testing.T) {
	g := NewRadioGroup("", nil, 0)
	g.Up()
	g.Down()
	assert.False(t, g.Select())
	assert.Empty(t, g.View())
}

func TestRadioGroup_View(t *testing.T) {
	g := NewRadioGroup("Pick", threeOptions(), 1)

	out := plain(g.View())
	lines := strings.Split(out, "\n")
	assert.Equal(t, []string{"Pick", "  ( ) One", "  (•) Two", "  ( ) Three"}, lines)

	g.Focused = true
	g.Down()
	out = plain(g.View())
	assert.Contains(t, out, "> ( ) Three")
	assert.Contains(t, out, "third")
	assert.NotContains(t, out, "second")
}

func TestRenderStatusLine(t *testing.T) {
	plainStyle := lipgloss.NewStyle()
	styles := StatusStyles{Copied: plainStyle, Failed: plainStyle, Notice: plainStyle}

	assert.Equal(t, "✔ Output automatically copied to clipboard!",
		plain(RenderStatusLine(clipboard.Result{Outcome: clipboard.Copied}, styles)))
	assert.Equal(t, "✘ Failed to copy output to clipboard: denied",
		plain(RenderStatusLine(clipboard.Result{Outcome: clipboard.Failed, Err: errors.New("denied")}, styles)))
	assert.Equal(t, "No URLs to process or output is empty.",
		plain(RenderStatusLine(clipboard.Result{Outcome: clipboard.Empty}, styles)))
	assert.Empty(t, RenderStatusLine(clipboard.Result{Outcome: clipboard.Outcome(42)}, styles))
}

func TestRenderTabBar(t *testing.T) {
	out := plain(RenderTabBar([]Tab{
		{Label: "Input", Count: 3},
		{Label: "Clean-Up", Count: -1},
	}, 0, lipgloss.NewStyle(), lipgloss.NewStyle()))

	assert.Equal(t, "Input (3)Clean-Up", out)
}
