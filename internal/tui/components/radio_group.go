package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RadioOption is one choice in a RadioGroup
type RadioOption struct {
	Label       string
	Description string
}

// RadioGroup is a single-choice list. Exactly one option is selected at all
// times; the cursor moves independently until Select is called.
type RadioGroup struct {
	Title    string
	Options  []RadioOption
	Selected int
	Cursor   int
	Focused  bool

	TitleStyle    lipgloss.Style
	ItemStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
	CursorStyle   lipgloss.Style
	HintStyle     lipgloss.Style
}

// NewRadioGroup creates a group with selected as both the choice and the cursor.
func NewRadioGroup(title string, options []RadioOption, selected int) RadioGroup {
	plain := lipgloss.NewStyle()
	g := RadioGroup{
		Title:         title,
		Options:       options,
		TitleStyle:    plain,
		ItemStyle:     plain,
		SelectedStyle: plain,
		CursorStyle:   plain,
		HintStyle:     plain,
	}
	g.SetSelected(selected)
	return g
}

// SetSelected moves the selection and cursor to i. Out of range values are ignored.
func (g *RadioGroup) SetSelected(i int) {
	if i < 0 || i >= len(g.Options) {
		return
	}
	g.Selected = i
	g.Cursor = i
}

// Up moves the cursor to the previous option, wrapping around.
func (g *RadioGroup) Up() {
	if len(g.Options) == 0 {
		return
	}
	g.Cursor = (g.Cursor - 1 + len(g.Options)) % len(g.Options)
}

// Down moves the cursor to the next option, wrapping around.
func (g *RadioGroup) Down() {
	if len(g.Options) == 0 {
		return
	}
	g.Cursor = (g.Cursor + 1) % len(g.Options)
}

// Select selects the option under the cursor and reports whether the
// selection changed.
func (g *RadioGroup) Select() bool {
	if g.Cursor == g.Selected || g.Cursor < 0 || g.Cursor >= len(g.Options) {
		return false
	}
	g.Selected = g.Cursor
	return true
}

// View renders the group. The cursor is only drawn while focused.
func (g RadioGroup) View() string {
	var b strings.Builder
	if g.Title != "" {
		b.WriteString(g.TitleStyle.Render(g.Title))
		b.WriteString("\n")
	}

	for i, opt := range g.Options {
		pointer := "  "
		if g.Focused && i == g.Cursor {
			pointer = g.CursorStyle.Render("> ")
		}

		mark := "( )"
		style := g.ItemStyle
		if i == g.Selected {
			mark = "(•)"
			style = g.SelectedStyle
		}

		b.WriteString(pointer)
		b.WriteString(style.Render(mark + " " + opt.Label))
		if i < len(g.Options)-1 {
			b.WriteString("\n")
		}
	}

	if g.Focused && g.Cursor >= 0 && g.Cursor < len(g.Options) {
		if desc := g.Options[g.Cursor].Description; desc != "" {
			b.WriteString("\n")
			b.WriteString(g.HintStyle.Render("  " + desc))
		}
	}

	return b.String()
}
