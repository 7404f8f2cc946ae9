package tui

import (
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/regexcat/regexcat/internal/clipboard"
	"github.com/regexcat/regexcat/internal/core"
	"github.com/regexcat/regexcat/internal/pattern"
	"github.com/regexcat/regexcat/internal/tui/components"
)

const (
	// CopyDebounce is how long the input must stay unchanged before the
	// pattern is copied. Earlier runs are superseded, never copied.
	CopyDebounce = 300 * time.Millisecond

	DefaultWidth  = 80
	MinInputWidth = 20
	InputHeight   = 8
)

type focusArea int

const (
	focusInput focusArea = iota
	focusCleanup
	focusMatching
	focusCount
)

// copyTickMsg fires once the debounce for run seq has elapsed
type copyTickMsg struct {
	seq uint64
}

// copyResultMsg carries a published run back to the model
type copyResultMsg struct {
	run core.Run
}

// clipboardLoadedMsg replaces the input with the clipboard contents
type clipboardLoadedMsg struct {
	text string
	err  error
}

var readClipboard = clipboard.ReadText

type RootModel struct {
	service core.PatternService
	ctx     context.Context
	cancel  context.CancelFunc

	input    textarea.Model
	cleanup  components.RadioGroup
	matching components.RadioGroup
	help     help.Model
	keys     KeyMap
	focus    focusArea

	width  int
	height int

	// Latest run begun by this model. Results for any other seq are stale.
	run       core.Run
	hasStatus bool
	notice    string

	copyDelay time.Duration
}

// InitialRootModel builds the form with opts preselected. A non-empty seed is
// placed in the input and processed on Init.
func InitialRootModel(svc core.PatternService, opts pattern.Options, seed string) RootModel {
	if err := opts.Validate(); err != nil {
		opts = pattern.DefaultOptions()
	}

	input := textarea.New()
	input.Placeholder = "https://www.example.com/category/product"
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetWidth(DefaultWidth - 6)
	input.SetHeight(InputHeight)
	input.Focus()

	cleanup := components.NewRadioGroup("URL Clean-Up Options",
		radioOptions(pattern.CleanupModes(), pattern.CleanupMode.Info),
		slices.Index(pattern.CleanupModes(), opts.Cleanup))
	matching := components.NewRadioGroup("Regex Matching Options",
		radioOptions(pattern.MatchingModes(), pattern.MatchingMode.Info),
		slices.Index(pattern.MatchingModes(), opts.Matching))
	for _, g := range []*components.RadioGroup{&cleanup, &matching} {
		g.TitleStyle = PaneTitleStyle
		g.ItemStyle = RadioStyle
		g.SelectedStyle = RadioSelectedStyle
		g.CursorStyle = RadioCursorStyle
		g.HintStyle = HintStyle
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := RootModel{
		service:   svc,
		ctx:       ctx,
		cancel:    cancel,
		input:     input,
		cleanup:   cleanup,
		matching:  matching,
		help:      help.New(),
		keys:      Keys,
		focus:     focusInput,
		copyDelay: CopyDebounce,
	}

	if seed != "" {
		m.input.SetValue(seed)
		m.run = svc.Begin(m.input.Value(), m.options())
	}
	return m
}

func radioOptions[M any](modes []M, info func(M) pattern.ModeInfo) []components.RadioOption {
	opts := make([]components.RadioOption, 0, len(modes))
	for _, mode := range modes {
		i := info(mode)
		opts = append(opts, components.RadioOption{Label: i.Label, Description: i.Description})
	}
	return opts
}

func (m RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.run.Seq != 0 {
		cmds = append(cmds, m.schedule(m.run))
	}
	return tea.Batch(cmds...)
}

// Options returns the currently selected modes.
func (m RootModel) Options() pattern.Options {
	return m.options()
}

// Run returns the latest run, including its clipboard result once published.
func (m RootModel) Run() core.Run {
	return m.run
}

func (m RootModel) options() pattern.Options {
	return pattern.Options{
		Cleanup:  pattern.CleanupModes()[m.cleanup.Selected],
		Matching: pattern.MatchingModes()[m.matching.Selected],
	}
}

// changed recomputes the pattern for the current form state and schedules
// its clipboard copy.
func (m *RootModel) changed() tea.Cmd {
	m.run = m.service.Begin(m.input.Value(), m.options())
	m.hasStatus = false
	m.notice = ""
	return m.schedule(m.run)
}

// schedule waits out the debounce before publishing run. Empty runs never
// touch the clipboard so they are reported right away.
func (m RootModel) schedule(run core.Run) tea.Cmd {
	if run.Pattern == "" || m.copyDelay <= 0 {
		return m.publish(run)
	}
	seq := run.Seq
	return tea.Tick(m.copyDelay, func(time.Time) tea.Msg {
		return copyTickMsg{seq: seq}
	})
}

func (m RootModel) publish(run core.Run) tea.Cmd {
	svc, ctx := m.service, m.ctx
	return func() tea.Msg {
		return copyResultMsg{run: svc.Publish(ctx, run)}
	}
}

// copyNow writes run right away, bypassing the debounce and auto-copy.
func (m RootModel) copyNow(run core.Run) tea.Cmd {
	svc, ctx := m.service, m.ctx
	return func() tea.Msg {
		return copyResultMsg{run: svc.Copy(ctx, run)}
	}
}

func loadClipboard() tea.Msg {
	text, err := readClipboard()
	return clipboardLoadedMsg{text: text, err: err}
}

func (m *RootModel) setFocus(f focusArea) {
	m.focus = f
	m.cleanup.Focused = f == focusCleanup
	m.matching.Focused = f == focusMatching
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *RootModel) group() *components.RadioGroup {
	switch m.focus {
	case focusCleanup:
		return &m.cleanup
	case focusMatching:
		return &m.matching
	default:
		return nil
	}
}

func (m *RootModel) resize() {
	w := m.width - 6
	if w < MinInputWidth {
		w = MinInputWidth
	}
	m.input.SetWidth(w)
	m.help.Width = m.width
}
