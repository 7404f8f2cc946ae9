package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/regexcat/regexcat/internal/utils"
)

// Update handles messages and updates the model
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case copyTickMsg:
		// A newer edit arrived during the debounce
		if msg.seq != m.run.Seq || !m.service.IsCurrent(m.run) {
			return m, nil
		}
		return m, m.publish(m.run)

	case copyResultMsg:
		if msg.run.Seq != m.run.Seq {
			utils.Debug("dropping result of superseded run %d", msg.run.Seq)
			return m, nil
		}
		m.run = msg.run
		m.hasStatus = true
		return m, nil

	case clipboardLoadedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("Failed to read clipboard: %v", msg.err)
			return m, nil
		}
		m.input.SetValue(msg.text)
		m.setFocus(focusInput)
		return m, m.changed()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextField):
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case key.Matches(msg, m.keys.PrevField):
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.changed()
			return m, m.copyNow(m.run)
		case key.Matches(msg, m.keys.Reload):
			return m, loadClipboard
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			return m, m.changed()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if g := m.group(); g != nil {
			switch {
			case key.Matches(msg, m.keys.Up):
				g.Up()
			case key.Matches(msg, m.keys.Down):
				g.Down()
			case key.Matches(msg, m.keys.Select):
				if g.Select() {
					return m, m.changed()
				}
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			return m, tea.Batch(cmd, m.changed())
		}
		return m, cmd
	}

	// Cursor blink and paste results belong to the textarea
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.changed())
	}
	return m, cmd
}
