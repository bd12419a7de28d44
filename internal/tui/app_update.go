package tui

import (
	"strings"

	"todo-cli/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case animFrameMsg:
		if m.trans.step() {
			return m, animFrame()
		}
		m.animating = false
		m.dropGhosts()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
			}
			return m, nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.FocusList):
		m.focusList()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.FocusInput):
		m.focus = focusInput
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if id := m.selectedID(); id != "" {
			m.state.Toggle(id)
		}
		return m, m.syncRows()
	case key.Matches(msg, m.keys.Remove):
		if id := m.selectedID(); id != "" {
			if it, ok := m.state.Item(id); ok {
				m.ghosts[id] = it
			}
			if m.state.Remove(id) {
				m.showMinibuffer("Removed: "+m.ghosts[id].Title, false)
			}
		}
		return m, m.syncRows()
	case key.Matches(msg, m.keys.CycleFilter):
		return m, m.setFilter(m.state.Filter().Next())
	case key.Matches(msg, m.keys.ShowAll):
		return m, m.setFilter(model.FilterAll)
	case key.Matches(msg, m.keys.ShowActive):
		return m, m.setFilter(model.FilterActive)
	case key.Matches(msg, m.keys.ShowDone):
		return m, m.setFilter(model.FilterCompleted)
	}
	return m, nil
}

// submit runs the form flow: create from the field value, append, and (only
// when configured) clear the field.
func (m appModel) submit() (tea.Model, tea.Cmd) {
	id, err := m.state.Submit(m.input.Value())
	if err != nil {
		m.log.Error("add item failed", "err", err.Error())
		m.showMinibuffer("Add failed: "+err.Error(), true)
		return m, nil
	}
	if m.opts.ClearInputOnSubmit {
		m.input.SetValue("")
	}
	it, _ := m.state.Item(id)
	m.showMinibuffer("Added: "+it.Title, false)
	cmd := m.syncRows()
	m.selectID(id)
	return m, cmd
}

func (m *appModel) setFilter(f model.Filter) tea.Cmd {
	sel := m.selectedID()
	m.state.SetFilter(f)
	cmd := m.syncRows()
	m.selectID(sel)
	return cmd
}

func (m *appModel) focusList() {
	m.focus = focusList
	m.input.Blur()
	m.clampCursor()
}

// syncRows feeds the current filtered view to the transition tracker and
// starts the frame loop if something needs to animate.
func (m *appModel) syncRows() tea.Cmd {
	needFrames := m.trans.sync(m.state.Visible())
	m.clampCursor()
	if !needFrames {
		m.dropGhosts()
		return nil
	}
	if m.animating {
		// A frame loop is already running.
		return nil
	}
	m.animating = true
	return animFrame()
}

func (m *appModel) dropGhosts() {
	for id := range m.ghosts {
		if !m.rowPresent(id) {
			delete(m.ghosts, id)
		}
	}
}

func (m appModel) rowPresent(id string) bool {
	for _, r := range m.trans.rows {
		if r.id == id {
			return true
		}
	}
	return false
}

func (m appModel) ghostItem(id string) (model.Item, bool) {
	it, ok := m.ghosts[id]
	return it, ok
}

func (m appModel) selectedID() string {
	vis := m.state.Visible()
	if m.cursor < 0 || m.cursor >= len(vis) {
		return ""
	}
	return vis[m.cursor]
}

func (m *appModel) selectID(id string) {
	if id == "" {
		return
	}
	for i, v := range m.state.Visible() {
		if v == id {
			m.cursor = i
			return
		}
	}
}

func (m *appModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *appModel) clampCursor() {
	n := len(m.state.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *appModel) showMinibuffer(text string, isErr bool) {
	m.minibufferText = strings.TrimSpace(text)
	m.minibufferErr = isErr
}
