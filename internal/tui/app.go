package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"todo-cli/internal/docs"
	"todo-cli/internal/model"
	"todo-cli/internal/todo"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Options tunes the interactive app. The zero value disables animations.
type Options struct {
	Animations         bool
	ClearInputOnSubmit bool
	Theme              string
	Glyphs             string
	Logger             *slog.Logger
}

type appModel struct {
	state *todo.State
	opts  Options
	log   *slog.Logger

	width  int
	height int

	focus  focusArea
	input  textinput.Model
	keys   keyMap
	help   help.Model
	body   viewport.Model
	trans  transitions
	cursor int
	// ghosts keeps removed items renderable until their exit animation ends.
	ghosts map[string]model.Item

	animating bool
	showHelp  bool

	minibufferText string
	minibufferErr  bool
}

const (
	minWidth  = 24
	maxWidth  = 96
	minHeight = 8
	// header, gap, input, gap, gap, status, help
	chromeLines = 7
)

func newAppModel(st *todo.State, opts Options) appModel {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	in := textinput.New()
	in.Placeholder = "Type ..."
	in.Prompt = ""
	// 0 disables the limit; titles are kept whole.
	in.CharLimit = 0
	in.Focus()

	m := appModel{
		state:  st,
		opts:   opts,
		log:    log,
		focus:  focusInput,
		input:  in,
		keys:   newKeyMap(),
		help:   help.New(),
		body:   viewport.New(minWidth, minHeight),
		trans:  newTransitions(opts.Animations),
		ghosts: map[string]model.Item{},
	}
	// Whatever is already in the state shows without an entry animation.
	m.trans.enabled = false
	m.trans.sync(st.Visible())
	m.trans.enabled = opts.Animations
	m.resize(80, 24)
	return m
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) View() string {
	w := m.contentWidth()

	if m.showHelp {
		return m.viewHelp(w)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		styleHeader().Render("todos"),
		"  ",
		m.viewFilterTabs(),
	)
	input := renderInputLine(w, m.input.View(), m.focus == focusInput)

	m.body.SetContent(m.renderBody(w))
	m.scrollToCursor()

	var helpView string
	if m.focus == focusInput {
		helpView = m.help.View(inputKeys{m.keys})
	} else {
		helpView = m.help.View(listKeys{m.keys})
	}

	return strings.Join([]string{
		header,
		"",
		input,
		"",
		m.body.View(),
		"",
		m.viewStatus(w),
		helpView,
	}, "\n")
}

func (m appModel) viewFilterTabs() string {
	cur := m.state.Filter()
	var tabs []string
	for _, f := range model.Filters() {
		tabs = append(tabs, styleFilterTab(f == cur).Render(f.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m appModel) viewStatus(w int) string {
	c := m.state.Counts()
	sep := " " + glyphSeparator() + " "
	status := styleMuted().Render(fmt.Sprintf("%d %s%s%d active%s%d completed",
		c.Total, plural(c.Total, "item", "items"), sep, c.Active, sep, c.Completed))
	if msg := strings.TrimSpace(m.minibufferText); msg != "" {
		st := styleMuted()
		if m.minibufferErr {
			st = lipgloss.NewStyle().Foreground(colorError)
		}
		status += "  " + st.Render(msg)
	}
	return fitLine(status, w)
}

func (m appModel) viewHelp(w int) string {
	body, ok := docs.Get("keys")
	if !ok {
		return m.help.View(listKeys{m.keys})
	}
	out := renderMarkdown(body, w)
	return out + "\n\n" + styleMuted().Render("? / esc: close help")
}

// renderBody renders every row the transition tracker knows about, including
// rows that are still animating out.
func (m appModel) renderBody(w int) string {
	if len(m.trans.rows) == 0 {
		return renderEmpty(m.state.Filter(), w)
	}
	sel := m.selectedID()
	lines := make([]string, 0, len(m.trans.rows))
	for _, r := range m.trans.rows {
		shown, reveal := rowExtent(r.progress())
		if !shown {
			continue
		}
		it, ok := m.state.Item(r.id)
		if !ok {
			// Removed items keep rendering from the last known copy while they leave.
			if it, ok = m.ghostItem(r.id); !ok {
				m.state.ReportStale(r.id)
				continue
			}
		}
		lines = append(lines, renderRow(rowView{
			id:       r.id,
			item:     it,
			selected: m.focus == focusList && r.id == sel && r.phase != phaseLeave,
			progress: reveal,
		}, w))
	}
	return normalizePane(strings.Join(lines, "\n"), w, 0)
}

func (m appModel) contentWidth() int {
	w := m.width - 2
	if w > maxWidth {
		w = maxWidth
	}
	if w < minWidth {
		w = minWidth
	}
	return w
}

func (m *appModel) resize(width, height int) {
	m.width = width
	m.height = height
	h := height - chromeLines
	if h < minHeight {
		h = minHeight
	}
	w := m.contentWidth()
	m.body.Width = w
	m.body.Height = h
	m.help.Width = w
	m.input.Width = w - 3
}

// scrollToCursor keeps the selected row inside the viewport.
func (m *appModel) scrollToCursor() {
	sel := m.selectedID()
	if sel == "" {
		return
	}
	line := 0
	for _, r := range m.trans.rows {
		if r.id == sel {
			break
		}
		if shown, _ := rowExtent(r.progress()); shown {
			line++
		}
	}
	if line < m.body.YOffset {
		m.body.SetYOffset(line)
	} else if line >= m.body.YOffset+m.body.Height {
		m.body.SetYOffset(line - m.body.Height + 1)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
