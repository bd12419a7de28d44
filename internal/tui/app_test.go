package tui

import (
	"strings"
	"testing"

	"todo-cli/internal/model"
	"todo-cli/internal/todo"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, opts Options) (appModel, *todo.State) {
	t.Helper()
	st := todo.NewState(todo.WithIDGenerator(&todo.SequentialIDs{Prefix: "a"}), todo.WithStrict(true))
	return newAppModel(st, opts), st
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m appModel, keys ...string) (appModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var mm tea.Model
		mm, cmd = m.Update(keyMsg(k))
		m = mm.(appModel)
	}
	return m, cmd
}

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, string(r))
	}
	return m
}

func assertVisible(t *testing.T, st *todo.State, want ...string) {
	t.Helper()
	got := st.Visible()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("visible: got %v, want %v", got, want)
	}
}

func TestApp_EndToEndScenario(t *testing.T) {
	m, st := newTestModel(t, Options{})

	m = typeText(t, m, "A")
	m, _ = press(t, m, "enter")
	// The field is not cleared after submitting.
	if got := m.input.Value(); got != "A" {
		t.Fatalf("expected input to keep %q, got %q", "A", got)
	}
	m.input.SetValue("B")
	m, _ = press(t, m, "enter")
	assertVisible(t, st, "a1", "a2")

	m, _ = press(t, m, "tab")
	if m.focus != focusList {
		t.Fatalf("expected list focus after tab")
	}
	// The cursor follows the most recently added item.
	if m.selectedID() != "a2" {
		t.Fatalf("expected cursor on a2, got %q", m.selectedID())
	}
	m, _ = press(t, m, "up")
	if m.selectedID() != "a1" {
		t.Fatalf("expected cursor on a1, got %q", m.selectedID())
	}

	m, _ = press(t, m, "x", "3")
	assertVisible(t, st, "a1")
	if it, _ := st.Item("a1"); !it.Completed || it.Title != "A" {
		t.Fatalf("unexpected a1: %#v", it)
	}
	if !strings.Contains(m.View(), "A") {
		t.Fatalf("expected completed view to show A:\n%s", m.View())
	}

	m, _ = press(t, m, "2")
	assertVisible(t, st, "a2")
	if m.selectedID() != "a2" {
		t.Fatalf("expected cursor to land on a2, got %q", m.selectedID())
	}

	m, _ = press(t, m, "d", "1")
	assertVisible(t, st, "a1")
	if err := st.CheckInvariants(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
	if len(m.trans.rows) != 1 || m.trans.rows[0].id != "a1" {
		t.Fatalf("expected a single rendered row for a1, got %d rows", len(m.trans.rows))
	}
}

func TestApp_BlankSubmitUsesDefaultTitle(t *testing.T) {
	m, st := newTestModel(t, Options{})
	m, _ = press(t, m, "enter")
	it, ok := st.Item("a1")
	if !ok || it.Title != model.DefaultTitle {
		t.Fatalf("expected %q, got %#v (ok=%v)", model.DefaultTitle, it, ok)
	}
	if !strings.Contains(m.minibufferText, model.DefaultTitle) {
		t.Fatalf("expected minibuffer to mention the new item, got %q", m.minibufferText)
	}
}

func TestApp_ClearInputOnSubmitOption(t *testing.T) {
	m, _ := newTestModel(t, Options{ClearInputOnSubmit: true})
	m = typeText(t, m, "Buy milk")
	m, _ = press(t, m, "enter")
	if got := m.input.Value(); got != "" {
		t.Fatalf("expected cleared input, got %q", got)
	}
}

func TestApp_ListKeysDoNotLeakIntoInput(t *testing.T) {
	m, st := newTestModel(t, Options{})
	m, _ = press(t, m, "enter", "tab", "x", "d")
	if st.Len() != 0 {
		t.Fatalf("expected item removed, have %d", st.Len())
	}
	if got := m.input.Value(); got != "" {
		t.Fatalf("list keys should not type into the field, got %q", got)
	}

	// Typing in the field must not trigger list actions.
	m, _ = press(t, m, "a")
	if m.focus != focusInput {
		t.Fatalf("expected a to focus the input")
	}
	m = typeText(t, m, "dx3")
	if got := m.input.Value(); got != "dx3" {
		t.Fatalf("expected typed text, got %q", got)
	}
	if st.Filter() != model.FilterAll {
		t.Fatalf("typing 3 in the field changed the filter to %q", st.Filter())
	}
}

func TestApp_CursorMovementAndFilterCycle(t *testing.T) {
	m, st := newTestModel(t, Options{})
	for i := 0; i < 3; i++ {
		m, _ = press(t, m, "enter")
	}
	m, _ = press(t, m, "tab", "down", "down", "down")
	if m.selectedID() != "a3" {
		t.Fatalf("expected cursor clamped at a3, got %q", m.selectedID())
	}
	m, _ = press(t, m, "up", "x")
	if it, _ := st.Item("a2"); !it.Completed {
		t.Fatalf("expected a2 toggled")
	}

	m, _ = press(t, m, "f")
	if st.Filter() != model.FilterActive {
		t.Fatalf("expected active after one cycle, got %q", st.Filter())
	}
	assertVisible(t, st, "a1", "a3")
	m, _ = press(t, m, "f")
	assertVisible(t, st, "a2")
	m, _ = press(t, m, "f")
	assertVisible(t, st, "a1", "a2", "a3")
	if m.selectedID() != "a2" {
		t.Fatalf("expected selection to follow a2 across filters, got %q", m.selectedID())
	}
}

func TestApp_RemoveTwiceIsNoop(t *testing.T) {
	m, st := newTestModel(t, Options{})
	m, _ = press(t, m, "enter", "tab", "d", "d")
	if st.Len() != 0 {
		t.Fatalf("expected empty list")
	}
	if !strings.Contains(m.View(), "Nothing here yet") {
		t.Fatalf("expected empty-state hint:\n%s", m.View())
	}
}

func TestApp_HelpOverlayAndQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = press(t, m, "tab", "?")
	if !m.showHelp {
		t.Fatalf("expected help overlay")
	}
	// Keys other than close are swallowed while help is open.
	m, cmd := press(t, m, "q")
	if m.showHelp {
		t.Fatalf("expected q to close help")
	}
	if cmd != nil {
		t.Fatalf("closing help should not quit")
	}

	_, cmd = press(t, m, "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestApp_CtrlCQuitsFromInput(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	_, cmd := press(t, m, "ctrl+c")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func runFrames(t *testing.T, m appModel, cmd tea.Cmd) appModel {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		if i > 1000 {
			t.Fatalf("animation did not settle")
		}
		var mm tea.Model
		mm, cmd = m.Update(animFrameMsg{})
		m = mm.(appModel)
	}
	return m
}

func TestApp_AnimatedAddAndRemove(t *testing.T) {
	m, st := newTestModel(t, Options{Animations: true})

	m, cmd := press(t, m, "enter")
	if cmd == nil || !m.animating {
		t.Fatalf("expected entry animation to start")
	}
	if r := m.trans.rows[0]; r.phase != phaseEnter || r.progress() != 0 {
		t.Fatalf("expected entering row at 0, got phase=%d pos=%f", r.phase, r.pos)
	}
	m = runFrames(t, m, cmd)
	if r := m.trans.rows[0]; r.phase != phaseStable || r.progress() != 1 {
		t.Fatalf("expected settled row, got phase=%d pos=%f", r.phase, r.pos)
	}
	if m.animating {
		t.Fatalf("expected frame loop to stop")
	}

	m, cmd = press(t, m, "tab", "d")
	if st.Len() != 0 {
		t.Fatalf("expected item removed from state immediately")
	}
	if len(m.trans.rows) != 1 || m.trans.rows[0].phase != phaseLeave {
		t.Fatalf("expected the removed row to stay while leaving")
	}
	if !strings.Contains(m.renderBody(40), model.DefaultTitle) {
		t.Fatalf("expected leaving row to keep its title")
	}
	m = runFrames(t, m, cmd)
	if len(m.trans.rows) != 0 {
		t.Fatalf("expected leaving row dropped after exit")
	}
	if len(m.ghosts) != 0 {
		t.Fatalf("expected ghosts cleaned up, have %d", len(m.ghosts))
	}
}

func TestApp_FrameLoopNotDuplicated(t *testing.T) {
	m, _ := newTestModel(t, Options{Animations: true})
	m, first := press(t, m, "enter")
	m, second := press(t, m, "enter")
	if first == nil {
		t.Fatalf("expected first add to start frames")
	}
	if second != nil {
		t.Fatalf("expected second add to reuse the running frame loop")
	}
	_ = m
}

func TestApp_LongTitleIsKeptWhole(t *testing.T) {
	m, st := newTestModel(t, Options{})
	long := strings.Repeat("abcdefghij", 40)
	m = typeText(t, m, long)
	m, _ = press(t, m, "enter")
	it, ok := st.Item("a1")
	if !ok || it.Title != long {
		t.Fatalf("expected %d-char title, got %d chars (ok=%v)", len(long), len(it.Title), ok)
	}
}

func TestApp_WhitespaceTitleIsKept(t *testing.T) {
	m, st := newTestModel(t, Options{})
	m = typeText(t, m, "   ")
	m, _ = press(t, m, "enter")
	if it, _ := st.Item("a1"); it.Title != "   " {
		t.Fatalf("expected whitespace title kept, got %q", it.Title)
	}
}

func TestApp_StaleRowIsReportedNotDrawn(t *testing.T) {
	t.Run("strict", func(t *testing.T) {
		m, _ := newTestModel(t, Options{})
		m, _ = press(t, m, "enter")
		m.trans.rows = append(m.trans.rows, &rowAnim{id: "ghost", phase: phaseStable, pos: 1})
		defer func() {
			if recover() == nil {
				t.Fatalf("expected a stale row to panic in strict mode")
			}
		}()
		m.renderBody(40)
	})

	t.Run("lenient", func(t *testing.T) {
		st := todo.NewState(todo.WithIDGenerator(&todo.SequentialIDs{Prefix: "a"}))
		m := newAppModel(st, Options{})
		m, _ = press(t, m, "enter")
		m.trans.rows = append(m.trans.rows, &rowAnim{id: "ghost", phase: phaseStable, pos: 1})
		body := m.renderBody(40)
		if n := len(strings.Split(body, "\n")); n != 1 {
			t.Fatalf("expected only the live row, got %d lines:\n%s", n, body)
		}
		if !strings.Contains(body, model.DefaultTitle) {
			t.Fatalf("expected live row, got %q", body)
		}
	})
}

func TestApp_EnteringRowTakesNoLineUntilHalfway(t *testing.T) {
	m, _ := newTestModel(t, Options{Animations: true})
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "enter")
	m = runFrames(t, m, animFrame())

	m, _ = press(t, m, "enter")
	if got := len(strings.Split(m.renderBody(40), "\n")); got != 2 {
		t.Fatalf("entering row should not take a line at progress 0, got %d lines", got)
	}

	grew := false
	for i := 0; i < 1000 && m.animating; i++ {
		mm, _ := m.Update(animFrameMsg{})
		m = mm.(appModel)
		lines := len(strings.Split(m.renderBody(40), "\n"))
		if lines == 3 {
			grew = true
		}
		if grew && lines != 3 {
			t.Fatalf("row height went back down mid-entry")
		}
	}
	if !grew {
		t.Fatalf("entering row never gained its line")
	}
}
