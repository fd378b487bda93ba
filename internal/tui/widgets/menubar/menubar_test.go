package menubar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"textedit/internal/tui/state"
	"textedit/internal/tui/theme"
)

func TestMenusListEveryCommand(t *testing.T) {
	want := map[string][]string{
		"File": {"New", "Open", "Save", "Save As", "Exit"},
		"Edit": {"Undo", "Redo", "Cut", "Copy", "Paste", "Find & Replace"},
		"View": {"Toggle Dark Mode", "Show Toolbar", "Show Status Bar"},
	}
	for _, mn := range Menus() {
		labels := map[string]bool{}
		for _, it := range mn.Items {
			labels[it.Label] = true
		}
		for _, l := range want[mn.Title] {
			if !labels[l] {
				t.Errorf("menu %s missing %q", mn.Title, l)
			}
		}
	}
}

func TestNavigationSkipsSeparators(t *testing.T) {
	m := New().Open(0) // File
	if m.Selected() != 0 {
		t.Fatalf("expected first item selected, got %d", m.Selected())
	}
	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	// New, Open, Save, Save As, Show Changes, (separator), Exit
	if got := m.menus[0].Items[m.Selected()].Label; got != "Exit" {
		t.Fatalf("expected Exit after skipping the separator, got %q", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.menus[0].Items[m.Selected()].Label; got != "New" {
		t.Fatalf("expected wrap to New, got %q", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.menus[0].Items[m.Selected()].Label; got != "Exit" {
		t.Fatalf("expected wrap back to Exit, got %q", got)
	}
}

func TestLeftRightSwitchMenus(t *testing.T) {
	m := New().Open(0)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Current() != 2 {
		t.Fatalf("expected wrap to View, got %d", m.Current())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Current() != 0 {
		t.Fatalf("expected File, got %d", m.Current())
	}
}

func TestEnterEmitsAction(t *testing.T) {
	m, ok := New().OpenByTitle("e")
	if !ok || m.Current() != 1 {
		t.Fatalf("expected Edit menu open")
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsOpen() {
		t.Fatalf("expected menu closed after activation")
	}
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	if msg := cmd(); msg != (ActionMsg{Action: ActUndo}) {
		t.Fatalf("expected undo action, got %#v", msg)
	}
}

func TestEscCloses(t *testing.T) {
	m := New().Open(1)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsOpen() || cmd == nil || cmd() != (ClosedMsg{}) {
		t.Fatalf("expected closed menu and ClosedMsg")
	}
}

func TestDropdownShowsCheckState(t *testing.T) {
	m, _ := New().OpenByTitle("v")
	out := m.Dropdown(state.UIState{DarkMode: true, ShowToolbar: false, ShowStatusBar: true}, theme.Dark(""))
	if !strings.Contains(out, "[x] Toggle Dark Mode") {
		t.Fatalf("expected dark mode checked: %s", out)
	}
	if !strings.Contains(out, "[ ] Show Toolbar") {
		t.Fatalf("expected toolbar unchecked: %s", out)
	}
	if New().Dropdown(state.UIState{}, theme.Dark("")) != "" {
		t.Fatalf("closed menu renders nothing")
	}
}

func TestOffset(t *testing.T) {
	m := New()
	if m.Offset(0) != 0 || m.Offset(1) != len(" File ") || m.Offset(2) != len(" File  Edit ") {
		t.Fatalf("unexpected offsets %d %d %d", m.Offset(0), m.Offset(1), m.Offset(2))
	}
}
