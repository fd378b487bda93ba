package editor

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textedit/internal/document"
	"textedit/internal/tui/theme"
)

// Model is the text area. It only renders and edits; the document owns
// the file binding and undo history.
type Model struct {
	ta     textarea.Model
	width  int
	height int
}

func New() Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	return Model{ta: ta}
}

func (m Model) Value() string { return m.ta.Value() }

// SetValue replaces the contents; the cursor ends up at the end of the text.
func (m *Model) SetValue(s string) {
	m.ta.SetValue(s)
}

// InsertString inserts s at the cursor.
func (m *Model) InsertString(s string) {
	m.ta.InsertString(s)
}

// Cursor returns the logical row and the rune column within that row.
func (m Model) Cursor() document.Cursor {
	li := m.ta.LineInfo()
	return document.Cursor{Row: m.ta.Line(), Col: li.StartColumn + li.ColumnOffset}
}

// SetCursor moves to c, clamping to the buffer.
func (m *Model) SetCursor(c document.Cursor) {
	limit := m.ta.Length() + m.ta.LineCount() + 1
	for i := 0; m.ta.Line() > c.Row && i < limit; i++ {
		m.ta.CursorUp()
	}
	for i := 0; m.ta.Line() < c.Row && i < limit; i++ {
		m.ta.CursorDown()
	}
	m.ta.SetCursor(c.Col)
}

func (m *Model) Focus() tea.Cmd {
	return m.ta.Focus()
}

func (m *Model) Blur() {
	m.ta.Blur()
}

func (m Model) Focused() bool {
	return m.ta.Focused()
}

func (m *Model) SetSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	m.width = w
	m.height = h
	m.ta.SetWidth(w)
	m.ta.SetHeight(h)
}

func (m Model) Size() (int, int) { return m.width, m.height }

// SetPalette recolors text, background and caret.
func (m *Model) SetPalette(p theme.Palette) {
	text := lipgloss.NewStyle().Foreground(p.TextFg).Background(p.TextBg)
	st := textarea.Style{
		Base:        lipgloss.NewStyle().Background(p.TextBg),
		Text:        text,
		CursorLine:  text,
		Placeholder: text.Foreground(p.Muted),
		EndOfBuffer: text.Foreground(p.Muted),
		Prompt:      text,
	}
	m.ta.FocusedStyle = st
	m.ta.BlurredStyle = st
	m.ta.Cursor.Style = lipgloss.NewStyle().Foreground(p.Cursor)

	// the textarea keeps a pointer to the active style; re-pick it
	if m.ta.Focused() {
		m.ta.Focus()
	} else {
		m.ta.Blur()
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.ta.View()
}
