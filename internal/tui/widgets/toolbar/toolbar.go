package toolbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textedit/internal/fonts"
	"textedit/internal/tui/state"
	"textedit/internal/tui/theme"
)

// Field is the toolbar control holding keyboard focus.
type Field int

const (
	FieldNone Field = iota
	FieldFont
	FieldSize
)

const (
	fontLabel  = "Font: "
	sizeLabel  = "Size: "
	entryWidth = 25
)

// FontSelectedMsg is sent when a family is picked from the listbox.
type FontSelectedMsg struct{ Family string }

// SizeChangedMsg is sent when a valid size is chosen or typed.
type SizeChangedMsg struct{ Size int }

// ClosedMsg is sent when the toolbar gives focus back to the text area.
type ClosedMsg struct{}

type Model struct {
	families []string
	sizes    []int
	cur      state.Font

	font textinput.Model
	size textinput.Model

	suggest []string
	sel     int
	field   Field
}

func New(families []string, cur state.Font) Model {
	fi := textinput.New()
	fi.Prompt = ""
	fi.Width = entryWidth
	fi.Placeholder = "font family"

	si := textinput.New()
	si.Prompt = ""
	si.Width = 4
	si.CharLimit = 3

	m := Model{families: families, sizes: fonts.Sizes(), font: fi, size: si}
	m.Sync(cur)
	return m
}

func (m Model) Field() Field { return m.field }

func (m Model) Suggestions() []string { return m.suggest }

func (m Model) Selected() int { return m.sel }

// Sync shows cur in both fields.
func (m *Model) Sync(cur state.Font) {
	m.cur = cur
	m.font.SetValue(cur.Family)
	m.size.SetValue(strconv.Itoa(cur.Size))
}

// FocusFont moves focus to the family entry and opens the listbox.
func (m *Model) FocusFont() tea.Cmd {
	m.field = FieldFont
	m.size.Blur()
	m.font.CursorEnd()
	m.refilter()
	return m.font.Focus()
}

// FocusSize moves focus to the size box.
func (m *Model) FocusSize() tea.Cmd {
	m.field = FieldSize
	m.font.Blur()
	m.suggest = nil
	m.size.CursorEnd()
	return m.size.Focus()
}

// Blur closes the listbox and restores the displayed values.
func (m *Model) Blur() {
	m.field = FieldNone
	m.font.Blur()
	m.size.Blur()
	m.suggest = nil
	m.sel = 0
	m.Sync(m.cur)
}

func (m *Model) refilter() {
	m.suggest = fonts.Filter(m.families, m.font.Value())
	m.sel = 0
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Update handles keys while a toolbar field has focus.
func (m Model) Update(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.field {
	case FieldFont:
		return m.updateFont(msg)
	case FieldSize:
		return m.updateSize(msg)
	}
	return m, nil
}

func (m Model) updateFont(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Blur()
		return m, emit(ClosedMsg{})
	case "tab":
		return m, m.FocusSize()
	case "up":
		if m.sel > 0 {
			m.sel--
		}
		return m, nil
	case "down":
		if m.sel < len(m.suggest)-1 {
			m.sel++
		}
		return m, nil
	case "enter":
		if len(m.suggest) == 0 {
			return m, nil
		}
		family := m.suggest[m.sel]
		m.cur.Family = family
		m.Blur()
		return m, emit(FontSelectedMsg{Family: family})
	}

	var cmd tea.Cmd
	m.font, cmd = m.font.Update(msg)
	m.refilter()
	return m, cmd
}

func (m Model) updateSize(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Blur()
		return m, emit(ClosedMsg{})
	case "tab":
		return m, m.FocusFont()
	case "up", "down":
		size := m.step(msg.String() == "up")
		m.cur.Size = size
		m.size.SetValue(strconv.Itoa(size))
		m.size.CursorEnd()
		return m, emit(SizeChangedMsg{Size: size})
	case "enter":
		size, ok := fonts.ParseSize(m.size.Value())
		m.Blur()
		if !ok {
			// malformed sizes are dropped without a message
			return m, emit(ClosedMsg{})
		}
		m.cur.Size = size
		m.Sync(m.cur)
		return m, emit(SizeChangedMsg{Size: size})
	}

	var cmd tea.Cmd
	m.size, cmd = m.size.Update(msg)
	return m, cmd
}

// step returns the next listed size above (or below) the current one.
func (m Model) step(up bool) int {
	cur := m.cur.Size
	if n, ok := fonts.ParseSize(m.size.Value()); ok {
		cur = n
	}
	if up {
		for _, s := range m.sizes {
			if s > cur {
				return s
			}
		}
		return m.sizes[len(m.sizes)-1]
	}
	for i := len(m.sizes) - 1; i >= 0; i-- {
		if m.sizes[i] < cur {
			return m.sizes[i]
		}
	}
	return m.sizes[0]
}

// View renders the toolbar row and, while the family entry has focus, the listbox under it.
func (m Model) View(p theme.Palette, width int) string {
	bar := lipgloss.NewStyle().Background(p.ToolbarBg).Foreground(p.ToolbarFg)
	input := lipgloss.NewStyle().Background(p.InputBg).Foreground(p.InputFg)
	button := lipgloss.NewStyle().Background(p.ButtonBg).Foreground(p.ButtonFg).Padding(0, 1)

	m.font.TextStyle = input
	m.font.PlaceholderStyle = input.Foreground(p.Muted)
	m.size.TextStyle = input

	fontBox := input.Width(entryWidth + 2).Render(m.font.View())
	sizeBox := input.Width(6).Render(m.size.View())
	if m.field == FieldFont {
		fontBox = input.Underline(true).Width(entryWidth + 2).Render(m.font.View())
	}
	if m.field == FieldSize {
		sizeBox = input.Underline(true).Width(6).Render(m.size.View())
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		bar.Render(" "+fontLabel),
		fontBox,
		bar.Render("  "+sizeLabel),
		sizeBox,
		bar.Render("  "),
		button.Render("Color"),
		bar.Render(" "),
		theme.Swatch(m.cur.Color),
	)
	if width > 0 {
		row = bar.Width(width).Render(row)
	}
	if m.field != FieldFont || len(m.suggest) == 0 {
		return row
	}

	indent := strings.Repeat(" ", lipgloss.Width(" "+fontLabel))
	sel := input.Background(p.SelectBg)
	lines := []string{row}
	for i, f := range m.suggest {
		style := input
		if i == m.sel {
			style = sel
		}
		lines = append(lines, indent+style.Width(entryWidth+1).Render(f))
	}
	return strings.Join(lines, "\n")
}
