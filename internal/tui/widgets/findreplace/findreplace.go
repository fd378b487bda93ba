// Package findreplace is the Find & Replace dialog: two entries and a
// Replace All action.
package findreplace

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textedit/internal/tui/theme"
)

// ReplaceMsg asks for every occurrence of Find to be replaced.
type ReplaceMsg struct {
	Find    string
	Replace string
}

// ClosedMsg is sent when the dialog is dismissed.
type ClosedMsg struct{}

const entryWidth = 30

type Model struct {
	find    textinput.Model
	replace textinput.Model
	focus   int // 0 find, 1 replace
}

func New() Model {
	f := textinput.New()
	f.Prompt = ""
	f.Width = entryWidth
	r := textinput.New()
	r.Prompt = ""
	r.Width = entryWidth
	f.Focus()
	return Model{find: f, replace: r}
}

func (m Model) Find() string    { return m.find.Value() }
func (m Model) Replace() string { return m.replace.Value() }
func (m Model) Focus() int      { return m.focus }

// Reset clears both entries and focuses Find.
func (m Model) Reset() Model {
	m.find.SetValue("")
	m.replace.SetValue("")
	m.focus = 0
	m.replace.Blur()
	m.find.Focus()
	return m
}

func (m Model) Update(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return ClosedMsg{} }
	case "tab", "shift+tab", "up", "down":
		m.focus = 1 - m.focus
		if m.focus == 0 {
			m.replace.Blur()
			return m, m.find.Focus()
		}
		m.find.Blur()
		return m, m.replace.Focus()
	case "enter":
		out := ReplaceMsg{Find: m.find.Value(), Replace: m.replace.Value()}
		return m, func() tea.Msg { return out }
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.find, cmd = m.find.Update(msg)
	} else {
		m.replace, cmd = m.replace.Update(msg)
	}
	return m, cmd
}

// buttonStyle lights up Replace All once the replacement field has focus.
func buttonStyle(p theme.Palette, active bool) lipgloss.Style {
	bg := p.ButtonBg
	if active {
		bg = p.ButtonActiveBg
	}
	return lipgloss.NewStyle().Background(bg).Foreground(p.ButtonFg).Padding(0, 1)
}

func (m Model) View(p theme.Palette) string {
	label := lipgloss.NewStyle().Width(10)
	input := lipgloss.NewStyle().Background(p.InputBg).Foreground(p.InputFg).Width(entryWidth + 1)
	focused := input.Underline(true)
	button := buttonStyle(p, m.focus == 1)
	faint := lipgloss.NewStyle().Foreground(p.Muted)

	fi, ri := input, input
	if m.focus == 0 {
		fi = focused
	} else {
		ri = focused
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("Find & Replace") + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render("Find:"), fi.Render(m.find.View())) + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render("Replace:"), ri.Render(m.replace.View())) + "\n\n")
	b.WriteString(button.Render("Replace All") + "  " + faint.Render("enter: replace all  tab: switch  esc: close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Background(p.Window).
		Padding(0, 1).
		Render(b.String())
}
