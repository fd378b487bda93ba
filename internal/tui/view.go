package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"textedit/internal/tui/theme"
)

// View renders menu bar, toolbar, body and status bar top to bottom.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	p := theme.For(m.state)
	w := m.state.Width

	parts := []string{m.menu.View(p, w)}
	if m.state.ShowToolbar || m.mode == modeToolbar {
		parts = append(parts, m.toolbar.View(p, w))
	}
	parts = append(parts, m.body(p))
	if m.state.ShowStatusBar {
		parts = append(parts, m.status.View(m.state, p, w))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// body is the text area, or the dialog currently covering it.
func (m Model) body(p theme.Palette) string {
	w, h := m.state.Width, m.bodyH
	place := func(s string) string {
		if w <= 0 {
			return s
		}
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, s,
			lipgloss.WithWhitespaceBackground(p.Window))
	}

	switch m.mode {
	case modeMenu:
		drop := lipgloss.NewStyle().MarginLeft(m.menu.Offset(m.menu.Current())).
			Render(m.menu.Dropdown(m.state, p))
		if w <= 0 {
			return drop
		}
		return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, drop,
			lipgloss.WithWhitespaceBackground(p.Window))
	case modePrompt:
		return place(m.prompt.View(p, min(max(w-4, 20), 80)))
	case modeFind:
		return place(m.find.View(p))
	case modeHelp:
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1).
			Render(m.help.View(m.state, min(max(w-8, 20), 70)))
		return place(box)
	case modeConfirmQuit:
		return place(m.confirmView(p))
	case modeDiff:
		out := m.diff.View(m.state, p, m.diskText, m.doc.Text(), max(h-2, 1))
		if w <= 0 {
			return out
		}
		return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, out,
			lipgloss.WithWhitespaceBackground(p.Window))
	}

	if m.mode == modeToolbar && len(m.toolbar.Suggestions()) > 0 {
		// the listbox drawn by the toolbar takes rows from the text area
		lines := strings.Split(m.editor.View(), "\n")
		cut := min(len(m.toolbar.Suggestions()), len(lines))
		return strings.Join(lines[cut:], "\n")
	}
	return m.editor.View()
}

func (m Model) confirmView(p theme.Palette) string {
	name := m.doc.Path()
	if name == "" {
		name = "Untitled"
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Danger).Render("Unsaved changes")
	faint := lipgloss.NewStyle().Foreground(p.Muted)

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString("Save changes to " + name + " before closing?\n\n")
	b.WriteString(faint.Render("s: save   d: discard   v: view changes   esc: cancel"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Danger).
		Padding(0, 1).
		Render(b.String())
}
