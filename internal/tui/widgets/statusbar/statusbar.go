package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"textedit/internal/document"
	"textedit/internal/tui/state"
	"textedit/internal/tui/theme"
)

type StatusBar struct {
	stats    document.Stats
	modified bool
}

func NewStatusBar() StatusBar { return StatusBar{} }

// Update records the counts for the current buffer.
func (b StatusBar) Update(stats document.Stats, modified bool) StatusBar {
	b.stats = stats
	b.modified = modified
	return b
}

func (b StatusBar) Stats() document.Stats { return b.stats }

// Text is the plain status line: counts first, then the modified marker.
func (b StatusBar) Text() string {
	text := b.stats.String()
	if b.modified {
		text += "  [modified]"
	}
	return text
}

// View renders the counts on the left and the notice on the right, one line of width w.
func (b StatusBar) View(s state.UIState, p theme.Palette, w int) string {
	left := b.Text()
	right := s.Notice
	if w <= 0 {
		if right == "" {
			return left
		}
		return left + "  " + right
	}

	gap := w - runewidth.StringWidth(left) - runewidth.StringWidth(right) - 2
	if gap < 2 {
		right = runewidth.Truncate(right, max(0, w-runewidth.StringWidth(left)-4), "…")
		gap = w - runewidth.StringWidth(left) - runewidth.StringWidth(right) - 2
	}
	line := " " + left + strings.Repeat(" ", max(gap, 1)) + right + " "
	line = runewidth.Truncate(line, w, "")

	return lipgloss.NewStyle().
		Background(p.StatusBg).
		Foreground(p.StatusFg).
		Width(w).
		Render(line)
}
