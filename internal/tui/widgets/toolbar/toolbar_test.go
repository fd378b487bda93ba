package toolbar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textedit/internal/tui/state"
	"textedit/internal/tui/theme"
)

var families = []string{"Arial", "Arial Black", "Courier New", "DejaVu Sans Mono", "Georgia"}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func newBar() Model {
	return New(families, state.Font{Family: "Arial", Size: 12, Color: "#ffffff"})
}

func msgOf(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestFontFilterAndSelect(t *testing.T) {
	m := newBar()
	m.FocusFont()
	assert.Equal(t, FieldFont, m.Field())
	assert.Equal(t, []string{"Arial", "Arial Black"}, m.Suggestions(), "prefilled with the current family")

	// clear the entry and type a new query
	for i := 0; i < len("Arial"); i++ {
		m, _ = m.Update(key(tea.KeyBackspace))
	}
	m, _ = m.Update(runes("co"))
	assert.Equal(t, []string{"Courier New"}, m.Suggestions())

	m, cmd := m.Update(key(tea.KeyEnter))
	assert.Equal(t, FontSelectedMsg{Family: "Courier New"}, msgOf(t, cmd))
	assert.Equal(t, FieldNone, m.Field())
	assert.Empty(t, m.Suggestions())
}

func TestFontListboxNavigation(t *testing.T) {
	m := newBar()
	m.FocusFont()
	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyDown)) // clamps at the last entry
	assert.Equal(t, 1, m.Selected())
	m, cmd := m.Update(key(tea.KeyEnter))
	assert.Equal(t, FontSelectedMsg{Family: "Arial Black"}, msgOf(t, cmd))
}

func TestFontEnterWithoutMatchesStays(t *testing.T) {
	m := newBar()
	m.FocusFont()
	m, _ = m.Update(runes("zzz"))
	assert.Empty(t, m.Suggestions())
	m, cmd := m.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, FieldFont, m.Field())
}

func TestEscClosesAndRestores(t *testing.T) {
	m := newBar()
	m.FocusFont()
	m, _ = m.Update(runes("xyz"))
	m, cmd := m.Update(key(tea.KeyEsc))
	assert.Equal(t, ClosedMsg{}, msgOf(t, cmd))
	assert.Equal(t, FieldNone, m.Field())
	assert.Equal(t, "Arial", m.font.Value())
}

func TestSizeCycles(t *testing.T) {
	m := newBar()
	m.FocusSize()
	m, cmd := m.Update(key(tea.KeyUp))
	assert.Equal(t, SizeChangedMsg{Size: 14}, msgOf(t, cmd))
	m, cmd = m.Update(key(tea.KeyDown))
	assert.Equal(t, SizeChangedMsg{Size: 12}, msgOf(t, cmd))
	m, cmd = m.Update(key(tea.KeyDown))
	assert.Equal(t, SizeChangedMsg{Size: 10}, msgOf(t, cmd))
}

func TestSizeTyped(t *testing.T) {
	m := newBar()
	m.FocusSize()
	m, _ = m.Update(key(tea.KeyBackspace))
	m, _ = m.Update(key(tea.KeyBackspace))
	m, _ = m.Update(runes("17"))
	m, cmd := m.Update(key(tea.KeyEnter))
	assert.Equal(t, SizeChangedMsg{Size: 17}, msgOf(t, cmd))
	assert.Equal(t, "17", m.size.Value())
}

func TestMalformedSizeIgnored(t *testing.T) {
	m := newBar()
	m.FocusSize()
	m, _ = m.Update(key(tea.KeyBackspace))
	m, _ = m.Update(key(tea.KeyBackspace))
	m, _ = m.Update(runes("ab"))
	m, cmd := m.Update(key(tea.KeyEnter))
	assert.Equal(t, ClosedMsg{}, msgOf(t, cmd))
	assert.Equal(t, "12", m.size.Value(), "display falls back to the current size")
}

func TestViewShowsListboxOnlyWhileFocused(t *testing.T) {
	m := newBar()
	v := m.View(theme.Dark("#ffffff"), 80)
	assert.Contains(t, v, "Font:")
	assert.Contains(t, v, "Size:")
	assert.Contains(t, v, "Color")
	assert.Equal(t, 1, strings.Count(v, "\n")+1)

	m.FocusFont()
	v = m.View(theme.Dark("#ffffff"), 80)
	assert.Contains(t, v, "Arial Black")
	assert.Equal(t, 3, strings.Count(v, "\n")+1)
}
