package prompt

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textedit/internal/tui/theme"
)

// Kind says what the prompt is collecting.
type Kind int

const (
	KindOpen Kind = iota
	KindSaveAs
	KindColor
)

const maxSuggestions = 8

// SubmitMsg carries the entered value. Paths are already expanded.
type SubmitMsg struct {
	Kind  Kind
	Value string
}

// CancelMsg is sent on esc.
type CancelMsg struct{ Kind Kind }

// Preset colors offered by the color prompt.
var Swatches = []string{"#ffffff", "#d4d4d4", "#9cdcfe", "#4ec9b0", "#dcdcaa", "#ce9178", "#c586c0", "#f44747"}

type Model struct {
	kind    Kind
	title   string
	input   textinput.Model
	suggest []string
	sel     int // -1: nothing highlighted
}

func newModel(kind Kind, title, value string) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Width = 60
	in.SetValue(value)
	in.CursorEnd()
	in.Focus()
	m := Model{kind: kind, title: title, input: in, sel: -1}
	m.computeSuggestions()
	return m
}

// NewOpen asks for a file to open, starting in dir.
func NewOpen(dir string) Model {
	return newModel(KindOpen, "Open file", withSep(dir))
}

// NewSaveAs asks for a target path, prefilled with the current one.
func NewSaveAs(current string) Model {
	return newModel(KindSaveAs, "Save as (default extension .txt)", current)
}

// NewColor asks for a font color, prefilled with the current one.
func NewColor(current string) Model {
	m := newModel(KindColor, "Choose Font Color", current)
	m.input.Placeholder = "#rrggbb"
	return m
}

func withSep(dir string) string {
	if dir == "" || strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir
	}
	return dir + string(filepath.Separator)
}

func (m Model) Kind() Kind            { return m.kind }
func (m Model) Value() string         { return m.input.Value() }
func (m Model) Suggestions() []string { return m.suggest }

func (m Model) Update(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		kind := m.kind
		return m, func() tea.Msg { return CancelMsg{Kind: kind} }
	case "enter":
		val := m.input.Value()
		if m.sel >= 0 && m.sel < len(m.suggest) {
			val = m.suggest[m.sel]
		}
		if strings.TrimSpace(val) == "" {
			return m, nil
		}
		if m.kind != KindColor {
			val = ExpandPath(val)
		}
		out := SubmitMsg{Kind: m.kind, Value: val}
		return m, func() tea.Msg { return out }
	case "tab":
		if len(m.suggest) > 0 {
			i := max(m.sel, 0)
			m.input.SetValue(m.suggest[i])
			m.input.CursorEnd()
			m.computeSuggestions()
		}
		return m, nil
	case "up":
		if m.sel >= 0 {
			m.sel--
		}
		return m, nil
	case "down":
		if m.sel < len(m.suggest)-1 {
			m.sel++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.computeSuggestions()
	return m, cmd
}

func (m *Model) computeSuggestions() {
	m.sel = -1
	if m.kind == KindColor {
		m.suggest = colorSuggestions(m.input.Value())
		return
	}
	m.suggest = Suggestions(m.input.Value())
}

func colorSuggestions(in string) []string {
	in = strings.ToLower(strings.TrimSpace(in))
	var out []string
	for _, s := range Swatches {
		if strings.HasPrefix(s, in) || strings.HasPrefix(s[1:], in) {
			out = append(out, s)
		}
	}
	return out
}

// Suggestions lists up to 8 directory entries matching the partial path in.
// Text files sort first, then directories, then everything else.
func Suggestions(in string) []string {
	if strings.TrimSpace(in) == "" {
		return nil
	}
	expanded := ExpandPath(in)
	dir, base := expanded, ""
	if fi, err := os.Stat(expanded); err != nil || !fi.IsDir() || !strings.HasSuffix(in, string(filepath.Separator)) {
		dir = filepath.Dir(expanded)
		base = filepath.Base(expanded)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	rank := func(e os.DirEntry) int {
		switch {
		case strings.EqualFold(filepath.Ext(e.Name()), ".txt"):
			return 0
		case e.IsDir():
			return 1
		default:
			return 2
		}
	}
	var matched []os.DirEntry
	for _, e := range entries {
		if base == "" || strings.Contains(strings.ToLower(e.Name()), strings.ToLower(base)) {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return rank(matched[i]) < rank(matched[j]) })

	home, _ := os.UserHomeDir()
	var out []string
	for _, e := range matched {
		cand := filepath.Join(dir, e.Name())
		if e.IsDir() {
			cand += string(filepath.Separator)
		}
		// Present with ~/ when within home
		if home != "" && strings.HasPrefix(cand, home+string(filepath.Separator)) {
			cand = "~" + strings.TrimPrefix(cand, home)
		}
		out = append(out, cand)
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}

// ExpandPath resolves ~/, environment variables and relative paths.
func ExpandPath(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, p[2:])
		}
	}
	p = os.ExpandEnv(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}

// View renders the prompt as a bordered box of the given width.
func (m Model) View(p theme.Palette, width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	faint := lipgloss.NewStyle().Foreground(p.Muted)
	sel := lipgloss.NewStyle().Background(p.SelectBg).Foreground(p.InputFg)

	var b strings.Builder
	b.WriteString(title.Render(m.title) + "\n")
	b.WriteString(m.input.View() + "\n")
	for i, s := range m.suggest {
		label := s
		if m.kind == KindColor {
			label = theme.Swatch(s)
		}
		if i == m.sel {
			b.WriteString(sel.Render("› "+s) + "\n")
			continue
		}
		b.WriteString(faint.Render("  • ") + label + "\n")
	}
	b.WriteString(faint.Render("enter: confirm   tab: complete   ↑/↓: pick   esc: cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box.Render(b.String())
}
