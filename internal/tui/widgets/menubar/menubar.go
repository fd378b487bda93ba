package menubar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textedit/internal/tui/state"
	"textedit/internal/tui/theme"
)

// Action names a menu command. The window controller maps keyboard
// shortcuts to the same actions.
type Action string

const (
	ActNew          Action = "new"
	ActOpen         Action = "open"
	ActSave         Action = "save"
	ActSaveAs       Action = "save-as"
	ActExit         Action = "exit"
	ActUndo         Action = "undo"
	ActRedo         Action = "redo"
	ActCut          Action = "cut"
	ActCopy         Action = "copy"
	ActPaste        Action = "paste"
	ActFindReplace  Action = "find-replace"
	ActToggleDark   Action = "toggle-dark"
	ActToggleTools  Action = "toggle-toolbar"
	ActToggleStatus Action = "toggle-statusbar"
	ActToggleWrap   Action = "toggle-wrap"
	ActFont         Action = "font"
	ActSize         Action = "size"
	ActColor        Action = "color"
	ActDiff         Action = "diff"
	ActHelp         Action = "help"
)

// ActionMsg is sent when a menu item is activated.
type ActionMsg struct{ Action Action }

// ClosedMsg is sent when the menu is dismissed without a choice.
type ClosedMsg struct{}

type Item struct {
	Label     string
	Key       string
	Action    Action
	Check     func(state.UIState) bool // non-nil for checkbox items
	Separator bool
}

type Menu struct {
	Title string
	Items []Item
}

var separator = Item{Separator: true}

// Menus returns the File, Edit and View menus.
func Menus() []Menu {
	return []Menu{
		{Title: "File", Items: []Item{
			{Label: "New", Key: "ctrl+n", Action: ActNew},
			{Label: "Open", Key: "ctrl+o", Action: ActOpen},
			{Label: "Save", Key: "ctrl+s", Action: ActSave},
			{Label: "Save As", Key: "alt+s", Action: ActSaveAs},
			{Label: "Show Changes", Key: "f9", Action: ActDiff},
			separator,
			{Label: "Exit", Key: "ctrl+q", Action: ActExit},
		}},
		{Title: "Edit", Items: []Item{
			{Label: "Undo", Key: "ctrl+z", Action: ActUndo},
			{Label: "Redo", Key: "ctrl+y", Action: ActRedo},
			separator,
			{Label: "Cut", Key: "ctrl+x", Action: ActCut},
			{Label: "Copy", Key: "ctrl+c", Action: ActCopy},
			{Label: "Paste", Key: "ctrl+v", Action: ActPaste},
			separator,
			{Label: "Find & Replace", Key: "ctrl+f", Action: ActFindReplace},
		}},
		{Title: "View", Items: []Item{
			{Label: "Toggle Dark Mode", Key: "f6", Action: ActToggleDark,
				Check: func(s state.UIState) bool { return s.DarkMode }},
			{Label: "Show Toolbar", Key: "f7", Action: ActToggleTools,
				Check: func(s state.UIState) bool { return s.ShowToolbar }},
			{Label: "Show Status Bar", Key: "f8", Action: ActToggleStatus,
				Check: func(s state.UIState) bool { return s.ShowStatusBar }},
			{Label: "Wrap Diff Lines", Key: "f5", Action: ActToggleWrap,
				Check: func(s state.UIState) bool { return s.Wrap }},
			separator,
			{Label: "Font…", Key: "f2", Action: ActFont},
			{Label: "Size…", Key: "f3", Action: ActSize},
			{Label: "Color…", Key: "f4", Action: ActColor},
			separator,
			{Label: "Help", Key: "f1", Action: ActHelp},
		}},
	}
}

type Model struct {
	menus []Menu
	open  bool
	cur   int // menu
	sel   int // item
}

func New() Model { return Model{menus: Menus()} }

func (m Model) IsOpen() bool { return m.open }
func (m Model) Current() int { return m.cur }
func (m Model) Selected() int { return m.sel }

// Open drops down menu i.
func (m Model) Open(i int) Model {
	if i < 0 || i >= len(m.menus) {
		i = 0
	}
	m.open = true
	m.cur = i
	m.sel = m.nextItem(-1, 1)
	return m
}

func (m Model) Close() Model {
	m.open = false
	return m
}

// OpenByTitle opens the menu whose title starts with the given letter, case-insensitive.
func (m Model) OpenByTitle(letter string) (Model, bool) {
	for i, mn := range m.menus {
		if strings.HasPrefix(strings.ToLower(mn.Title), strings.ToLower(letter)) {
			return m.Open(i), true
		}
	}
	return m, false
}

func (m Model) nextItem(from, dir int) int {
	items := m.menus[m.cur].Items
	n := len(items)
	for step := 1; step <= n; step++ {
		i := ((from+dir*step)%n + n) % n
		if !items[i].Separator {
			return i
		}
	}
	return 0
}

func (m Model) Update(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}
	switch msg.String() {
	case "esc", "f10":
		m.open = false
		return m, func() tea.Msg { return ClosedMsg{} }
	case "left":
		return m.Open((m.cur - 1 + len(m.menus)) % len(m.menus)), nil
	case "right":
		return m.Open((m.cur + 1) % len(m.menus)), nil
	case "up":
		m.sel = m.nextItem(m.sel, -1)
	case "down":
		m.sel = m.nextItem(m.sel, 1)
	case "enter", " ":
		act := m.menus[m.cur].Items[m.sel].Action
		m.open = false
		return m, func() tea.Msg { return ActionMsg{Action: act} }
	}
	return m, nil
}

// View renders the menu bar line.
func (m Model) View(p theme.Palette, width int) string {
	bar := lipgloss.NewStyle().Background(p.ToolbarBg).Foreground(p.ToolbarFg)
	active := bar.Background(p.SelectBg).Bold(true)

	parts := make([]string, 0, len(m.menus)+1)
	for i, mn := range m.menus {
		label := " " + mn.Title + " "
		if m.open && i == m.cur {
			parts = append(parts, active.Render(label))
		} else {
			parts = append(parts, bar.Render(label))
		}
	}
	parts = append(parts, bar.Faint(true).Render("  F10 menu  F1 help"))
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if width > 0 {
		line = bar.Width(width).Render(line)
	}
	return line
}

// Offset is the column where menu i starts on the bar.
func (m Model) Offset(i int) int {
	off := 0
	for j := 0; j < i && j < len(m.menus); j++ {
		off += lipgloss.Width(" " + m.menus[j].Title + " ")
	}
	return off
}

// Dropdown renders the open menu's items. Checkbox items show [x] or [ ].
func (m Model) Dropdown(s state.UIState, p theme.Palette) string {
	if !m.open {
		return ""
	}
	items := m.menus[m.cur].Items

	labelW, keyW := 0, 0
	for _, it := range items {
		labelW = max(labelW, lipgloss.Width(it.Label))
		keyW = max(keyW, lipgloss.Width(it.Key))
	}
	inner := 4 + labelW + 2 + keyW

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Muted).
		Background(p.InputBg).
		Foreground(p.InputFg)
	row := lipgloss.NewStyle().Background(p.InputBg).Foreground(p.InputFg).Width(inner)
	sel := row.Background(p.SelectBg)
	faint := row.Foreground(p.Muted)

	lines := make([]string, 0, len(items))
	for i, it := range items {
		if it.Separator {
			lines = append(lines, faint.Render(strings.Repeat("─", inner)))
			continue
		}
		mark := "    "
		if it.Check != nil {
			mark = "[ ] "
			if it.Check(s) {
				mark = "[x] "
			}
		}
		text := mark + it.Label + strings.Repeat(" ", labelW-lipgloss.Width(it.Label)+2) + it.Key
		if i == m.sel {
			lines = append(lines, sel.Render(text))
		} else {
			lines = append(lines, row.Render(text))
		}
	}
	return box.Render(strings.Join(lines, "\n"))
}
