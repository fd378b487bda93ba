package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"textedit/internal/tui/widgets/menubar"
)

type keyMap struct {
	New          key.Binding
	Open         key.Binding
	Save         key.Binding
	SaveAs       key.Binding
	Quit         key.Binding
	Undo         key.Binding
	Redo         key.Binding
	Cut          key.Binding
	Copy         key.Binding
	Paste        key.Binding
	FindReplace  key.Binding
	ToggleDark   key.Binding
	ToggleTools  key.Binding
	ToggleStatus key.Binding
	ToggleWrap   key.Binding
	Font         key.Binding
	Size         key.Binding
	Color        key.Binding
	Diff         key.Binding
	Help         key.Binding
	Menu         key.Binding
	MenuFile     key.Binding
	MenuEdit     key.Binding
	MenuView     key.Binding
}

var keys = keyMap{
	New: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "new file"),
	),
	Open: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "open file"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	SaveAs: key.NewBinding(
		key.WithKeys("alt+s"),
		key.WithHelp("alt+s", "save as"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("ctrl+q", "exit"),
	),
	Undo: key.NewBinding(
		key.WithKeys("ctrl+z"),
		key.WithHelp("ctrl+z", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "redo"),
	),
	Cut: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "cut line"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "copy line"),
	),
	Paste: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "paste"),
	),
	FindReplace: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "find & replace"),
	),
	ToggleDark: key.NewBinding(
		key.WithKeys("f6"),
		key.WithHelp("f6", "toggle dark mode"),
	),
	ToggleTools: key.NewBinding(
		key.WithKeys("f7"),
		key.WithHelp("f7", "show toolbar"),
	),
	ToggleStatus: key.NewBinding(
		key.WithKeys("f8"),
		key.WithHelp("f8", "show status bar"),
	),
	ToggleWrap: key.NewBinding(
		key.WithKeys("f5"),
		key.WithHelp("f5", "wrap diff lines"),
	),
	Font: key.NewBinding(
		key.WithKeys("f2"),
		key.WithHelp("f2", "font family"),
	),
	Size: key.NewBinding(
		key.WithKeys("f3"),
		key.WithHelp("f3", "font size"),
	),
	Color: key.NewBinding(
		key.WithKeys("f4"),
		key.WithHelp("f4", "font color"),
	),
	Diff: key.NewBinding(
		key.WithKeys("f9"),
		key.WithHelp("f9", "show changes"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Menu: key.NewBinding(
		key.WithKeys("f10"),
		key.WithHelp("f10", "menu"),
	),
	MenuFile: key.NewBinding(key.WithKeys("alt+f")),
	MenuEdit: key.NewBinding(key.WithKeys("alt+e")),
	MenuView: key.NewBinding(key.WithKeys("alt+v")),
}

// actionFor maps a shortcut to the menu action it triggers.
func actionFor(msg tea.KeyMsg) (menubar.Action, bool) {
	bindings := []struct {
		b   key.Binding
		act menubar.Action
	}{
		{keys.New, menubar.ActNew},
		{keys.Open, menubar.ActOpen},
		{keys.Save, menubar.ActSave},
		{keys.SaveAs, menubar.ActSaveAs},
		{keys.Quit, menubar.ActExit},
		{keys.Undo, menubar.ActUndo},
		{keys.Redo, menubar.ActRedo},
		{keys.Cut, menubar.ActCut},
		{keys.Copy, menubar.ActCopy},
		{keys.Paste, menubar.ActPaste},
		{keys.FindReplace, menubar.ActFindReplace},
		{keys.ToggleDark, menubar.ActToggleDark},
		{keys.ToggleTools, menubar.ActToggleTools},
		{keys.ToggleStatus, menubar.ActToggleStatus},
		{keys.ToggleWrap, menubar.ActToggleWrap},
		{keys.Font, menubar.ActFont},
		{keys.Size, menubar.ActSize},
		{keys.Color, menubar.ActColor},
		{keys.Diff, menubar.ActDiff},
		{keys.Help, menubar.ActHelp},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			return kb.act, true
		}
	}
	return "", false
}
