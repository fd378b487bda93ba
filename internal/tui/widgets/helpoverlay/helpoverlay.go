package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"textedit/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

type section struct {
	title string
	keys  []string
}

var sections = []section{
	{"File", []string{"Ctrl+N: new", "Ctrl+O: open", "Ctrl+S: save", "Alt+S: save as", "F9: show unsaved changes", "Ctrl+Q: exit"}},
	{"Edit", []string{"Ctrl+Z: undo", "Ctrl+Y: redo", "Ctrl+X: cut line", "Ctrl+C: copy line", "Ctrl+V: paste", "Ctrl+F: find & replace"}},
	{"View", []string{"F6: toggle dark mode", "F7: show/hide toolbar", "F8: show/hide status bar"}},
	{"Font", []string{"F2: font family (type to filter, ↑/↓ pick, Enter apply)", "F3: font size (↑/↓ step, Enter apply)", "F4: font color"}},
	{"Menus", []string{"F10 or Alt+F/E/V: open menu", "←/→: switch menu", "Enter: activate", "Esc: close"}},
}

// View returns grouped key help wrapped to width, with the current view flags.
func (HelpOverlay) View(s state.UIState, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Font: %s %d, Dark: %s)\n", s.Font.Family, s.Font.Size, onOff(s.DarkMode))
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			line := k
			if width > 4 {
				line = wordwrap.WrapString(k, uint(width-4))
				line = strings.ReplaceAll(line, "\n", "\n    ")
			}
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	b.WriteString("\nPress any key to close.")
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
