package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"textedit/internal/fonts"
	"textedit/internal/tui/state"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette is the full set of widget colors for one mode.
type Palette struct {
	Window lipgloss.Color

	TextBg lipgloss.Color
	TextFg lipgloss.Color
	Cursor lipgloss.Color

	ToolbarBg lipgloss.Color
	ToolbarFg lipgloss.Color

	StatusBg lipgloss.Color
	StatusFg lipgloss.Color

	InputBg  lipgloss.Color
	InputFg  lipgloss.Color
	SelectBg lipgloss.Color

	ButtonBg       lipgloss.Color
	ButtonFg       lipgloss.Color
	ButtonActiveBg lipgloss.Color

	Accent lipgloss.Color
	Danger lipgloss.Color
	Muted  lipgloss.Color
}

// Colors shared by both modes.
const (
	accent = lipgloss.Color("#3D6DFF")
	danger = lipgloss.Color("#D9534F")
	muted  = lipgloss.Color("#6C757D")

	// SystemButtonFace on the platforms the light theme imitates.
	buttonFace = lipgloss.Color("#f0f0f0")
)

// Dark is the default palette. The text area and caret take the font color.
func Dark(fontColor string) Palette {
	fg := lipgloss.Color(fontColor)
	if fontColor == "" {
		fg = lipgloss.Color("#ffffff")
	}
	return Palette{
		Window:         lipgloss.Color("#1e1e1e"),
		TextBg:         lipgloss.Color("#1e1e1e"),
		TextFg:         fg,
		Cursor:         fg,
		ToolbarBg:      lipgloss.Color("#333333"),
		ToolbarFg:      lipgloss.Color("#ffffff"),
		StatusBg:       lipgloss.Color("#2a2a2a"),
		StatusFg:       lipgloss.Color("#ffffff"),
		InputBg:        lipgloss.Color("#2a2a2a"),
		InputFg:        lipgloss.Color("#ffffff"),
		SelectBg:       lipgloss.Color("#444444"),
		ButtonBg:       lipgloss.Color("#2a2a2a"),
		ButtonFg:       lipgloss.Color("#ffffff"),
		ButtonActiveBg: lipgloss.Color("#3a3a3a"),
		Accent:         accent,
		Danger:         danger,
		Muted:          muted,
	}
}

// Light ignores the font color: text is always black on white.
func Light() Palette {
	return Palette{
		Window:         buttonFace,
		TextBg:         lipgloss.Color("#ffffff"),
		TextFg:         lipgloss.Color("#000000"),
		Cursor:         lipgloss.Color("#000000"),
		ToolbarBg:      buttonFace,
		ToolbarFg:      lipgloss.Color("#000000"),
		StatusBg:       buttonFace,
		StatusFg:       lipgloss.Color("#000000"),
		InputBg:        lipgloss.Color("#ffffff"),
		InputFg:        lipgloss.Color("#000000"),
		SelectBg:       lipgloss.Color("#d3d3d3"),
		ButtonBg:       buttonFace,
		ButtonFg:       lipgloss.Color("#000000"),
		ButtonActiveBg: lipgloss.Color("#d3d3d3"),
		Accent:         accent,
		Danger:         danger,
		Muted:          muted,
	}
}

// For returns the palette for the current mode and font color.
func For(s state.UIState) Palette {
	if s.DarkMode {
		return Dark(s.Font.Color)
	}
	return Light()
}

// Swatch renders a color sample with a readable label on top of it.
func Swatch(hex string) string {
	fg := lipgloss.Color("#ffffff")
	if fonts.IsLight(hex) {
		fg = lipgloss.Color("#000000")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(fg).
		Padding(0, 1).
		Render(hex)
}
