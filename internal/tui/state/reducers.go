package state

// ToggleDarkMode flips between the dark and light palettes.
func ToggleDarkMode(s UIState) UIState {
	s.DarkMode = !s.DarkMode
	return s
}

// ToggleToolbar shows or hides the font toolbar.
func ToggleToolbar(s UIState) UIState {
	s.ShowToolbar = !s.ShowToolbar
	return s
}

// ToggleStatusBar shows or hides the word/character counter.
func ToggleStatusBar(s UIState) UIState {
	s.ShowStatusBar = !s.ShowStatusBar
	return s
}

// ToggleWrap flips line wrapping in the diff view.
func ToggleWrap(s UIState) UIState {
	s.Wrap = !s.Wrap
	return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
	if s.View == Unified {
		s.View = SideBySide
	} else {
		s.View = Unified
	}
	return s
}

// SetFontFamily selects a family. Empty names are ignored.
func SetFontFamily(s UIState, family string) UIState {
	if family != "" {
		s.Font.Family = family
	}
	return s
}

// SetFontSize selects a size. Non-positive sizes are ignored.
func SetFontSize(s UIState, size int) UIState {
	if size > 0 {
		s.Font.Size = size
	}
	return s
}

// SetFontColor sets the text color. Callers validate the value.
func SetFontColor(s UIState, color string) UIState {
	if color != "" {
		s.Font.Color = color
	}
	return s
}

// ScrollDiff moves the diff view by delta lines, clamped at the top.
func ScrollDiff(s UIState, delta int) UIState {
	s.ScrollV += delta
	if s.ScrollV < 0 {
		s.ScrollV = 0
	}
	return s
}

// Resize records the window size and falls back to unified when too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	threshold := 2*s.MinCol + 3
	if s.View == SideBySide && s.Width < threshold {
		s.View = Unified
		s.Notice = "Narrow width: using unified view"
	}
	return s
}
