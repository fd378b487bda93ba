package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"textedit/internal/logger"
	"textedit/internal/tui/state"
	"textedit/internal/watch"
)

// Run shows the editor window until the user exits and returns the final
// view state so the caller can persist preferences.
func Run(opts Options, noColor bool) (state.UIState, error) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if opts.Watcher == nil {
		w, err := watch.New()
		if err != nil {
			logger.Warn("file watching disabled", "error", err)
		} else {
			opts.Watcher = w
			defer w.Close()
		}
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return m.State(), fmt.Errorf("run editor: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return m.State(), nil
}
