package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"textedit/internal/watch"
)

// noticeClearMsg fires after a delay to clear the status bar notice.
type noticeClearMsg struct{ gen int }

// fileChangedMsg is sent when another program touches the open file.
type fileChangedMsg watch.Event

func waitFileEvent(ch <-chan watch.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return fileChangedMsg(ev)
	}
}
