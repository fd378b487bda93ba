package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"textedit/internal/document"
	"textedit/internal/logger"
	"textedit/internal/tui/state"
	"textedit/internal/tui/widgets/findreplace"
	"textedit/internal/tui/widgets/menubar"
	"textedit/internal/tui/widgets/prompt"
	"textedit/internal/tui/widgets/toolbar"
)

// Update handles all window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state = state.Resize(m.state, msg.Width, msg.Height)
		m.layout()
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case noticeClearMsg:
		if msg.gen == m.noticeGen {
			m.state.Notice = ""
		}
		return nil

	case fileChangedMsg:
		cmd := m.fileChanged(msg)
		if m.watcher == nil {
			return cmd
		}
		return tea.Batch(cmd, waitFileEvent(m.watcher.Events()))

	case menubar.ActionMsg:
		focus := m.setMode(modeEdit)
		return tea.Batch(focus, m.do(msg.Action))

	case menubar.ClosedMsg:
		return m.setMode(modeEdit)

	case toolbar.FontSelectedMsg:
		m.state = state.SetFontFamily(m.state, msg.Family)
		m.toolbar.Sync(m.state.Font)
		logger.Debug("font family changed", "family", msg.Family)
		focus := m.setMode(modeEdit)
		return tea.Batch(focus, m.notice("Font: "+msg.Family))

	case toolbar.SizeChangedMsg:
		m.state = state.SetFontSize(m.state, msg.Size)
		if m.toolbar.Field() == toolbar.FieldNone {
			return m.setMode(modeEdit)
		}
		return nil

	case toolbar.ClosedMsg:
		return m.setMode(modeEdit)

	case prompt.SubmitMsg:
		focus := m.setMode(modeEdit)
		return tea.Batch(focus, m.submit(msg))

	case prompt.CancelMsg:
		m.quitAfterSave = false
		return m.setMode(modeEdit)

	case findreplace.ReplaceMsg:
		focus := m.setMode(modeEdit)
		return tea.Batch(focus, m.replaceAll(msg.Find, msg.Replace))

	case findreplace.ClosedMsg:
		return m.setMode(modeEdit)
	}

	if m.mode == modeEdit {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeHelp:
		return m.setMode(modeEdit)

	case modeConfirmQuit:
		return m.confirmQuit(msg)

	case modeDiff:
		return m.updateDiff(msg)

	case modePrompt:
		m.prompt, cmd = m.prompt.Update(msg)
		return cmd

	case modeFind:
		m.find, cmd = m.find.Update(msg)
		return cmd

	case modeMenu:
		m.menu, cmd = m.menu.Update(msg)
		return cmd

	case modeToolbar:
		m.toolbar, cmd = m.toolbar.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, keys.Menu):
		m.menu = m.menu.Open(0)
		return m.setMode(modeMenu)
	case key.Matches(msg, keys.MenuFile, keys.MenuEdit, keys.MenuView):
		var ok bool
		m.menu, ok = m.menu.OpenByTitle(strings.TrimPrefix(msg.String(), "alt+"))
		if ok {
			return m.setMode(modeMenu)
		}
		return nil
	}
	if act, ok := actionFor(msg); ok {
		return m.do(act)
	}
	return m.edit(msg)
}

// edit forwards a key to the text area and records the change, if any, in the document.
func (m *Model) edit(msg tea.KeyMsg) tea.Cmd {
	before := m.editor.Value()
	at := m.editor.Cursor()

	var cmd tea.Cmd
	if msg.Type == tea.KeyTab {
		m.editor.InsertString(string(document.TabMark))
	} else {
		m.editor, cmd = m.editor.Update(msg)
	}

	if after := m.editor.Value(); after != before {
		m.doc.SetDisplay(after, at, m.editor.Cursor(), editKind(msg))
		m.refreshStatus()
	}
	return cmd
}

// editKind lets plain typing coalesce into one undo step per word.
func editKind(msg tea.KeyMsg) document.EditKind {
	if msg.Type != tea.KeyRunes || msg.Paste {
		return document.EditOther
	}
	if strings.ContainsAny(string(msg.Runes), " \t\n") {
		return document.EditOther
	}
	return document.EditInsert
}

func (m *Model) updateDiff(msg tea.KeyMsg) tea.Cmd {
	page := max(m.bodyH-2, 1)
	switch msg.String() {
	case "esc", "q", "f9", "enter":
		if m.diffReturn == modeConfirmQuit {
			m.mode = modeConfirmQuit
			return nil
		}
		return m.setMode(modeEdit)
	case "v":
		m.state = state.ToggleView(m.state)
	case "w", "f5":
		m.state = state.ToggleWrap(m.state)
	case "up", "k":
		m.state = state.ScrollDiff(m.state, -1)
	case "down", "j":
		m.state = state.ScrollDiff(m.state, 1)
	case "pgup":
		m.state = state.ScrollDiff(m.state, -page)
	case "pgdown", " ":
		m.state = state.ScrollDiff(m.state, page)
	case "home", "g":
		m.state.ScrollV = 0
	}
	return nil
}

func (m *Model) confirmQuit(msg tea.KeyMsg) tea.Cmd {
	switch strings.ToLower(msg.String()) {
	case "s", "y":
		if m.doc.Path() == "" {
			m.quitAfterSave = true
			m.prompt = prompt.NewSaveAs("")
			return m.setMode(modePrompt)
		}
		if err := m.doc.Save(); err != nil {
			focus := m.setMode(modeEdit)
			return tea.Batch(focus, m.fail("Save failed", err))
		}
		return m.quit()
	case "d", "n":
		return m.quit()
	case "v", "f9":
		return m.openDiff(modeConfirmQuit)
	case "esc", "c":
		return m.setMode(modeEdit)
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	logger.Info("exiting", "path", m.doc.Path(), "modified", m.doc.Modified())
	return tea.Quit
}

func (m *Model) fileChanged(ev fileChangedMsg) tea.Cmd {
	if ev.Path == "" || ev.Path != absPath(m.doc.Path()) {
		return nil
	}
	if ev.Removed {
		logger.Warn("open file removed on disk", "path", ev.Path)
		return m.notice("File was moved or deleted on disk")
	}
	// our own saves leave the disk equal to the last saved text
	if !m.doc.ChangedOnDisk() {
		return nil
	}
	logger.Info("open file changed on disk", "path", ev.Path)
	return m.notice("File changed on disk (F9 shows the difference)")
}
