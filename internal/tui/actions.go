package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"textedit/internal/document"
	"textedit/internal/fonts"
	"textedit/internal/logger"
	"textedit/internal/tui/state"
	"textedit/internal/tui/widgets/menubar"
	"textedit/internal/tui/widgets/prompt"
)

// do runs one menu action. Shortcuts land here too.
func (m *Model) do(act menubar.Action) tea.Cmd {
	logger.Debug("action", "action", string(act))
	switch act {
	case menubar.ActNew:
		return m.newFile()
	case menubar.ActOpen:
		m.prompt = prompt.NewOpen(m.startDir())
		return m.setMode(modePrompt)
	case menubar.ActSave:
		return m.save()
	case menubar.ActSaveAs:
		m.prompt = prompt.NewSaveAs(m.doc.Path())
		return m.setMode(modePrompt)
	case menubar.ActExit:
		if m.doc.Modified() {
			return m.setMode(modeConfirmQuit)
		}
		return m.quit()

	case menubar.ActUndo:
		return m.undo()
	case menubar.ActRedo:
		return m.redo()
	case menubar.ActCut:
		return m.cut()
	case menubar.ActCopy:
		return m.copyLine()
	case menubar.ActPaste:
		return m.paste()
	case menubar.ActFindReplace:
		m.find = m.find.Reset()
		return m.setMode(modeFind)

	case menubar.ActToggleDark:
		m.state = state.ToggleDarkMode(m.state)
		m.applyTheme()
		return nil
	case menubar.ActToggleTools:
		m.state = state.ToggleToolbar(m.state)
		m.layout()
		return nil
	case menubar.ActToggleStatus:
		m.state = state.ToggleStatusBar(m.state)
		m.layout()
		return nil
	case menubar.ActToggleWrap:
		m.state = state.ToggleWrap(m.state)
		return nil

	case menubar.ActFont:
		cmd := m.toolbar.FocusFont()
		m.setMode(modeToolbar)
		return cmd
	case menubar.ActSize:
		cmd := m.toolbar.FocusSize()
		m.setMode(modeToolbar)
		return cmd
	case menubar.ActColor:
		m.prompt = prompt.NewColor(m.state.Font.Color)
		return m.setMode(modePrompt)

	case menubar.ActDiff:
		return m.openDiff(modeEdit)
	case menubar.ActHelp:
		return m.setMode(modeHelp)
	}
	return nil
}

func (m *Model) startDir() string {
	if p := m.doc.Path(); p != "" {
		return filepath.Dir(absPath(p))
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}

func absPath(p string) string {
	if p == "" {
		return ""
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// showDocument loads the document text into the text area.
func (m *Model) showDocument(cur document.Cursor) {
	m.editor.SetValue(m.doc.Display())
	m.editor.SetCursor(cur)
	m.refreshStatus()
}

func (m *Model) newFile() tea.Cmd {
	m.doc.Reset()
	m.showDocument(document.Cursor{})
	if m.watcher != nil {
		m.watcher.Unwatch()
	}
	logger.Info("new file")
	return m.setTitle()
}

func (m *Model) openFile(path string) tea.Cmd {
	if err := m.doc.Open(path); err != nil {
		return m.fail("Open failed", err)
	}
	m.showDocument(document.Cursor{})
	m.watch()
	logger.Info("opened file", "path", path, "bytes", m.doc.Size())

	text := fmt.Sprintf("Opened %s (%s)", filepath.Base(path), humanize.Bytes(uint64(m.doc.Size())))
	// the text area drops control characters and invalid UTF-8
	if m.doc.Adopt(m.editor.Value()) {
		m.refreshStatus()
		logger.Warn("file has text the editor rewrites", "path", path)
		text = fmt.Sprintf("%s has characters the editor cannot keep; saving will change them", filepath.Base(path))
	}
	return tea.Batch(m.setTitle(), m.notice(text))
}

func (m *Model) watch() {
	if m.watcher == nil || m.doc.Path() == "" {
		return
	}
	if err := m.watcher.Watch(m.doc.Path()); err != nil {
		logger.Warn("cannot watch file", "path", m.doc.Path(), "error", err)
	}
}

func (m *Model) save() tea.Cmd {
	if err := m.doc.Save(); err != nil {
		if errors.Is(err, document.ErrNoPath) {
			m.prompt = prompt.NewSaveAs("")
			return m.setMode(modePrompt)
		}
		return m.fail("Save failed", err)
	}
	m.refreshStatus()
	logger.Info("saved file", "path", m.doc.Path(), "bytes", m.doc.Size())
	return m.savedNotice()
}

func (m *Model) saveAs(path string) tea.Cmd {
	used, err := m.doc.SaveAs(path)
	if err != nil {
		m.quitAfterSave = false
		return m.fail("Save failed", err)
	}
	m.refreshStatus()
	m.watch()
	logger.Info("saved file as", "path", used, "bytes", m.doc.Size())
	if m.quitAfterSave {
		return m.quit()
	}
	return tea.Batch(m.setTitle(), m.savedNotice())
}

func (m *Model) savedNotice() tea.Cmd {
	return m.notice(fmt.Sprintf("Saved %s (%s)", filepath.Base(m.doc.Path()), humanize.Bytes(uint64(m.doc.Size()))))
}

func (m *Model) submit(msg prompt.SubmitMsg) tea.Cmd {
	switch msg.Kind {
	case prompt.KindOpen:
		return m.openFile(msg.Value)
	case prompt.KindSaveAs:
		return m.saveAs(msg.Value)
	case prompt.KindColor:
		color, err := fonts.ParseColor(msg.Value)
		if err != nil {
			return m.notice("Invalid color " + msg.Value)
		}
		m.state = state.SetFontColor(m.state, color)
		m.toolbar.Sync(m.state.Font)
		m.applyTheme()
		return nil
	}
	return nil
}

func (m *Model) undo() tea.Cmd {
	snap, ok := m.doc.Undo()
	if !ok {
		return m.notice("Nothing to undo")
	}
	m.showDocument(snap.Cursor)
	return nil
}

func (m *Model) redo() tea.Cmd {
	snap, ok := m.doc.Redo()
	if !ok {
		return m.notice("Nothing to redo")
	}
	m.showDocument(snap.Cursor)
	return nil
}

// cut removes the cursor line and puts it on the clipboard.
func (m *Model) cut() tea.Cmd {
	if m.doc.Text() == "" {
		return nil
	}
	cur := m.editor.Cursor()
	if err := m.clip.WriteAll(m.doc.Line(cur.Row)); err != nil {
		return m.fail("Cut failed", err)
	}
	_, after, ok := m.doc.CutLine(cur.Row, cur)
	if !ok {
		return nil
	}
	m.showDocument(after)
	return nil
}

func (m *Model) copyLine() tea.Cmd {
	line := m.doc.Line(m.editor.Cursor().Row)
	if err := m.clip.WriteAll(line); err != nil {
		return m.fail("Copy failed", err)
	}
	return m.notice("Copied line")
}

func (m *Model) paste() tea.Cmd {
	text, err := m.clip.ReadAll()
	if err != nil {
		return m.fail("Paste failed", err)
	}
	if text == "" {
		return nil
	}
	before := m.editor.Cursor()
	m.editor.InsertString(document.ToDisplay(strings.ReplaceAll(text, document.CRLF, document.LF), document.LF))
	m.doc.SetDisplay(m.editor.Value(), before, m.editor.Cursor(), document.EditOther)
	m.refreshStatus()
	return nil
}

func (m *Model) replaceAll(find, replace string) tea.Cmd {
	if find == "" {
		return m.notice("Nothing to find")
	}
	cur := m.editor.Cursor()
	n := m.doc.ReplaceAll(find, replace, cur)
	if n == 0 {
		return m.notice(fmt.Sprintf("%q not found", find))
	}
	m.showDocument(cur)
	logger.Debug("replaced text", "count", n)
	return m.notice(fmt.Sprintf("Replaced %s occurrence(s)", humanize.Comma(int64(n))))
}

// openDiff snapshots the file on disk and shows it against the buffer.
// ret is the mode to go back to when the view closes.
func (m *Model) openDiff(ret mode) tea.Cmd {
	m.diffReturn = ret
	m.state.ScrollV = 0
	disk, err := m.doc.DiskText()
	var cmd tea.Cmd
	if err != nil && !errors.Is(err, document.ErrNoPath) {
		cmd = m.fail("Read failed", err)
	}
	m.diskText = disk
	focus := m.setMode(modeDiff)
	return tea.Batch(focus, cmd)
}
