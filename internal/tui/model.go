// Package tui is the editor window: menu bar, toolbar, text area and status
// bar, with the dialogs that open over them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"textedit/internal/config"
	"textedit/internal/document"
	"textedit/internal/logger"
	"textedit/internal/tui/state"
	"textedit/internal/tui/theme"
	"textedit/internal/tui/widgets/diff"
	"textedit/internal/tui/widgets/editor"
	"textedit/internal/tui/widgets/findreplace"
	"textedit/internal/tui/widgets/helpoverlay"
	"textedit/internal/tui/widgets/menubar"
	"textedit/internal/tui/widgets/prompt"
	"textedit/internal/tui/widgets/statusbar"
	"textedit/internal/tui/widgets/toolbar"
	"textedit/internal/watch"
)

// initialTitle is shown until a file is opened, saved or a new one started.
const initialTitle = "Advanced Text Editor"

const noticeTTL = 4 * time.Second

type mode int

const (
	modeEdit    mode = iota // keys go to the text area
	modeToolbar             // font or size field focused
	modeMenu                // a menu is dropped down
	modePrompt              // open / save as / color
	modeFind                // find & replace dialog
	modeDiff                // unsaved changes
	modeHelp
	modeConfirmQuit
)

// Options configure a new window.
type Options struct {
	Config    *config.Config
	Path      string // opened at startup when set
	Fs        afero.Fs
	Clipboard Clipboard
	Families  []string
	Watcher   *watch.Watcher // optional
}

type Model struct {
	doc   *document.Document
	state state.UIState
	mode  mode

	editor  editor.Model
	toolbar toolbar.Model
	menu    menubar.Model
	prompt  prompt.Model
	find    findreplace.Model
	status  statusbar.StatusBar
	help    helpoverlay.HelpOverlay
	diff    diff.DiffView

	clip    Clipboard
	watcher *watch.Watcher

	title     string
	noticeGen int
	bodyH     int

	diskText      string // snapshot shown by the diff view
	diffReturn    mode
	quitAfterSave bool
	quitting      bool
	startCmd      tea.Cmd
}

// New builds the window from the loaded configuration.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard()
	}

	s := state.UIState{
		DarkMode:      cfg.View.DarkMode,
		ShowToolbar:   cfg.View.ShowToolbar,
		ShowStatusBar: cfg.View.ShowStatusBar,
		Wrap:          cfg.View.WordWrap,
		MinCol:        30,
		Font: state.Font{
			Family: cfg.Editor.FontFamily,
			Size:   cfg.Editor.FontSize,
			Color:  cfg.Editor.FontColor,
		},
	}

	m := Model{
		doc:     document.New(opts.Fs, cfg.Editor.HistoryLimit),
		state:   s,
		mode:    modeEdit,
		editor:  editor.New(),
		toolbar: toolbar.New(opts.Families, s.Font),
		menu:    menubar.New(),
		find:    findreplace.New(),
		status:  statusbar.NewStatusBar(),
		help:    helpoverlay.NewHelpOverlay(),
		diff:    diff.NewDiffView(),
		clip:    clip,
		watcher: opts.Watcher,
		title:   initialTitle,
	}
	m.editor.Focus()
	m.applyTheme()

	if opts.Path != "" {
		m.startCmd = m.openFile(opts.Path)
	}
	m.refreshStatus()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(m.title), m.startCmd}
	if m.watcher != nil {
		cmds = append(cmds, waitFileEvent(m.watcher.Events()))
	}
	return tea.Batch(cmds...)
}

// State is the current view state, used to persist preferences on exit.
func (m Model) State() state.UIState { return m.state }

func (m Model) Title() string { return m.title }

func (m *Model) applyTheme() {
	m.editor.SetPalette(theme.For(m.state))
}

func (m *Model) refreshStatus() {
	m.status = m.status.Update(m.doc.Stats(), m.doc.Modified())
}

// notice shows text in the status bar until a newer notice or the timeout.
func (m *Model) notice(text string) tea.Cmd {
	m.state.Notice = text
	m.noticeGen++
	gen := m.noticeGen
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return noticeClearMsg{gen: gen} })
}

// fail logs err and reports it in the status bar.
func (m *Model) fail(what string, err error) tea.Cmd {
	logger.Error(what, "error", err, "path", m.doc.Path())
	return m.notice(what + ": " + err.Error())
}

func (m *Model) setTitle() tea.Cmd {
	m.title = m.doc.Title()
	return tea.SetWindowTitle(m.title)
}

// setMode moves keyboard focus between the text area and everything else.
func (m *Model) setMode(md mode) tea.Cmd {
	// F2/F3 show a hidden toolbar while it has focus
	relayout := !m.state.ShowToolbar && (md == modeToolbar) != (m.mode == modeToolbar)
	m.mode = md
	if relayout {
		m.layout()
	}
	if md == modeEdit {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

// layout sizes the text area to what the bars leave free.
func (m *Model) layout() {
	h := m.state.Height - 1 // menu bar
	if m.state.ShowToolbar || m.mode == modeToolbar {
		h--
	}
	if m.state.ShowStatusBar {
		h--
	}
	m.bodyH = max(h, 1)
	m.editor.SetSize(m.state.Width, m.bodyH)
}
