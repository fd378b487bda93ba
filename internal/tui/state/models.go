package state

// DiffMode controls how the unsaved-changes diff is rendered.
type DiffMode int

const (
	Unified DiffMode = iota
	SideBySide
)

// Font is the toolbar's current font selection.
type Font struct {
	Family string
	Size   int
	Color  string // #rrggbb
}

// UIState holds the window flags shared by the toolbar, status bar, menus and theme.
type UIState struct {
	// View menu
	DarkMode      bool
	ShowToolbar   bool
	ShowStatusBar bool

	Font Font

	// Diff view
	View    DiffMode
	Wrap    bool
	ScrollV int
	MinCol  int

	// Layout
	Width  int
	Height int

	// Notices and ephemeral messages
	Notice string
}
