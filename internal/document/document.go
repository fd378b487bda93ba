// Package document is the editor's buffer and file model, kept free of any
// UI toolkit so it can be exercised without a terminal.
package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefaultExt is appended by SaveAs when the chosen name has no extension.
const DefaultExt = ".txt"

const titleSuffix = " - Text Editor"

// ErrNoPath is returned by Save and DiskText for an untitled document.
var ErrNoPath = errors.New("document has no file name")

// Cursor is a logical position: row is the line index, col the rune offset in it.
type Cursor struct {
	Row int
	Col int
}

// Document is a text buffer plus the file it is bound to.
type Document struct {
	fs     afero.Fs
	path   string
	text   string
	saved  string
	eol    string // line break used by the file, LF or CRLF
	cursor Cursor
	hist   history
}

// New returns an empty untitled document whose undo history keeps at most
// historyLimit steps. A zero limit disables undo.
func New(fs afero.Fs, historyLimit int) *Document {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Document{fs: fs, eol: LF, hist: history{limit: historyLimit}}
}

func (d *Document) Path() string   { return d.path }
func (d *Document) Text() string   { return d.text }
func (d *Document) Cursor() Cursor { return d.cursor }
func (d *Document) Size() int      { return len(d.text) }

// Modified reports whether the text differs from what was last opened or saved.
func (d *Document) Modified() bool { return d.text != d.saved }

// Title is the window title for the document.
func (d *Document) Title() string {
	if d.path == "" {
		return "Untitled" + titleSuffix
	}
	return d.path + titleSuffix
}

// Reset empties the buffer and forgets the file name.
func (d *Document) Reset() {
	d.path = ""
	d.text = ""
	d.saved = ""
	d.eol = LF
	d.cursor = Cursor{}
	d.hist.clear()
}

// Open replaces the buffer with the exact contents of path.
func (d *Document) Open(path string) error {
	data, err := afero.ReadFile(d.fs, path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	d.path = path
	d.text = string(data)
	d.saved = d.text
	d.eol = detectEOL(d.text)
	d.cursor = Cursor{}
	d.hist.clear()
	return nil
}

// Save writes the buffer to the current path.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	return d.write(d.path)
}

// SaveAs writes the buffer to path and binds the document to it.
// It returns the path actually used.
func (d *Document) SaveAs(path string) (string, error) {
	path = WithDefaultExt(path)
	if err := d.write(path); err != nil {
		return "", err
	}
	d.path = path
	return path, nil
}

func (d *Document) write(path string) error {
	if err := afero.WriteFile(d.fs, path, []byte(d.text), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	d.saved = d.text
	return nil
}

// DiskText reads the bound file as it currently is on disk.
func (d *Document) DiskText() (string, error) {
	if d.path == "" {
		return "", ErrNoPath
	}
	data, err := afero.ReadFile(d.fs, d.path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", d.path, err)
	}
	return string(data), nil
}

// ChangedOnDisk reports whether the file no longer holds what was last
// opened or saved. A missing file counts as changed.
func (d *Document) ChangedOnDisk() bool {
	disk, err := d.DiskText()
	if errors.Is(err, ErrNoPath) {
		return false
	}
	return err != nil || disk != d.saved
}

// SetText replaces the buffer with an edit made at before, leaving the cursor
// at after. The previous state becomes an undo step unless kind coalesces it
// with the step before.
func (d *Document) SetText(text string, before, after Cursor, kind EditKind) {
	if text == d.text {
		d.cursor = after
		return
	}
	d.hist.push(Snapshot{Text: d.text, Cursor: before}, kind)
	d.text = text
	d.cursor = after
}

// ReplaceAll substitutes every occurrence of find as a single undo step and
// returns the number of replacements. An empty find replaces nothing.
func (d *Document) ReplaceAll(find, replace string, cur Cursor) int {
	if find == "" {
		return 0
	}
	n := strings.Count(d.text, find)
	if n == 0 {
		return 0
	}
	d.SetText(strings.ReplaceAll(d.text, find, replace), cur, cur, EditOther)
	return n
}

// WithDefaultExt appends DefaultExt to names without an extension.
func WithDefaultExt(path string) string {
	if path == "" || filepath.Ext(path) != "" || strings.HasSuffix(path, string(filepath.Separator)) {
		return path
	}
	return path + DefaultExt
}
