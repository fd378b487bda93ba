package document

import "strings"

// TabMark stands in for a tab inside the text area, which expands real tabs
// to spaces.
const TabMark = '⇥'

const (
	LF   = "\n"
	CRLF = "\r\n"
)

// detectEOL returns CRLF when every line break in s is CRLF, else LF.
func detectEOL(s string) string {
	n := strings.Count(s, "\n")
	if n > 0 && strings.Count(s, "\r\n") == n {
		return CRLF
	}
	return LF
}

// ToDisplay converts file text with line endings eol into the form the text
// area holds: LF breaks and TabMark for tabs.
func ToDisplay(text, eol string) string {
	if eol == CRLF {
		text = strings.ReplaceAll(text, CRLF, LF)
	}
	return strings.ReplaceAll(text, "\t", string(TabMark))
}

// FromDisplay reverses ToDisplay.
func FromDisplay(shown, eol string) string {
	shown = strings.ReplaceAll(shown, string(TabMark), "\t")
	if eol == CRLF {
		shown = strings.ReplaceAll(shown, LF, CRLF)
	}
	return shown
}

// Display is the buffer as the text area shows it. Rows and rune columns
// map one to one onto the lines of Text.
func (d *Document) Display() string { return ToDisplay(d.text, d.eol) }

// SetDisplay records an edit made in the text area.
func (d *Document) SetDisplay(shown string, before, after Cursor, kind EditKind) {
	d.SetText(FromDisplay(shown, d.eol), before, after, kind)
}

// Adopt replaces the buffer with what the text area could actually hold,
// for files with bytes it drops or rewrites (invalid UTF-8, control
// characters, mixed line endings). It reports whether anything changed.
// The replaced text is not an undo step, and the document counts as
// modified since saving would change the file.
func (d *Document) Adopt(shown string) bool {
	text := FromDisplay(shown, d.eol)
	if text == d.text {
		return false
	}
	d.text = text
	return true
}
