package document

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Stats are the counts shown in the status bar.
type Stats struct {
	Words int
	Chars int
}

// Count returns whitespace-separated words and runes in text.
func Count(text string) Stats {
	return Stats{
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCountInString(text),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("Words: %d | Characters: %d", s.Words, s.Chars)
}

// Stats counts the current buffer.
func (d *Document) Stats() Stats { return Count(d.text) }

// Line returns line row of the buffer without its line break, or "" when
// out of range.
func (d *Document) Line(row int) string {
	lines := strings.Split(d.text, d.eol)
	if row < 0 || row >= len(lines) {
		return ""
	}
	return lines[row]
}

// CutLine removes line row, including its line break, as one undo step.
// It returns the removed text and where the cursor should land.
func (d *Document) CutLine(row int, cur Cursor) (string, Cursor, bool) {
	lines := strings.Split(d.text, d.eol)
	if row < 0 || row >= len(lines) || d.text == "" {
		return "", cur, false
	}

	var removed string
	switch {
	case len(lines) == 1:
		removed = lines[0]
		lines = []string{""}
	case row == len(lines)-1:
		// last line: take the break in front of it instead
		removed = lines[row]
		lines = lines[:row]
	default:
		removed = lines[row] + d.eol
		lines = append(lines[:row], lines[row+1:]...)
	}

	after := Cursor{Row: row}
	if after.Row > len(lines)-1 {
		after.Row = len(lines) - 1
	}
	d.SetText(strings.Join(lines, d.eol), cur, after, EditOther)
	return removed, after, true
}
