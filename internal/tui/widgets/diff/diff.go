package diff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"textedit/internal/tui/state"
	"textedit/internal/tui/theme"
)

// Op marks a line as common to both sides, only on disk, or only in the buffer.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Line is one row of a line-level diff between disk and buffer.
type Line struct {
	Op   Op
	Text string
}

// Lines computes a line-level diff of disk against buffer.
func Lines(disk, buffer string) []Line {
	d := dmp.New()
	a, b, idx := d.DiffLinesToChars(disk, buffer)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), idx)

	var out []Line
	for _, df := range diffs {
		op := Equal
		switch df.Type {
		case dmp.DiffDelete:
			op = Delete
		case dmp.DiffInsert:
			op = Insert
		}
		text := strings.TrimSuffix(df.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			out = append(out, Line{Op: op, Text: strings.TrimSuffix(l, "\r")})
		}
	}
	return out
}

// Stat counts added and removed lines.
func Stat(lines []Line) (added, removed int) {
	for _, l := range lines {
		switch l.Op {
		case Insert:
			added++
		case Delete:
			removed++
		}
	}
	return added, removed
}

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the unsaved changes of buffer against disk, scrolled to
// s.ScrollV and cut to height rows (0 means no limit).
func (DiffView) View(s state.UIState, p theme.Palette, disk, buffer string, height int) string {
	lines := Lines(disk, buffer)
	added, removed := Stat(lines)

	var rows []string
	var header string
	if disk == buffer {
		header = "DISK vs BUFFER"
		rows = []string{"No changes"}
	} else if s.View == state.SideBySide {
		header = "DISK │ BUFFER"
		rows = sideBySide(lines, s, p)
	} else {
		header = "DISK vs BUFFER (Unified)"
		rows = unified(lines, s, p)
	}

	start := min(max(s.ScrollV, 0), max(len(rows)-1, 0))
	rows = rows[start:]
	if height > 0 && len(rows) > height {
		rows = rows[:height]
	}

	accent := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	faint := lipgloss.NewStyle().Foreground(p.Muted)
	var b strings.Builder
	b.WriteString(accent.Render(header) + faint.Render(fmt.Sprintf("  +%d -%d", added, removed)) + "\n")
	for _, r := range rows {
		b.WriteString(r + "\n")
	}
	b.WriteString(faint.Render("v: unified/side-by-side  w: wrap  ↑/↓ PgUp/PgDn: scroll  esc: close"))
	return b.String()
}

func styles(p theme.Palette) (del, add, same lipgloss.Style) {
	del = lipgloss.NewStyle().Foreground(p.Danger)
	add = lipgloss.NewStyle().Foreground(p.Accent)
	same = lipgloss.NewStyle().Foreground(p.Muted)
	return
}

func unified(lines []Line, s state.UIState, p theme.Palette) []string {
	del, add, same := styles(p)
	width := s.Width - 2
	var out []string
	for _, l := range lines {
		prefix, st := "  ", same
		switch l.Op {
		case Delete:
			prefix, st = "- ", del
		case Insert:
			prefix, st = "+ ", add
		}
		for _, part := range fit(l.Text, width, s.Wrap) {
			out = append(out, st.Render(prefix+part))
		}
	}
	return out
}

// sideBySide pairs runs of deletions with the insertions that follow them.
func sideBySide(lines []Line, s state.UIState, p theme.Palette) []string {
	const sep = " │ "
	del, add, same := styles(p)
	col := 40
	if s.Width > 0 {
		col = max((s.Width-len(sep))/2, 10)
	}

	var out []string
	emit := func(l, r string, ls, rs lipgloss.Style) {
		lp := fit(l, col, s.Wrap)
		rp := fit(r, col, s.Wrap)
		for i := 0; i < max(len(lp), len(rp)); i++ {
			var a, b string
			if i < len(lp) {
				a = lp[i]
			}
			if i < len(rp) {
				b = rp[i]
			}
			out = append(out, ls.Render(pad(a, col))+sep+rs.Render(b))
		}
	}

	for i := 0; i < len(lines); {
		if lines[i].Op == Equal {
			emit(lines[i].Text, lines[i].Text, same, same)
			i++
			continue
		}
		var dels, ins []string
		for i < len(lines) && lines[i].Op == Delete {
			dels = append(dels, lines[i].Text)
			i++
		}
		for i < len(lines) && lines[i].Op == Insert {
			ins = append(ins, lines[i].Text)
			i++
		}
		for j := 0; j < max(len(dels), len(ins)); j++ {
			var l, r string
			if j < len(dels) {
				l = dels[j]
			}
			if j < len(ins) {
				r = ins[j]
			}
			emit(l, r, del, add)
		}
	}
	return out
}

// fit wraps s to width when wrap is set, otherwise truncates it.
func fit(s string, width int, wrap bool) []string {
	if width <= 0 {
		return []string{s}
	}
	if !wrap {
		return []string{runewidth.Truncate(s, width, "…")}
	}
	var out []string
	for _, l := range strings.Split(wordwrap.WrapString(s, uint(width)), "\n") {
		// wordwrap leaves words longer than width intact
		split := false
		for runewidth.StringWidth(l) > width {
			split = true
			head := runewidth.Truncate(l, width, "")
			if head == "" {
				// a rune wider than the column still takes a row of its own
				head = string([]rune(l)[:1])
			}
			out = append(out, head)
			l = l[len(head):]
		}
		if split && l == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
