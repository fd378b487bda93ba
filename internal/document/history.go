package document

// EditKind tells the history whether an edit may merge with the previous one.
type EditKind int

const (
	// EditOther is always its own undo step.
	EditOther EditKind = iota
	// EditInsert covers plain typing; a run of inserts is undone as one word.
	EditInsert
)

// Snapshot is a restorable buffer state.
type Snapshot struct {
	Text   string
	Cursor Cursor
}

type history struct {
	undo  []Snapshot
	redo  []Snapshot
	limit int
	group bool // the top undo entry is an open run of inserts
}

func (h *history) clear() {
	h.undo = nil
	h.redo = nil
	h.group = false
}

func (h *history) push(prev Snapshot, kind EditKind) {
	h.redo = nil
	if h.limit <= 0 {
		return
	}
	if kind == EditInsert && h.group && len(h.undo) > 0 {
		return
	}
	h.undo = append(h.undo, prev)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.group = kind == EditInsert
}

func (d *Document) CanUndo() bool { return len(d.hist.undo) > 0 }

func (d *Document) CanRedo() bool { return len(d.hist.redo) > 0 }

// Undo steps back one edit and returns the state the view should show.
func (d *Document) Undo() (Snapshot, bool) {
	h := &d.hist
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.undo) - 1
	prev := h.undo[i]
	h.undo = h.undo[:i]
	h.redo = append(h.redo, Snapshot{Text: d.text, Cursor: d.cursor})
	h.group = false

	d.text, d.cursor = prev.Text, prev.Cursor
	return prev, true
}

// Redo re-applies the last undone edit.
func (d *Document) Redo() (Snapshot, bool) {
	h := &d.hist
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.redo) - 1
	next := h.redo[i]
	h.redo = h.redo[:i]
	h.undo = append(h.undo, Snapshot{Text: d.text, Cursor: d.cursor})
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.group = false

	d.text, d.cursor = next.Text, next.Cursor
	return next, true
}
