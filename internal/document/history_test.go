package document

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(d *Document, s string) {
	for _, r := range s {
		kind := EditInsert
		if r == ' ' || r == '\n' {
			kind = EditOther
		}
		before := d.Cursor()
		after := Cursor{Row: before.Row, Col: before.Col + 1}
		d.SetText(d.Text()+string(r), before, after, kind)
	}
}

func TestUndoRedoEmptyStacks(t *testing.T) {
	d := New(afero.NewMemMapFs(), 10)
	_, ok := d.Undo()
	assert.False(t, ok)
	_, ok = d.Redo()
	assert.False(t, ok)
	assert.Equal(t, "", d.Text())
}

func TestTypingCoalescesPerWord(t *testing.T) {
	d := New(afero.NewMemMapFs(), 100)
	typeText(d, "hello world")
	require.Equal(t, "hello world", d.Text())

	snap, ok := d.Undo()
	require.True(t, ok)
	assert.Equal(t, "hello ", snap.Text, "the second word is one step")

	snap, ok = d.Undo()
	require.True(t, ok)
	assert.Equal(t, "hello", snap.Text, "the space is its own step")

	snap, ok = d.Undo()
	require.True(t, ok)
	assert.Equal(t, "", snap.Text)
	assert.False(t, d.CanUndo())

	snap, ok = d.Redo()
	require.True(t, ok)
	assert.Equal(t, "hello", snap.Text)
	assert.Equal(t, "hello", d.Text())
}

func TestUndoRestoresCursor(t *testing.T) {
	d := New(afero.NewMemMapFs(), 100)
	d.SetText("abc", Cursor{Row: 0, Col: 0}, Cursor{Row: 0, Col: 3}, EditOther)
	d.SetText("abc\nd", Cursor{Row: 0, Col: 3}, Cursor{Row: 1, Col: 1}, EditOther)

	snap, ok := d.Undo()
	require.True(t, ok)
	assert.Equal(t, Cursor{Row: 0, Col: 3}, snap.Cursor)

	snap, ok = d.Redo()
	require.True(t, ok)
	assert.Equal(t, Cursor{Row: 1, Col: 1}, snap.Cursor)
}

func TestNewEditClearsRedo(t *testing.T) {
	d := New(afero.NewMemMapFs(), 100)
	d.SetText("a", Cursor{}, Cursor{}, EditOther)
	d.SetText("ab", Cursor{}, Cursor{}, EditOther)
	_, _ = d.Undo()
	require.True(t, d.CanRedo())

	d.SetText("ax", Cursor{}, Cursor{}, EditOther)
	assert.False(t, d.CanRedo())
}

func TestHistoryLimit(t *testing.T) {
	d := New(afero.NewMemMapFs(), 3)
	for _, s := range []string{"1", "12", "123", "1234", "12345"} {
		d.SetText(s, Cursor{}, Cursor{}, EditOther)
	}
	n := 0
	for d.CanUndo() {
		_, _ = d.Undo()
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, "12", d.Text())
}

func TestZeroLimitDisablesUndo(t *testing.T) {
	d := New(afero.NewMemMapFs(), 0)
	d.SetText("x", Cursor{}, Cursor{}, EditOther)
	assert.False(t, d.CanUndo())
}

func TestUnchangedTextIsNotAStep(t *testing.T) {
	d := New(afero.NewMemMapFs(), 10)
	d.SetText("same", Cursor{}, Cursor{}, EditOther)
	d.SetText("same", Cursor{}, Cursor{Col: 2}, EditOther)
	assert.Equal(t, Cursor{Col: 2}, d.Cursor())

	_, _ = d.Undo()
	assert.False(t, d.CanUndo())
}
