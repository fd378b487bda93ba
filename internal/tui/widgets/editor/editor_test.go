package editor

import (
	"testing"

	"textedit/internal/document"
	"textedit/internal/tui/theme"
)

func TestNew(t *testing.T) {
	m := New()
	if m.Value() != "" {
		t.Errorf("expected empty value, got %q", m.Value())
	}
}

func TestFocus(t *testing.T) {
	m := New()
	m.Focus()
	if !m.Focused() {
		t.Error("expected focused")
	}
	m.Blur()
	if m.Focused() {
		t.Error("expected not focused")
	}
}

func TestSetValueAndCursor(t *testing.T) {
	m := New()
	m.SetSize(40, 10)
	m.Focus()
	m.SetValue("first\nsecond line\nthird")

	if got := m.Cursor().Row; got != 2 {
		t.Fatalf("expected cursor on last row after SetValue, got %d", got)
	}

	m.SetCursor(document.Cursor{Row: 1, Col: 3})
	if got := m.Cursor(); got != (document.Cursor{Row: 1, Col: 3}) {
		t.Fatalf("unexpected cursor %+v", got)
	}

	m.SetCursor(document.Cursor{Row: 0, Col: 99})
	if got := m.Cursor(); got != (document.Cursor{Row: 0, Col: 5}) {
		t.Fatalf("expected column clamped to line end, got %+v", got)
	}
}

func TestInsertString(t *testing.T) {
	m := New()
	m.SetSize(40, 5)
	m.Focus()
	m.SetValue("ac")
	m.SetCursor(document.Cursor{Row: 0, Col: 1})
	m.InsertString("b")
	if m.Value() != "abc" {
		t.Fatalf("expected abc, got %q", m.Value())
	}
}

func TestSetPaletteKeepsFocus(t *testing.T) {
	m := New()
	m.Focus()
	m.SetPalette(theme.Light())
	if !m.Focused() {
		t.Fatal("palette change must not drop focus")
	}
	m.SetSize(0, 0)
	if w, h := m.Size(); w != 1 || h != 1 {
		t.Fatalf("expected size clamped to 1x1, got %dx%d", w, h)
	}
}
