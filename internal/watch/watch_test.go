package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func next(t *testing.T, w *Watcher, timeout time.Duration) (Event, bool) {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev, true
	case <-time.After(timeout):
		return Event{}, false
	}
}

func drain(w *Watcher) {
	for {
		select {
		case <-w.Events():
		case <-time.After(100 * time.Millisecond):
			return
		}
	}
}

func TestWriteAndRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	w, err := New()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(path))
	assert.Equal(t, path, w.Path())

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))
	ev, ok := next(t, w, 2*time.Second)
	require.True(t, ok, "expected a write event")
	assert.Equal(t, Event{Path: path}, ev)
	drain(w)

	require.NoError(t, os.Remove(path))
	ev, ok = next(t, w, 2*time.Second)
	require.True(t, ok, "expected a remove event")
	assert.True(t, ev.Removed)
}

func TestSiblingFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := New()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(path))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644))
	_, ok := next(t, w, 300*time.Millisecond)
	assert.False(t, ok)
}

func TestUnwatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := New()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(path))
	w.Unwatch()
	assert.Equal(t, "", w.Path())

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	_, ok := next(t, w, 300*time.Millisecond)
	assert.False(t, ok)
}

func TestCloseIsIdempotent(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	_, open := <-w.Events()
	assert.False(t, open)
}
