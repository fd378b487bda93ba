package document

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(t *testing.T) (*Document, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return New(fs, 100), fs
}

func TestNewIsEmptyAndUntitled(t *testing.T) {
	d, _ := newDoc(t)
	assert.Equal(t, "", d.Text())
	assert.Equal(t, "", d.Path())
	assert.False(t, d.Modified())
	assert.Equal(t, "Untitled - Text Editor", d.Title())
	assert.Equal(t, "Words: 0 | Characters: 0", d.Stats().String())
}

func TestOpenPopulatesExactContents(t *testing.T) {
	d, fs := newDoc(t)
	content := "line one\r\n\ttabbed  line\nno trailing newline"
	require.NoError(t, afero.WriteFile(fs, "/notes/a.txt", []byte(content), 0o644))

	require.NoError(t, d.Open("/notes/a.txt"))
	assert.Equal(t, content, d.Text())
	assert.Equal(t, "/notes/a.txt", d.Path())
	assert.Equal(t, "/notes/a.txt - Text Editor", d.Title())
	assert.False(t, d.Modified())
	assert.False(t, d.CanUndo())
}

func TestOpenMissingFile(t *testing.T) {
	d, _ := newDoc(t)
	err := d.Open("/missing.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, "", d.Path(), "failed open keeps the old binding")
}

func TestSaveWritesExactBuffer(t *testing.T) {
	d, fs := newDoc(t)
	require.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("old"), 0o644))
	require.NoError(t, d.Open("/a.txt"))

	d.SetText("new contents\nwithout final break", Cursor{}, Cursor{Row: 1}, EditOther)
	assert.True(t, d.Modified())
	require.NoError(t, d.Save())
	assert.False(t, d.Modified())

	got, err := afero.ReadFile(fs, "/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "new contents\nwithout final break", string(got))
}

func TestSaveUntitled(t *testing.T) {
	d, _ := newDoc(t)
	assert.ErrorIs(t, d.Save(), ErrNoPath)
}

func TestSaveAsAddsDefaultExtension(t *testing.T) {
	d, fs := newDoc(t)
	d.SetText("hello", Cursor{}, Cursor{Col: 5}, EditInsert)

	path, err := d.SaveAs("/docs/draft")
	require.NoError(t, err)
	assert.Equal(t, "/docs/draft.txt", path)
	assert.Equal(t, "/docs/draft.txt", d.Path())
	assert.Equal(t, "/docs/draft.txt - Text Editor", d.Title())

	got, err := afero.ReadFile(fs, "/docs/draft.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	path, err = d.SaveAs("/docs/readme.md")
	require.NoError(t, err)
	assert.Equal(t, "/docs/readme.md", path)
}

func TestSaveAsFailureKeepsPath(t *testing.T) {
	d, fs := newDoc(t)
	require.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("x"), 0o644))
	require.NoError(t, d.Open("/a.txt"))

	ro := afero.NewReadOnlyFs(fs)
	d.fs = ro
	_, err := d.SaveAs("/b.txt")
	require.Error(t, err)
	assert.Equal(t, "/a.txt", d.Path())
}

func TestResetForgetsEverything(t *testing.T) {
	d, fs := newDoc(t)
	require.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("abc"), 0o644))
	require.NoError(t, d.Open("/a.txt"))
	d.SetText("abcd", Cursor{}, Cursor{}, EditInsert)

	d.Reset()
	assert.Equal(t, "", d.Text())
	assert.Equal(t, "", d.Path())
	assert.False(t, d.Modified())
	assert.False(t, d.CanUndo())
	assert.Equal(t, "Untitled - Text Editor", d.Title())
}

func TestReplaceAll(t *testing.T) {
	d, _ := newDoc(t)
	d.SetText("foo foo", Cursor{}, Cursor{}, EditOther)

	n := d.ReplaceAll("foo", "bar", Cursor{})
	assert.Equal(t, 2, n)
	assert.Equal(t, "bar bar", d.Text())

	assert.Equal(t, 0, d.ReplaceAll("zzz", "y", Cursor{}))
	assert.Equal(t, 0, d.ReplaceAll("", "y", Cursor{}))
	assert.Equal(t, "bar bar", d.Text())

	snap, ok := d.Undo()
	require.True(t, ok)
	assert.Equal(t, "foo foo", snap.Text)
}

func TestDiskTextAndChangedOnDisk(t *testing.T) {
	d, fs := newDoc(t)
	assert.False(t, d.ChangedOnDisk())
	_, err := d.DiskText()
	assert.ErrorIs(t, err, ErrNoPath)

	require.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("v1"), 0o644))
	require.NoError(t, d.Open("/a.txt"))
	assert.False(t, d.ChangedOnDisk())

	require.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("v2"), 0o644))
	assert.True(t, d.ChangedOnDisk())
	disk, err := d.DiskText()
	require.NoError(t, err)
	assert.Equal(t, "v2", disk)

	require.NoError(t, fs.Remove("/a.txt"))
	assert.True(t, d.ChangedOnDisk())
}

func TestWithDefaultExt(t *testing.T) {
	assert.Equal(t, "a.txt", WithDefaultExt("a"))
	assert.Equal(t, "a.log", WithDefaultExt("a.log"))
	assert.Equal(t, "", WithDefaultExt(""))
	assert.Equal(t, "dir/.hidden", WithDefaultExt("dir/.hidden"))
}
