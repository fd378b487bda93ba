package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, c.Path)
	assert.Equal(t, "Arial", c.Editor.FontFamily)
	assert.Equal(t, 12, c.Editor.FontSize)
	assert.Equal(t, "#ffffff", c.Editor.FontColor)
	assert.Equal(t, 500, c.Editor.HistoryLimit)
	assert.True(t, c.View.DarkMode)
	assert.True(t, c.View.ShowToolbar)
	assert.True(t, c.View.ShowStatusBar)
	assert.True(t, c.View.WordWrap)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "editor:\n  font_family: Georgia\n  font_size: 18\n  font_color: \"#FFAA00\"\nview:\n  dark_mode: false\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Georgia", c.Editor.FontFamily)
	assert.Equal(t, 18, c.Editor.FontSize)
	assert.Equal(t, "#ffaa00", c.Editor.FontColor, "color is normalized")
	assert.False(t, c.View.DarkMode)
	assert.True(t, c.View.ShowToolbar, "unset keys keep defaults")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TEXTEDIT_EDITOR_FONT_SIZE", "20")
	c, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 20, c.Editor.FontSize)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [unterminated"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		c := Default()
		return c
	}

	c := base()
	require.NoError(t, Validate(c))

	c = base()
	c.Editor.FontSize = 0
	assert.ErrorContains(t, Validate(c), "font_size")

	c = base()
	c.Editor.FontColor = "purple"
	assert.ErrorContains(t, Validate(c), "font_color")

	c = base()
	c.Editor.FontFamily = "  "
	assert.ErrorContains(t, Validate(c), "font_family")

	c = base()
	c.Editor.HistoryLimit = -1
	assert.ErrorContains(t, Validate(c), "history_limit")

	c = base()
	c.Log.Level = "loud"
	assert.ErrorContains(t, Validate(c), "log.level")
}

func TestSavePrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	was := PrefsOf(Default())
	now := was
	now.FontFamily = "Verdana"
	now.FontSize = 30
	now.FontColor = "#00ff00"
	now.DarkMode = false
	now.ShowStatusBar = false

	require.NoError(t, SavePrefs(path, was, now))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Verdana", got.Editor.FontFamily)
	assert.Equal(t, 30, got.Editor.FontSize)
	assert.Equal(t, "#00ff00", got.Editor.FontColor)
	assert.False(t, got.View.DarkMode)
	assert.False(t, got.View.ShowStatusBar)
	assert.True(t, got.View.ShowToolbar)
}

func TestSavePrefsKeepsEnvOverridesOutOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  font_family: Georgia\nlog:\n  level: debug\n"), 0o644))
	t.Setenv("TEXTEDIT_EDITOR_FONT_SIZE", "20")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 20, c.Editor.FontSize)

	was := PrefsOf(c)
	now := was
	now.DarkMode = false
	require.NoError(t, SavePrefs(path, was, now))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "font_size")
	assert.NotContains(t, string(raw), "show_toolbar", "defaults are not written")
	assert.Contains(t, string(raw), "Georgia")
	assert.Contains(t, string(raw), "debug")
	assert.Contains(t, string(raw), "dark_mode: false")
}

func TestSavePrefsUnchangedWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	p := PrefsOf(Default())
	require.NoError(t, SavePrefs(path, p, p))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
