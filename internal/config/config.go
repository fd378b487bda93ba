package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"textedit/internal/fonts"
)

// Config is the editor's persisted preferences.
type Config struct {
	Editor EditorConfig `mapstructure:"editor"`
	View   ViewConfig   `mapstructure:"view"`
	Log    LogConfig    `mapstructure:"log"`

	// Path is where Save writes. Not serialized.
	Path string `mapstructure:"-"`
}

// EditorConfig holds the font and buffer settings.
type EditorConfig struct {
	FontFamily   string   `mapstructure:"font_family"`
	FontSize     int      `mapstructure:"font_size"`
	FontColor    string   `mapstructure:"font_color"`
	ExtraFonts   []string `mapstructure:"extra_fonts"`
	HistoryLimit int      `mapstructure:"history_limit"`
}

// ViewConfig holds the View menu toggles.
type ViewConfig struct {
	DarkMode      bool `mapstructure:"dark_mode"`
	ShowToolbar   bool `mapstructure:"show_toolbar"`
	ShowStatusBar bool `mapstructure:"show_statusbar"`
	WordWrap      bool `mapstructure:"word_wrap"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

const envPrefix = "TEXTEDIT"

// DefaultPath returns ~/.config/textedit/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "textedit", "config.yaml")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	applyDefaults(v)
	return v
}

// Load reads the YAML config at path (DefaultPath when empty) and
// TEXTEDIT_* environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.Path = path
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the built-in configuration without touching disk.
func Default() *Config {
	v := newViper()
	var c Config
	_ = v.Unmarshal(&c)
	c.Path = DefaultPath()
	return &c
}

// Validate checks values that the editor can't recover from on its own.
func Validate(c *Config) error {
	if strings.TrimSpace(c.Editor.FontFamily) == "" {
		return fmt.Errorf("editor.font_family cannot be empty")
	}
	if c.Editor.FontSize < 1 || c.Editor.FontSize > 400 {
		return fmt.Errorf("editor.font_size must be between 1 and 400, got %d", c.Editor.FontSize)
	}
	color, err := fonts.ParseColor(c.Editor.FontColor)
	if err != nil {
		return fmt.Errorf("editor.font_color: %w", err)
	}
	c.Editor.FontColor = color
	if c.Editor.HistoryLimit < 0 {
		return fmt.Errorf("editor.history_limit must be >= 0, got %d", c.Editor.HistoryLimit)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

// Prefs are the settings the editor UI changes while it runs.
type Prefs struct {
	FontFamily    string
	FontSize      int
	FontColor     string
	DarkMode      bool
	ShowToolbar   bool
	ShowStatusBar bool
	WordWrap      bool
}

// PrefsOf returns the UI settings held in c.
func PrefsOf(c *Config) Prefs {
	return Prefs{
		FontFamily:    c.Editor.FontFamily,
		FontSize:      c.Editor.FontSize,
		FontColor:     c.Editor.FontColor,
		DarkMode:      c.View.DarkMode,
		ShowToolbar:   c.View.ShowToolbar,
		ShowStatusBar: c.View.ShowStatusBar,
		WordWrap:      c.View.WordWrap,
	}
}

// changedKeys maps config keys to the values in now that differ from was.
func changedKeys(was, now Prefs) map[string]any {
	keys := map[string]any{}
	if now.FontFamily != was.FontFamily {
		keys["editor.font_family"] = now.FontFamily
	}
	if now.FontSize != was.FontSize {
		keys["editor.font_size"] = now.FontSize
	}
	if now.FontColor != was.FontColor {
		keys["editor.font_color"] = now.FontColor
	}
	if now.DarkMode != was.DarkMode {
		keys["view.dark_mode"] = now.DarkMode
	}
	if now.ShowToolbar != was.ShowToolbar {
		keys["view.show_toolbar"] = now.ShowToolbar
	}
	if now.ShowStatusBar != was.ShowStatusBar {
		keys["view.show_statusbar"] = now.ShowStatusBar
	}
	if now.WordWrap != was.WordWrap {
		keys["view.word_wrap"] = now.WordWrap
	}
	return keys
}

// SavePrefs writes the settings that changed from was to now into the YAML
// file at path (DefaultPath when empty). Everything else stays as the file
// has it; defaults and TEXTEDIT_* overrides are never written out. Nothing
// is written when nothing changed.
func SavePrefs(path string, was, now Prefs) error {
	keys := changedKeys(was, now)
	if len(keys) == 0 {
		return nil
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}
	for k, val := range keys {
		v.Set(k, val)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("editor.font_family", "Arial")
	v.SetDefault("editor.font_size", 12)
	v.SetDefault("editor.font_color", "#ffffff")
	v.SetDefault("editor.extra_fonts", []string{})
	v.SetDefault("editor.history_limit", 500)

	v.SetDefault("view.dark_mode", true)
	v.SetDefault("view.show_toolbar", true)
	v.SetDefault("view.show_statusbar", true)
	v.SetDefault("view.word_wrap", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}
