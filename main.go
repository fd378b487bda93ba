// Copyright
// SPDX-License-Identifier: MIT
// textedit: single-window terminal text editor with font toolbar, status bar and find & replace
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"textedit/internal/config"
	"textedit/internal/fonts"
	"textedit/internal/logger"
	"textedit/internal/tui"
	"textedit/internal/tui/state"
	"textedit/internal/tui/theme"
)

const Version = "1.0.0"

var (
	configPath string
	logFile    string
	debug      bool
	noColor    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "textedit [file]",
		Short: "Terminal text editor",
		Long: `textedit opens a single text buffer with a font toolbar, a word and
character count status bar, and File / Edit / View menus (F10).

With no file argument it starts with an empty untitled buffer.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return run(path)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.config/textedit/config.yaml)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file path (default ~/.config/textedit/textedit.log)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors (also honors NO_COLOR)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "textedit: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if debug {
		level = slog.LevelDebug
	}
	lf := logFile
	if lf == "" {
		lf = cfg.Log.File
	}
	if err := logger.Init(level, lf); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()
	logger.Info("starting", "version", Version, "config", cfg.Path, "file", path)

	final, runErr := tui.Run(tui.Options{
		Config:    cfg,
		Path:      path,
		Clipboard: tui.SystemClipboard(),
		Families:  fonts.Families(cfg.Editor.ExtraFonts...),
	}, theme.NoColor(noColor))

	if err := savePrefs(cfg, final); err != nil {
		logger.Warn("could not save preferences", "error", err)
		runErr = errors.Join(runErr, err)
	}
	return runErr
}

// savePrefs writes the view toggles and font choice the user changed back
// to the config file.
func savePrefs(cfg *config.Config, s state.UIState) error {
	was := config.PrefsOf(cfg)
	now := was
	now.DarkMode = s.DarkMode
	now.ShowToolbar = s.ShowToolbar
	now.ShowStatusBar = s.ShowStatusBar
	now.WordWrap = s.Wrap
	if s.Font.Family != "" {
		now.FontFamily = s.Font.Family
	}
	if s.Font.Size > 0 {
		now.FontSize = s.Font.Size
	}
	if s.Font.Color != "" {
		now.FontColor = s.Font.Color
	}
	return config.SavePrefs(cfg.Path, was, now)
}
