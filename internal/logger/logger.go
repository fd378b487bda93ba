package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global structured logger.
	Log *slog.Logger
	// LogPath is the path to the current log file.
	LogPath string

	logWriter *lumberjack.Logger
)

// ParseLevel maps a config level name to a slog level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultPath returns ~/.config/textedit/textedit.log, falling back to the temp dir.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".config", "textedit", "textedit.log")
}

// Init sets up the global logger. The terminal belongs to the UI, so
// everything goes to a rotating JSON file.
func Init(level slog.Level, logPath string) error {
	if logPath == "" {
		logPath = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	LogPath = logPath

	logWriter = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}

	Log = slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(Log)
	return nil
}

// Close flushes and closes the log file.
func Close() {
	if logWriter != nil {
		_ = logWriter.Close()
		logWriter = nil
	}
}

func getLogger() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

func Debug(msg string, args ...any) { getLogger().Debug(msg, args...) }

func Info(msg string, args ...any) { getLogger().Info(msg, args...) }

func Warn(msg string, args ...any) { getLogger().Warn(msg, args...) }

func Error(msg string, args ...any) { getLogger().Error(msg, args...) }

// With creates a logger with additional attributes.
func With(args ...any) *slog.Logger {
	return getLogger().With(args...)
}
