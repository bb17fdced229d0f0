package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/phuslu/log"

	"github.com/cruciblehq/sharedfx/internal"
)

// Returns the log level for the given modes. Debug wins over quiet.
func Level(debug, quiet bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	if quiet {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Creates a console logger at level writing to w.
//
// Output is colored when w is a terminal.
func NewLogger(level slog.Level, w io.Writer) *slog.Logger {
	logger := &log.Logger{
		Level: logLevel(level),
		Writer: &log.ConsoleWriter{
			ColorOutput: isatty(w),
			Writer:      w,
		},
	}
	return logger.Slog().WithGroup(internal.Name)
}

// Installs a console logger as the slog default.
func SetDefaultLogger(level slog.Level, w io.Writer) {
	slog.SetDefault(NewLogger(level, w))
}

// Maps a slog level to the closest phuslu/log level.
func logLevel(level slog.Level) log.Level {
	switch {
	case level <= slog.LevelDebug:
		return log.DebugLevel
	case level <= slog.LevelInfo:
		return log.InfoLevel
	case level <= slog.LevelWarn:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}

// Whether w is an interactive terminal.
func isatty(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
