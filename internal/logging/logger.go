package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mcpackr/internal/config"
)

const logFileName = "mcpackr.log"

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Console receives records at Level. Nil selects stderr.
	Console io.Writer
	// File, when set, is appended to in the same format at FileLevel.
	File string
	// FileLevel defaults to Level.
	FileLevel string
}

// New constructs a slog logger using the provided options. The returned close
// function releases the log file, if any; it is never nil.
func New(opts Options) (*slog.Logger, func() error, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	level := parseLevel(opts.Level)
	handler, err := newHandler(opts.Format, console, level)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(handler)
	if strings.TrimSpace(opts.File) == "" {
		return logger, func() error { return nil }, nil
	}

	file, err := openLogFile(opts.File)
	if err != nil {
		return nil, nil, err
	}
	fileLevel := level
	if strings.TrimSpace(opts.FileLevel) != "" {
		fileLevel = parseLevel(opts.FileLevel)
	}
	fileHandler, err := newHandler(opts.Format, file, fileLevel)
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return TeeLogger(logger, fileHandler), file.Close, nil
}

// NewFromConfig writes to console at the configured level and mirrors every
// record down to debug into FilePath(cfg), which `mcpackr logs` reads back.
func NewFromConfig(cfg *config.Config, console io.Writer) (*slog.Logger, func() error, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", Console: console})
	}
	return New(Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Console:   console,
		File:      FilePath(cfg),
		FileLevel: "debug",
	})
}

// FilePath returns the log file NewFromConfig mirrors output to, or "" when
// no log directory is configured.
func FilePath(cfg *config.Config) string {
	if cfg == nil || cfg.Paths.LogDir == "" {
		return ""
	}
	return filepath.Join(cfg.Paths.LogDir, logFileName)
}

func newHandler(format string, w io.Writer, level slog.Level) (slog.Handler, error) {
	addSource := level <= slog.LevelDebug
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		return newPrettyHandler(w, level, addSource), nil
	case "json":
		return newJSONHandler(w, level, addSource), nil
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", format)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}

func newJSONHandler(w io.Writer, level slog.Level, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return attr
			}
			switch attr.Key {
			case slog.TimeKey:
				attr.Key = "ts"
				if attr.Value.Kind() == slog.KindTime {
					attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(timeLayout))
				}
			case slog.LevelKey:
				attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
			case slog.SourceKey:
				if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
					attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
				}
			}
			return attr
		},
	})
}
