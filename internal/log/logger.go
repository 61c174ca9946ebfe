// Package log sets up the slog logger used by the spline command-line
// tools. The spline package itself never logs.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
// Values can be provided directly or via environment variables:
//   - SPLINE_LOG_LEVEL=debug|info|warn|error
//   - SPLINE_LOG_FORMAT=console|json
//   - SPLINE_LOG_FILE=<path> (enables rotated JSON file logging)
//   - SPLINE_LOG_SOURCE=true|false
//
// Defaults: INFO level, console format, no source, stderr.
type Options struct {
	Level     string
	Format    string // "console" or "json"
	AddSource bool
	File      string
	// Output receives console logs. Nil means os.Stderr.
	Output io.Writer
}

const (
	EnvLogLevel  = "SPLINE_LOG_LEVEL"
	EnvLogFormat = "SPLINE_LOG_FORMAT"
	EnvLogFile   = "SPLINE_LOG_FILE"
	EnvLogSource = "SPLINE_LOG_SOURCE"
)

var (
	defaultLoggerMu sync.RWMutex
	defaultLogger   *slog.Logger
	// fileWriter is the rotating writer of the current logger, if any.
	fileWriter *lj.Logger
)

// L returns the default logger, initializing it from the environment if
// needed.
func L() *slog.Logger {
	defaultLoggerMu.RLock()
	l := defaultLogger
	defaultLoggerMu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Init configures the global logger and makes it the slog default.
func Init(opts Options) {
	lvl := ParseLevel(opts.Level)
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource}

	var handlers []slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		handlers = append(handlers, slog.NewJSONHandler(out, hopts))
	} else {
		handlers = append(handlers, slog.NewTextHandler(out, hopts))
	}

	var fw *lj.Logger
	if f := strings.TrimSpace(opts.File); f != "" {
		fw = &lj.Logger{Filename: f, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(fw, hopts))
	}

	var h slog.Handler
	if len(handlers) == 1 {
		h = handlers[0]
	} else {
		h = multiHandler(handlers...)
	}
	logger := slog.New(h).With(slog.String("app", "spline"))

	defaultLoggerMu.Lock()
	old := fileWriter
	defaultLogger = logger
	fileWriter = fw
	defaultLoggerMu.Unlock()
	if old != nil {
		old.Close()
	}
	slog.SetDefault(logger)
}

// Close flushes and closes the log file, if one is open.
func Close() error {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

// FromEnv builds Options from environment variables.
func FromEnv() Options {
	return Options{
		Level:     getenv(EnvLogLevel, "info"),
		Format:    getenv(EnvLogFormat, "console"),
		AddSource: ParseBool(os.Getenv(EnvLogSource)),
		File:      os.Getenv(EnvLogFile),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool accepts 1, true, on and yes, in any case.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

// WithComponent returns a logger with the component attribute pre-set.
func WithComponent(name string) *slog.Logger { return L().With(slog.String("component", name)) }

// WithOperation annotates the logger with an operation name.
func WithOperation(l *slog.Logger, op string) *slog.Logger { return l.With(slog.String("op", op)) }

// ParseLevel converts a level name to a slog.Level. Unknown names map to
// INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// multiHandler fans out log records to multiple handlers.
func multiHandler(handlers ...slog.Handler) slog.Handler { return &multi{hs: handlers} }

type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
