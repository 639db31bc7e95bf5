// Package logger implements ports.Logger on log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/tsload/internal/core/ports"
)

const (
	// LevelEnv names the variable holding the minimum level: debug, info, warn or error.
	LevelEnv = "TSLOAD_LOG_LEVEL"
	// FormatEnv names the variable selecting the record format: pretty or json.
	FormatEnv = "TSLOAD_LOG_FORMAT"
)

// Logger implements ports.Logger. Records go to stderr unless redirected,
// so that the language server keeps stdout for the protocol.
type Logger struct {
	mu    sync.RWMutex
	slog  *slog.Logger
	out   io.Writer
	json  bool
	level slog.LevelVar
}

var _ ports.Logger = (*Logger)(nil)

// New creates a Logger configured from the environment.
func New() ports.Logger {
	l := &Logger{out: os.Stderr}
	l.Configure(os.Getenv)
	return l
}

// Configure applies LevelEnv and FormatEnv as reported by getenv.
// Unknown values are ignored.
func (l *Logger) Configure(getenv func(string) string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var level slog.Level
	if err := level.UnmarshalText([]byte(getenv(LevelEnv))); err == nil {
		l.level.Set(level)
	}
	switch strings.ToLower(getenv(FormatEnv)) {
	case "json":
		l.json = true
	case "pretty":
		l.json = false
	}
	l.rebuildLocked()
}

// SetOutput redirects records to w, or to os.Stderr when w is nil.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.out = w
	l.rebuildLocked()
}

// SetJSON switches between JSON and pretty records.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.json = enable
	l.rebuildLocked()
}

// SetLevel drops records below level.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

func (l *Logger) rebuildLocked() {
	opts := &slog.HandlerOptions{Level: &l.level}
	if l.json {
		l.slog = slog.New(slog.NewJSONHandler(l.out, opts))
		return
	}
	l.slog = slog.New(NewPrettyHandler(l.out, opts))
}

func (l *Logger) current() *slog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.slog
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.current().Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.current().Warn(msg)
}

// Error logs err. Pretty records show the cause chain with zerr metadata;
// JSON records carry the error text in the "error" field.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	log, json := l.slog, l.json
	l.mu.RUnlock()

	if json {
		log.Error("operation failed", "error", err)
		return
	}
	log.Error(formatErrorEntries(collectErrorEntries(err)))
}
