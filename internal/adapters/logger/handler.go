package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/tsload/internal/ui/output"
	"go.trai.ch/tsload/internal/ui/style"
)

// levelMark is the prefix and colour of records at or above a level.
type levelMark struct {
	min   slog.Level
	icon  string
	color lipgloss.Color
}

// levelMarks is ordered from the most to the least severe level.
var levelMarks = []levelMark{
	{min: slog.LevelError, icon: style.Cross, color: style.Red},
	{min: slog.LevelWarn, icon: style.Warning, color: style.Yellow},
}

func markFor(level slog.Level) levelMark {
	for _, m := range levelMarks {
		if level >= m.min {
			return m
		}
	}
	return levelMark{color: style.Slate}
}

// PrettyHandler is a slog.Handler writing one coloured line per record:
// an optional level icon, the message, then key=value attributes.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// prefix is the dotted group path applied to attributes added later.
	prefix string
	// attrs are attributes rendered when they were attached.
	attrs []string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or os.Stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	mark := markFor(r.Level)

	var line strings.Builder
	if mark.icon != "" {
		line.WriteString(mark.icon)
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)

	parts := h.attrs
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})
	for _, part := range parts {
		line.WriteByte(' ')
		line.WriteString(part)
	}

	styled := h.out.String(line.String()).Foreground(termenv.RGBColor(string(mark.color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a Handler that renders attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, attr := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, attr)
	}
	return next
}

// WithGroup returns a Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = joinKey(h.prefix, name)
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		prefix: h.prefix,
		attrs:  h.attrs[:len(h.attrs):len(h.attrs)],
	}
}

// appendAttr renders attr as key=value. Group values are flattened into
// dotted keys and empty attributes are dropped.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	if attr.Value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner = joinKey(prefix, attr.Key)
		}
		for _, member := range attr.Value.Group() {
			parts = appendAttr(parts, inner, member)
		}
		return parts
	}

	return append(parts, joinKey(prefix, attr.Key)+"="+attr.Value.String())
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
