package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/tsload/internal/adapters/logger"
)

func newRecord(level slog.Level, msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Time{}, level, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		goldenName string
	}{
		{name: "info", level: slog.LevelInfo, goldenName: "handler_info"},
		{name: "warn", level: slog.LevelWarn, goldenName: "handler_warn"},
		{name: "error", level: slog.LevelError, goldenName: "handler_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			var buf bytes.Buffer
			h := logger.NewPrettyHandler(&buf, nil)

			err := h.Handle(context.Background(), newRecord(tt.level, "transform finished"))
			assert.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_AttrsAndGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, nil).
		WithAttrs([]slog.Attr{slog.String("instance", "1f2e")}).
		WithGroup("emit")

	err := h.Handle(context.Background(), newRecord(slog.LevelInfo, "emitted", slog.Int("files", 3)))
	assert.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "handler_attrs_group", buf.Bytes())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestPrettyHandler_Handle_ReturnsError(t *testing.T) {
	h := logger.NewPrettyHandler(failingWriter{}, nil)
	err := h.Handle(context.Background(), newRecord(slog.LevelInfo, "x"))
	assert.Error(t, err)
}

func TestPrettyHandler_NestedGroupsAndGroupValues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, nil).
		WithAttrs([]slog.Attr{slog.String("instance", "1f2e"), {}}).
		WithGroup("check").
		WithGroup("")

	err := h.Handle(context.Background(), newRecord(slog.LevelInfo, "checked",
		slog.Group("file", slog.String("path", "src/a.ts"), slog.Int("version", 2)),
	))
	assert.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "handler_nested_group", buf.Bytes())
}
