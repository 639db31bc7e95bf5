package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/tsload/internal/adapters/telemetry"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return sr
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOTelTracer_Attributes(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "transform", ports.WithAttribute("file", "/p/a.ts"))
	span.SetAttribute("int", 3)
	span.SetAttribute("int64", int64(4))
	span.SetAttribute("float", 1.5)
	span.SetAttribute("bool", true)
	span.SetAttribute("deps", []string{"a", "b"})
	span.SetAttribute("other", struct{ N int }{N: 1})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	got := attrs(ended[0])
	assert.Equal(t, "/p/a.ts", got["file"].AsString())
	assert.Equal(t, int64(3), got["int"].AsInt64())
	assert.Equal(t, int64(4), got["int64"].AsInt64())
	assert.InDelta(t, 1.5, got["float"].AsFloat64(), 0)
	assert.True(t, got["bool"].AsBool())
	assert.Equal(t, []string{"a", "b"}, got["deps"].AsStringSlice())
	assert.Equal(t, "{1}", got["other"].AsString())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "transform")
	span.RecordError(errors.New("boom"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
}

func TestOTelTracer_WriteWithoutRenderer(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "transform")
	n, err := span.Write([]byte("log"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "log", ended[0].Events()[0].Name)
}

func TestOTelTracer_WriteStreamsToRenderer(t *testing.T) {
	setupRecorder(t)
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	tracer := telemetry.NewOTelTracer("test").WithRenderer(renderer)

	_, span := tracer.Start(context.Background(), "transform")
	spanID := span.(*telemetry.OTelSpan).SpanID()

	var got []byte
	renderer.EXPECT().OnStepLog(spanID, gomock.Any()).
		Do(func(_ string, data []byte) { got = append(got, data...) }).
		MinTimes(1)

	_, err := span.Write([]byte("line one\n"))
	require.NoError(t, err)
	_, err = span.Write([]byte("line two\n"))
	require.NoError(t, err)
	span.End()

	assert.Equal(t, "line one\nline two\n", string(got))
}
