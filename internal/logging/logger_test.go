package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lotcomputer/lotinsight/internal/telemetry"
)

// bufferLogger builds a real logger writing JSON lines into a buffer.
func bufferLogger(t *testing.T, mutate func(*Config)) (*Logger, *bytes.Buffer) {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.Sampling.Enabled = false
	cfg.Level = TraceLevel
	if mutate != nil {
		mutate(cfg)
	}
	var buf bytes.Buffer
	l, err := newLogger(cfg, nil, zapcore.AddSync(&buf))
	require.NoError(t, err)
	return l, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestLogger_WritesStructuredJSON(t *testing.T) {
	l, buf := bufferLogger(t, nil)
	ctx := WithRequestID(WithUserID(context.Background(), "u-1"), "req-1")

	l.Info(ctx, "patterns detected", zap.Int("insights", 3))
	l.Trace(ctx, "candidate", zap.String("goal.id", "journal-calm"))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "patterns detected", lines[0]["msg"])
	assert.Equal(t, "u-1", lines[0]["user.id"])
	assert.Equal(t, "req-1", lines[0]["request.id"])
	assert.Equal(t, "lotinsight", lines[0]["service"])
	assert.EqualValues(t, 3, lines[0]["insights"])

	assert.Equal(t, "trace", lines[1]["level"])
}

func TestLogger_LevelFilters(t *testing.T) {
	l, buf := bufferLogger(t, func(c *Config) { c.Level = zapcore.WarnLevel })

	assert.False(t, l.Enabled(zapcore.InfoLevel))
	assert.True(t, l.Enabled(zapcore.ErrorLevel))

	l.Info(context.Background(), "hidden")
	l.Warn(context.Background(), "shown")
	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["msg"])
}

func TestLogger_ChildLoggers(t *testing.T) {
	l, buf := bufferLogger(t, nil)

	l.Named("goals").With(zap.String("extractor", "journal")).Debug(context.Background(), "ran")
	l.Debug(context.Background(), "parent")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "goals", lines[0]["logger"])
	assert.Equal(t, "journal", lines[0]["extractor"])
	assert.NotContains(t, lines[1], "extractor")
}

func TestLogger_TraceCorrelation(t *testing.T) {
	tp := trace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	tl := NewTestLogger()
	tl.Info(ctx, "inside span")
	tl.AssertTraceCorrelation(t, "inside span")
}

func TestNewLogger_InvalidConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Format = "xml"
	_, err := NewLogger(cfg, nil)
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info(context.Background(), "discarded")
	assert.NoError(t, l.Sync())
}

func TestLogger_OTELBridgeExportsRecords(t *testing.T) {
	tt := telemetry.NewTestTelemetry()
	cfg := NewDefaultConfig()
	cfg.Sampling.Enabled = false
	cfg.Output.OTEL = true

	var buf bytes.Buffer
	l, err := newLogger(cfg, tt.LoggerProvider(), zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Info(context.Background(), "report written", zap.Int("entries", 6))
	l.Debug(context.Background(), "below level")

	records := tt.LogRecorder.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "report written", records[0].Body().AsString())
	assert.Equal(t, otellog.SeverityInfo, records[0].Severity())
	assert.Contains(t, buf.String(), "report written")
}

func TestLogger_OTELWithoutProviderUsesStderrOnly(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Sampling.Enabled = false
	cfg.Output.OTEL = true

	var buf bytes.Buffer
	l, err := newLogger(cfg, nil, zapcore.AddSync(&buf))
	require.NoError(t, err)
	l.Info(context.Background(), "still logged")
	assert.Contains(t, buf.String(), "still logged")
}
