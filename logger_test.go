package crc32c

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLogImplementation(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogImplementation(context.Background(), Info{Impl: "sse42", Hardware: true})

	out := buf.String()
	assert.Contains(t, out, "crc32c implementation selected")
	assert.Contains(t, out, "impl=sse42")
	assert.Contains(t, out, "hardware=true")
	assert.Contains(t, out, "overridden=false")
}

func TestLoggerLogChecksum(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).WithName("a.txt")

	l.LogChecksum(context.Background(), 9, 0xe3069283, nil)
	out := buf.String()
	assert.Contains(t, out, "checksum completed")
	assert.Equal(t, 1, strings.Count(out, "name=a.txt"))

	buf.Reset()
	l.LogChecksum(context.Background(), 0, 0, errors.New("boom"))
	out = buf.String()
	assert.Contains(t, out, "checksum failed")
	assert.Contains(t, out, "error=boom")
	assert.Equal(t, 1, strings.Count(out, "name=a.txt"))
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()

	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogChecksum(context.Background(), 1, 2, errors.New("ignored"))
}

func TestLoggerLogStats(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogStats(context.Background(), BasicMetricsStats{ChecksumCount: 2, ChecksumBytes: 18})

	assert.Contains(t, buf.String(), "inputs=2")
	assert.Contains(t, buf.String(), "bytes=18")
}
