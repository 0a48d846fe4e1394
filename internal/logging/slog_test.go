package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewSlogLogger(l), &buf
}

func TestLevels(t *testing.T) {
	log, buf := newBufferLogger()
	ctx := context.Background()

	log.Debug(ctx, "debug msg")
	log.Info(ctx, "info msg")
	log.Warn(ctx, "warn msg")
	log.Error(ctx, "error msg")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "debug msg")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestWith_AttachesAttrs(t *testing.T) {
	log, buf := newBufferLogger()

	child := log.With("requestId", "r1")
	child.Info(context.Background(), "api request", "path", "/stories")

	out := buf.String()
	assert.Contains(t, out, "requestId=r1")
	assert.Contains(t, out, "path=/stories")
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	log := Discard()
	log.Info(context.Background(), "dropped")
	log.With("k", "v").Error(context.Background(), "also dropped")
}
