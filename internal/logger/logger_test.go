package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("boom") }

func TestMultiHandler_DispatchesByLevel(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h)

	log.Debug("thinking", "row", 1)
	log.Warn("bad move", "row", 2)

	assert.Contains(t, debugBuf.String(), "msg=thinking")
	assert.Contains(t, debugBuf.String(), "msg=\"bad move\"")
	assert.NotContains(t, warnBuf.String(), "thinking")
	assert.Contains(t, warnBuf.String(), "row=2")
}

func TestMultiHandler_Enabled(t *testing.T) {
	h := NewMultiHandler(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	assert.False(t, NewMultiHandler().Enabled(context.Background(), slog.LevelError))
}

func TestMultiHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, nil))
	log := slog.New(h).With("session.id", "abc").WithGroup("move")

	log.Info("applied", "row", 0)

	assert.Contains(t, buf.String(), "session.id=abc")
	assert.Contains(t, buf.String(), "move.row=0")
}

func TestMultiHandler_JoinsErrors(t *testing.T) {
	var buf bytes.Buffer
	ok := slog.NewTextHandler(&buf, nil)
	h := NewMultiHandler(failingHandler{ok}, ok)

	err := h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "hello", 0))
	assert.EqualError(t, err, "boom")
	assert.Contains(t, buf.String(), "msg=hello", "later handlers still run")
}

func TestInit(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(&buf, slog.LevelInfo)
	slog.Debug("hidden")
	slog.Info("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "k=v")
	assert.Contains(t, buf.String(), "source=")
}

func TestOpenOutput(t *testing.T) {
	w, closeFn, err := OpenOutput("")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "ttt.log")
	w, closeFn, err = OpenOutput(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))

	_, _, err = OpenOutput(filepath.Join(t.TempDir(), "missing", "ttt.log"))
	assert.Error(t, err)
}
