package log

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func useBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := SetDefault(New(&buf))
	t.Cleanup(restore)
	return &buf
}

func TestLog_WritesFormattedLine(t *testing.T) {
	buf := useBuffer(t)

	Warn(CatWatcher, "reload failed", "path", "notes.md", "attempt", 2)

	line := buf.String()
	require.Contains(t, line, "[WARN] [watcher] reload failed path=notes.md attempt=2\n")
	require.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2} `, line)
}

func TestLog_OddFields(t *testing.T) {
	buf := useBuffer(t)
	Info(CatConfig, "loaded", "path")
	require.Contains(t, buf.String(), "loaded path=<missing>")
}

func TestLog_ErrorErr(t *testing.T) {
	buf := useBuffer(t)
	ErrorErr(CatConfig, "save failed", errors.New("disk full"), "file", "c.yaml")
	ErrorErr(CatConfig, "nil error", nil)

	out := buf.String()
	require.Contains(t, out, "[ERROR] [config] save failed file=c.yaml error=disk full")
	require.Contains(t, out, "nil error error=<nil>")
}

func TestLog_MinLevelAndDisable(t *testing.T) {
	buf := useBuffer(t)

	SetMinLevel(LevelWarn)
	Debug(CatEditor, "hidden")
	Info(CatEditor, "hidden too")
	Error(CatEditor, "shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	SetEnabled(false)
	require.False(t, Enabled())
	Error(CatEditor, "muted")
	require.NotContains(t, buf.String(), "muted")
}

func TestLog_NoLoggerIsSafe(t *testing.T) {
	restore := SetDefault(nil)
	defer restore()

	require.False(t, Enabled())
	require.NotPanics(t, func() {
		Debug(CatUI, "nobody listening")
		SetEnabled(true)
		SetMinLevel(LevelError)
	})
	require.Nil(t, NewListener(context.Background()))
}

func TestLog_PublishesEntries(t *testing.T) {
	useBuffer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewListener(ctx)
	require.NotNil(t, l)

	Warn(CatCache, "evicted", "key", "abc")

	done := make(chan Event, 1)
	go func() { done <- l.Listen()().(Event) }()

	select {
	case ev := <-done:
		require.Equal(t, LevelWarn, ev.Payload.Level)
		require.Equal(t, CatCache, ev.Payload.Category)
		require.Equal(t, "evicted", ev.Payload.Message)
		require.Equal(t, []any{"key", "abc"}, ev.Payload.Fields)
	case <-time.After(time.Second):
		require.FailNow(t, "no log event delivered")
	}
}

func TestInit_AppendsToFile(t *testing.T) {
	path := t.TempDir() + "/debug.log"
	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatConfig, "hello")
	cleanup()
	Info(CatConfig, "after cleanup")

	require.FileExists(t, path)
	require.False(t, Enabled())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "[INFO] [config] hello")

	var id string
	_, err = fmt.Sscanf(lines[0], sessionMarker+" session %s", &id)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)
}

func TestInit_SeparatesSessions(t *testing.T) {
	path := t.TempDir() + "/debug.log"
	for range 2 {
		cleanup, err := Init(path)
		require.NoError(t, err)
		cleanup()
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.NotEqual(t, lines[0], lines[1])
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}
