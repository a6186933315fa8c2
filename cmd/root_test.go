package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/inkwell/internal/config"
	"github.com/zjrosen/inkwell/internal/highlight"
)

// isolate points HOME and the working directory at temp dirs so config
// lookup never touches the real user config.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("INKWELL_DEBUG", "")
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the root command with args and returns what it printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	highlightPlain, highlightWatch, previewWidth, cfgFile = false, false, 0, ""
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReadDocument(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.md"), "# A\n")

	got, err := readDocument(path, nil)
	require.NoError(t, err)
	require.Equal(t, "# A\n", got)

	got, err = readDocument("-", strings.NewReader("stdin text"))
	require.NoError(t, err)
	require.Equal(t, "stdin text", got)

	_, err = readDocument("-", nil)
	require.Error(t, err)

	_, err = readDocument(filepath.Join(t.TempDir(), "missing.md"), nil)
	require.ErrorContains(t, err, "missing.md")
}

func TestLoadConfig_Explicit(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "c.yaml"), "editor:\n  tab_width: 8\n")

	c, used, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, 8, c.Editor.TabWidth)
	require.Equal(t, config.Defaults().Editor.HistoryLimit, c.Editor.HistoryLimit)
}

func TestLoadConfig_ExplicitMissing(t *testing.T) {
	isolate(t)
	_, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "c.yaml"), "editor:\n  tab_width: 0\n")
	_, _, err := loadConfig(path)
	require.ErrorContains(t, err, "invalid config")
}

func TestLoadConfig_LocalBeforeUser(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "inkwell", "config.yaml"), "editor:\n  tab_width: 2\n")
	writeFile(t, config.LocalConfigPath, "editor:\n  tab_width: 6\n")

	c, used, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, config.LocalConfigPath, used)
	require.Equal(t, 6, c.Editor.TabWidth)
}

func TestLoadConfig_WritesDefaultUserConfig(t *testing.T) {
	home := isolate(t)

	c, used, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "inkwell", "config.yaml"), used)
	require.FileExists(t, used)
	require.Equal(t, config.Defaults().Editor, c.Editor)
	require.NoFileExists(t, config.LocalConfigPath)
}

func TestHighlightCommand(t *testing.T) {
	isolate(t)
	doc := "# Hi\n- **b** & <x>"
	path := writeFile(t, "doc.md", doc)

	out, err := run(t, "", "highlight", path)
	require.NoError(t, err)
	require.Equal(t, highlight.Highlight(doc), out)
	require.Contains(t, out, `<span class="md-hash">#</span> <span class="md-heading">Hi</span>`)
	require.Contains(t, out, "&amp; &lt;x&gt;")
}

func TestHighlightCommand_PlainRoundTrip(t *testing.T) {
	isolate(t)

	out, err := run(t, SampleDocument, "highlight", "--plain", "-")
	require.NoError(t, err)
	require.Equal(t, SampleDocument, out)
}

func TestHighlightCommand_WatchNeedsFile(t *testing.T) {
	isolate(t)
	_, err := run(t, "x", "highlight", "--watch")
	require.ErrorContains(t, err, "--watch")
}

func TestHighlightCommand_InlineHeadingFlag(t *testing.T) {
	isolate(t)
	cfgPath := writeFile(t, "c.yaml", "flags:\n  heading-inline: true\n")

	out, err := run(t, "# a **b**", "highlight", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, `<span class="md-bold">**b**</span>`)
}

func TestPreviewCommand(t *testing.T) {
	isolate(t)
	cfgPath := writeFile(t, "c.yaml", "preview:\n  style: notty\n")

	out, err := run(t, "# Title\n\nbody text", "preview", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Title")
	require.Contains(t, out, "body text")
}

func TestPreviewCommand_Empty(t *testing.T) {
	isolate(t)
	out, err := run(t, "  \n", "preview")
	require.NoError(t, err)
	require.Contains(t, out, "Nothing to preview yet")
}

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestWatchDocument_RerendersOnChange(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "w.md"), "one")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	done := make(chan error, 1)
	go func() { done <- watchDocument(ctx, path, 20*time.Millisecond, &out, strings.ToUpper) }()

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("two"), 0o600)
		return strings.Contains(out.String(), "TWO")
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchDocument_StopsWhenRemoved(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "w.md"), "one")
	done := make(chan error, 1)
	go func() { done <- watchDocument(context.Background(), path, 20*time.Millisecond, &syncBuffer{}, strings.ToUpper) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.Remove(path))

	select {
	case err := <-done:
		require.ErrorContains(t, err, "removed")
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after the file was removed")
	}
}

func TestSampleDocument_Highlights(t *testing.T) {
	lines := highlight.Highlighter{}.Lines(SampleDocument)
	require.Equal(t, []highlight.Tag{highlight.TagHash, highlight.TagNone, highlight.TagHeading}, lines[0].Tags())
	require.Equal(t, []highlight.Tag{highlight.TagHR}, lines[len(lines)-4].Tags())
}
