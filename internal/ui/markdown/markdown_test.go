package markdown

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRender_EmptyDocument(t *testing.T) {
	r, err := New("notty", 40)
	require.NoError(t, err)

	for _, doc := range []string{"", "   ", "\n\n\t"} {
		out, err := r.Render(doc)
		require.NoError(t, err)
		require.Equal(t, EmptyMessage, out)
	}
}

func TestRender_Markdown(t *testing.T) {
	r, err := New("notty", 40)
	require.NoError(t, err)
	require.Equal(t, 40, r.Width())
	require.Equal(t, "notty", r.Style())

	out, err := r.Render("# Title\n\nSome **bold** text.\n\n- one\n- two\n")
	require.NoError(t, err)

	// notty spells emphasis and headings out in markdown syntax.
	plain := ansi.Strip(out)
	require.Contains(t, plain, "# Title")
	require.Contains(t, plain, "**bold**")
	require.Contains(t, plain, "one")
}

func TestRender_StyledEmphasis(t *testing.T) {
	r, err := New("dark", 40)
	require.NoError(t, err)

	out, err := r.Render("Some **bold** text.")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.NotEqual(t, plain, out, "dark styles with escape codes")
	require.Contains(t, plain, "bold")
	require.NotContains(t, plain, "**")
}

func TestRender_WrapsToWidth(t *testing.T) {
	r, err := New("notty", 20)
	require.NoError(t, err)

	out, err := r.Render("alpha beta gamma delta epsilon zeta eta theta")
	require.NoError(t, err)
	for _, line := range splitLines(out) {
		require.LessOrEqual(t, ansi.StringWidth(line), 20, "line %q", line)
	}
}

func TestNew_MissingStyleFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.json"), 40)
	require.Error(t, err)
}

func TestPreview_RendersOnRefresh(t *testing.T) {
	p := NewPreview("notty", 0).SetSize(30, 5).SetContent("# Hello")
	require.NotContains(t, p.View(), "Hello", "nothing renders before Refresh")

	p = p.Refresh()
	require.NoError(t, p.Err())
	require.Contains(t, ansi.Strip(p.View()), "Hello")
}

func TestPreview_EmptyShowsMessage(t *testing.T) {
	p := NewPreview("notty", 0).SetSize(30, 3).SetContent("").Refresh()
	require.Contains(t, ansi.Strip(p.View()), EmptyMessage)
}

func TestPreview_BadStyleReportsError(t *testing.T) {
	p := NewPreview(filepath.Join(t.TempDir(), "nope.json"), 0).SetSize(30, 3).SetContent("x").Refresh()
	require.Error(t, p.Err())
}

func TestPreview_Scrolls(t *testing.T) {
	doc := ""
	for i := 0; i < 40; i++ {
		doc += "paragraph\n\n"
	}
	p := NewPreview("notty", 0).SetSize(30, 4).SetContent(doc).Refresh()
	require.Empty(t, p.ScrollIndicator())

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	require.NotEmpty(t, p.ScrollIndicator())
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
