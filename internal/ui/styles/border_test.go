package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestPanel_Shape(t *testing.T) {
	out := Panel("one\ntwo", "notes.md", 20, 5, true)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5)
	for i, line := range lines {
		require.Equal(t, 20, lipgloss.Width(line), "line %d", i)
	}

	plain := ansi.Strip(out)
	require.True(t, strings.HasPrefix(plain, "╭─ notes.md ─"))
	require.Contains(t, plain, "│one")
	require.Contains(t, plain, "│two")
	require.True(t, strings.HasSuffix(plain, "╯"))
}

func TestPanel_CutsLongContentAndTitle(t *testing.T) {
	out := Panel(strings.Repeat("x", 50)+"\na\nb\nc", strings.Repeat("t", 40), 12, 4, false)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4, "only two content rows fit")
	for _, line := range lines {
		require.Equal(t, 12, lipgloss.Width(line))
	}
	require.Contains(t, ansi.Strip(lines[0]), "…")
}

func TestPanel_NoTitle(t *testing.T) {
	top := strings.Split(ansi.Strip(Panel("", "", 6, 3, false)), "\n")[0]
	require.Equal(t, "╭────╮", top)
}
