package overlay

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestCaret(t *testing.T) {
	tests := []struct {
		name     string
		bg       string
		row, col int
		cell     string
		want     string
	}{
		{"middle", "abc\ndef", 1, 1, "#", "abc\nd#f"},
		{"line start", "abc", 0, 0, "#", "#bc"},
		{"past line end pads", "ab", 0, 4, "#", "ab  #"},
		{"row out of range", "abc", 3, 0, "#", "abc"},
		{"negative", "abc", -1, 0, "#", "abc"},
		{"wide cell", "abcd", 0, 1, "日", "a日d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Caret(tt.bg, tt.row, tt.col, tt.cell))
		})
	}
}

func TestCaret_KeepsRenderStyling(t *testing.T) {
	bg := "\x1b[1mbold\x1b[0m"

	got := Caret(bg, 0, 2, "_")

	require.Contains(t, got, "\x1b[1m")
	require.Equal(t, "bo_d", ansi.Strip(got))
}

func TestCrop(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		left, width int
		want        string
	}{
		{"no scroll", "hello", 0, 3, "hel"},
		{"scrolled", "hello", 2, 3, "llo"},
		{"pads", "hi", 0, 4, "hi  "},
		{"scrolled past end", "hi", 5, 2, "  "},
		{"zero width", "hi", 0, 0, ""},
		{"wide cut at left edge", "a日日日日日z", 8, 4, " 日z"},
		{"wide cut at right edge", "ab日c", 0, 3, "ab "},
		{"wide cut at both edges", "日日", 1, 2, "  "},
		{"wide fits", "a日b", 1, 2, "日"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Crop(tt.line, tt.left, tt.width))
		})
	}
}

func TestCrop_Styled(t *testing.T) {
	got := Crop("\x1b[31mredtext\x1b[0m", 3, 4)
	require.Equal(t, "text", ansi.Strip(got))
	require.Contains(t, got, "\x1b[31m")
}

func TestCrop_WideStraddleKeepsStyleAndWidth(t *testing.T) {
	got := Crop("\x1b[31m日日日\x1b[0mx", 1, 6)

	require.Equal(t, " 日日x", ansi.Strip(got))
	require.Equal(t, 6, ansi.StringWidth(got))
	require.Contains(t, got, "\x1b[31m")
}
