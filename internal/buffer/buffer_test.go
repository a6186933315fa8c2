package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Replace(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		insert     string
		want       string
		wantEnd    int
	}{
		{"insert at start", "world", 0, 0, "hello ", "hello world", 6},
		{"insert at end", "hello", 5, 5, "!", "hello!", 6},
		{"replace middle", "hello world", 6, 11, "there", "hello there", 11},
		{"delete", "hello world", 5, 11, "", "hello", 5},
		{"reversed range", "abcdef", 4, 2, "X", "abXef", 3},
		{"clamps past end", "abc", 10, 20, "d", "abcd", 4},
		{"clamps negative", "abc", -5, 1, "", "bc", 0},
		{"rune offsets", "h\u00e9llo", 1, 2, "e", "hello", 2},
		{"emoji counts by rune", "a😀b", 1, 2, "", "ab", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text)
			end := b.Replace(tc.start, tc.end, tc.insert)
			require.Equal(t, tc.want, b.Text())
			require.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestBuffer_VersionAndSnapshot(t *testing.T) {
	b := New("abc")
	snap := b.Snapshot()
	require.Equal(t, 0, snap.Version)

	b.Insert(3, "d")
	require.Equal(t, 1, b.Version())
	require.Equal(t, "abc", snap.Text, "snapshot must not see later edits")
	require.Equal(t, "abcd", b.Snapshot().Text)

	b.Set("")
	require.Equal(t, 2, b.Version())
	require.Equal(t, 0, b.Len())
}

func TestBuffer_Lines(t *testing.T) {
	b := New("one\ntwo\n\nfour")

	require.Equal(t, 4, b.LineCount())
	require.Equal(t, "one", b.Line(0))
	require.Equal(t, "two", b.Line(1))
	require.Equal(t, "", b.Line(2))
	require.Equal(t, "four", b.Line(3))
	require.Equal(t, "", b.Line(4))
	require.Equal(t, "", b.Line(-1))

	require.Equal(t, 4, b.LineStart(6))
	require.Equal(t, 7, b.LineEnd(6))
	require.Equal(t, 0, b.LineStart(0))
	require.Equal(t, b.Len(), b.LineEnd(12))
	require.Equal(t, 1, New("").LineCount())
}

func TestBuffer_PositionOffset(t *testing.T) {
	b := New("ab\ncde\n\nf")

	tests := []struct {
		offset   int
		row, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{6, 1, 3},
		{7, 2, 0},
		{8, 3, 0},
		{9, 3, 1},
	}
	for _, tc := range tests {
		row, col := b.Position(tc.offset)
		assert.Equal(t, tc.row, row, "row of %d", tc.offset)
		assert.Equal(t, tc.col, col, "col of %d", tc.offset)
		assert.Equal(t, tc.offset, b.Offset(tc.row, tc.col), "offset of (%d,%d)", tc.row, tc.col)
	}

	require.Equal(t, 2, b.Offset(0, 99), "column clamps to line end")
	require.Equal(t, b.Len(), b.Offset(99, 0), "row past end clamps to document end")
	require.Equal(t, 0, b.Offset(-1, 3))
}

func TestSelection(t *testing.T) {
	b := New("hello world")
	sel := Selection{Start: 11, End: 6}

	require.Equal(t, Selection{Start: 6, End: 11}, sel.Normalize())
	require.Equal(t, "world", sel.Text(b))
	require.Equal(t, 5, sel.Len())
	require.False(t, sel.Empty())
	require.True(t, sel.Contains(6))
	require.False(t, sel.Contains(11))

	require.True(t, Caret(3).Empty())
	require.Equal(t, Selection{Start: 11, End: 0}, Selection{Start: 40, End: -2}.Clamp(b))
}

func TestCount(t *testing.T) {
	tests := []struct {
		text string
		want Stats
	}{
		{"", Stats{Lines: 1, Words: 0, Chars: 0}},
		{"hello world", Stats{Lines: 1, Words: 2, Chars: 11}},
		{"a\nb\n", Stats{Lines: 3, Words: 2, Chars: 4}},
		{"  spaced \t out  ", Stats{Lines: 1, Words: 2, Chars: 16}},
		{"h\u00e9llo \u2713", Stats{Lines: 1, Words: 2, Chars: 7}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Count(tc.text), "Count(%q)", tc.text)
	}
}
