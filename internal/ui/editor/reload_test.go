package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapOffset(t *testing.T) {
	tests := []struct {
		name          string
		before, after string
		offset, want  int
	}{
		{"unchanged", "abc", "abc", 2, 2},
		{"insert ahead", "hello world", "oh hello world", 6, 9},
		{"insert behind", "hello world", "hello world!", 6, 6},
		{"delete ahead", "xx hello", "hello", 5, 2},
		{"inside deletion", "keep drop tail", "keep tail", 7, 5},
		{"end stays at end", "abc", "abcdef", 3, 6},
		{"multibyte ahead", "abc", "éé abc", 1, 4},
		{"empty before", "", "new", 0, 3},
		{"everything removed", "gone", "", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapOffset(tt.before, tt.after, tt.offset))
		})
	}
}
