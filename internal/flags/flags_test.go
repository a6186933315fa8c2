package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{
			name:     "default off",
			registry: New(nil),
			flag:     FlagHeadingInline,
			expected: false,
		},
		{
			name:     "default on",
			registry: New(nil),
			flag:     FlagPreviewTab,
			expected: true,
		},
		{
			name:     "config overrides default",
			registry: New(map[string]bool{FlagHeadingInline: true, FlagPreviewTab: false}),
			flag:     FlagHeadingInline,
			expected: true,
		},
		{
			name:     "config can turn a default off",
			registry: New(map[string]bool{FlagPreviewTab: false}),
			flag:     FlagPreviewTab,
			expected: false,
		},
		{
			name:     "unknown flag is off",
			registry: New(nil),
			flag:     "no-such-flag",
			expected: false,
		},
		{
			name:     "nil registry uses defaults",
			registry: nil,
			flag:     FlagPreviewTab,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_UnknownConfigFlagIsKept(t *testing.T) {
	r := New(map[string]bool{"experimental": true})
	require.True(t, r.Enabled("experimental"))
	require.Equal(t, []string{"experimental", FlagHeadingInline, FlagPreviewTab}, r.Names())
}

func TestRegistry_AllIsACopy(t *testing.T) {
	r := New(map[string]bool{FlagHeadingInline: true})
	all := r.All()
	all[FlagHeadingInline] = false
	require.True(t, r.Enabled(FlagHeadingInline))

	var nilRegistry *Registry
	require.Equal(t, Known, nilRegistry.All())
}
