package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })
}

func TestApplyTheme_Default(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{}))
	require.Equal(t, DefaultPreset.Colors[TokenTextPrimary], TextPrimaryColor.Dark)
	require.Equal(t, DefaultPreset.Colors[TokenMDHeading], MDHeadingColor.Dark)
}

func TestApplyTheme_Preset(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "nord"}))
	require.Equal(t, NordPreset.Colors[TokenMDLink], MDLinkColor.Dark)
	require.Equal(t, NordPreset.Colors[TokenMDLink], MDLinkColor.Light)
}

func TestApplyTheme_OverrideBeatsPreset(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{
		Preset: "dracula",
		Colors: map[string]string{"md.bold": "#00FF00"},
	}))
	require.Equal(t, "#00FF00", MDBoldColor.Dark)
	require.Equal(t, DraculaPreset.Colors[TokenMDItalic], MDItalicColor.Dark)
}

func TestApplyTheme_Errors(t *testing.T) {
	resetTheme(t)
	tests := []struct {
		name string
		cfg  ThemeConfig
		want string
	}{
		{"unknown preset", ThemeConfig{Preset: "solarized"}, "unknown theme preset"},
		{"unknown token", ThemeConfig{Colors: map[string]string{"bql.keyword": "#FFF"}}, "unknown color token"},
		{"bad hex", ThemeConfig{Colors: map[string]string{"md.code": "red"}}, "invalid hex color"},
		{"bad mode", ThemeConfig{Mode: "sepia"}, "invalid theme mode"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ApplyTheme(tc.cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestApplyTheme_RunsRebuilders(t *testing.T) {
	resetTheme(t)
	calls := 0
	RegisterStyleRebuilder(func() { calls++ })
	t.Cleanup(func() { styleRebuilders = styleRebuilders[:len(styleRebuilders)-1] })

	require.NoError(t, ApplyTheme(ThemeConfig{}))
	require.Equal(t, 1, calls)
}

func TestIsValidHexColor(t *testing.T) {
	require.True(t, IsValidHexColor("#FFF"))
	require.True(t, IsValidHexColor("#a1b2c3"))
	require.False(t, IsValidHexColor("FFF"))
	require.False(t, IsValidHexColor("#FFFF"))
	require.False(t, IsValidHexColor("#GGGGGG"))
}
