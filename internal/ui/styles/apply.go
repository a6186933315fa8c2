package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders lets packages that derive their own styles from these
// colors refresh them after ApplyTheme.
var styleRebuilders []func()

// RegisterStyleRebuilder adds fn to the list run after every theme change.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid an import cycle.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme layers the preset and then the individual overrides onto the
// default colors and rebuilds every style. Mode "light" or "dark" pins
// lipgloss to that background instead of asking the terminal.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !IsValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !IsValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	switch cfg.Mode {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "":
	default:
		return fmt.Errorf("invalid theme mode %q (must be \"light\" or \"dark\")", cfg.Mode)
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

// colorTargets maps each token to the variable it sets.
func colorTargets() map[ColorToken]*lipgloss.AdaptiveColor {
	return map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:     &TextPrimaryColor,
		TokenTextSecondary:   &TextSecondaryColor,
		TokenTextMuted:       &TextMutedColor,
		TokenTextPlaceholder: &TextPlaceholderColor,

		TokenBorderDefault: &BorderDefaultColor,
		TokenBorderFocus:   &BorderFocusColor,

		TokenStatusSuccess: &StatusSuccessColor,
		TokenStatusWarning: &StatusWarningColor,
		TokenStatusError:   &StatusErrorColor,

		TokenCaret:       &CaretColor,
		TokenSelectionBg: &SelectionBgColor,

		TokenButtonText:     &ButtonTextColor,
		TokenButtonBg:       &ButtonBgColor,
		TokenButtonActiveBg: &ButtonActiveBgColor,
		TokenButtonDisabled: &ButtonDisabledColor,

		TokenToastSuccess: &ToastBorderSuccessColor,
		TokenToastError:   &ToastBorderErrorColor,
		TokenToastInfo:    &ToastBorderInfoColor,
		TokenToastWarn:    &ToastBorderWarnColor,

		TokenMDHash:       &MDHashColor,
		TokenMDHeading:    &MDHeadingColor,
		TokenMDBlockquote: &MDBlockquoteColor,
		TokenMDHR:         &MDHRColor,
		TokenMDListMarker: &MDListMarkerColor,
		TokenMDCodeBlock:  &MDCodeBlockColor,
		TokenMDCode:       &MDCodeColor,
		TokenMDBold:       &MDBoldColor,
		TokenMDItalic:     &MDItalicColor,
		TokenMDLink:       &MDLinkColor,
		TokenMDImage:      &MDImageColor,
	}
}

// applyColors sets both adaptive variants to the theme color; presets are
// already tuned for one background.
func applyColors(colors map[ColorToken]string) {
	targets := colorTargets()
	for token, hex := range colors {
		if dst, ok := targets[token]; ok {
			*dst = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
}

func rebuildStyles() {
	TextStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor).Italic(true)
	CaretStyle = lipgloss.NewStyle().Reverse(true)
	SelectionStyle = lipgloss.NewStyle().Background(SelectionBgColor)

	base := lipgloss.NewStyle().Padding(0, 1)
	ButtonStyle = base.Foreground(ButtonTextColor).Background(ButtonBgColor)
	ButtonActiveStyle = base.Foreground(ButtonTextColor).Background(ButtonActiveBgColor).Bold(true)
	ButtonDisabledStyle = base.Foreground(ButtonDisabledColor).Background(ButtonBgColor)
	ToolbarSepStyle = lipgloss.NewStyle().Foreground(BorderDefaultColor)

	TabStyle = lipgloss.NewStyle().Padding(0, 2).Foreground(TextMutedColor)
	TabActiveStyle = lipgloss.NewStyle().Padding(0, 2).Foreground(TextPrimaryColor).
		Background(ButtonActiveBgColor).Bold(true)

	StatusBarStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Padding(0, 1)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true).Padding(1, 2)

	buildTagStyles()

	for _, fn := range styleRebuilders {
		fn()
	}
}

// IsValidToken reports whether token names a themeable color.
func IsValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

// IsValidHexColor accepts #RGB and #RRGGBB.
func IsValidHexColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
