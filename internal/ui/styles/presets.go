package styles

// Preset is a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets are the built-in themes, selectable with theme.preset.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset matches the dark values of the AdaptiveColor defaults.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default inkwell theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#54A0FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenCaret:       "#FFFFFF",
		TokenSelectionBg: "#3A3F4B",

		TokenButtonText:     "#FFFFFF",
		TokenButtonBg:       "#2D3436",
		TokenButtonActiveBg: "#1A5276",
		TokenButtonDisabled: "#555555",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",

		TokenMDHash:       "#7D56F4",
		TokenMDHeading:    "#FFFFFF",
		TokenMDBlockquote: "#999999",
		TokenMDHR:         "#696969",
		TokenMDListMarker: "#FF9F43",
		TokenMDCodeBlock:  "#73F59F",
		TokenMDCode:       "#FF8787",
		TokenMDBold:       "#FFFFFF",
		TokenMDItalic:     "#CCCCCC",
		TokenMDLink:       "#54A0FF",
		TokenMDImage:      "#48DBFB",
	},
}

// CatppuccinMochaPreset is Catppuccin Mocha. Palette: https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextPlaceholder: "#585B70", // surface2

		TokenBorderDefault: "#6C7086", // overlay0
		TokenBorderFocus:   "#89B4FA", // blue

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		TokenCaret:       "#F5E0DC", // rosewater
		TokenSelectionBg: "#45475A", // surface1

		TokenButtonText:     "#CDD6F4", // text
		TokenButtonBg:       "#313244", // surface0
		TokenButtonActiveBg: "#585B70", // surface2
		TokenButtonDisabled: "#6C7086", // overlay0

		TokenToastSuccess: "#A6E3A1", // green
		TokenToastError:   "#F38BA8", // red
		TokenToastInfo:    "#89B4FA", // blue
		TokenToastWarn:    "#F9E2AF", // yellow

		TokenMDHash:       "#CBA6F7", // mauve
		TokenMDHeading:    "#B4BEFE", // lavender
		TokenMDBlockquote: "#A6ADC8", // subtext0
		TokenMDHR:         "#6C7086", // overlay0
		TokenMDListMarker: "#FAB387", // peach
		TokenMDCodeBlock:  "#A6E3A1", // green
		TokenMDCode:       "#F38BA8", // red
		TokenMDBold:       "#F9E2AF", // yellow
		TokenMDItalic:     "#F5C2E7", // pink
		TokenMDLink:       "#89B4FA", // blue
		TokenMDImage:      "#94E2D5", // teal
	},
}

// CatppuccinLattePreset is Catppuccin Latte, the light flavor.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - light theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#4C4F69", // text
		TokenTextSecondary:   "#5C5F77", // subtext1
		TokenTextMuted:       "#9CA0B0", // overlay0
		TokenTextPlaceholder: "#ACB0BE", // surface2

		TokenBorderDefault: "#9CA0B0", // overlay0
		TokenBorderFocus:   "#1E66F5", // blue

		TokenStatusSuccess: "#40A02B", // green
		TokenStatusWarning: "#DF8E1D", // yellow
		TokenStatusError:   "#D20F39", // red

		TokenCaret:       "#DC8A78", // rosewater
		TokenSelectionBg: "#CCD0DA", // surface0

		TokenButtonText:     "#4C4F69", // text
		TokenButtonBg:       "#CCD0DA", // surface0
		TokenButtonActiveBg: "#BCC0CC", // surface1
		TokenButtonDisabled: "#9CA0B0", // overlay0

		TokenToastSuccess: "#40A02B", // green
		TokenToastError:   "#D20F39", // red
		TokenToastInfo:    "#1E66F5", // blue
		TokenToastWarn:    "#DF8E1D", // yellow

		TokenMDHash:       "#8839EF", // mauve
		TokenMDHeading:    "#7287FD", // lavender
		TokenMDBlockquote: "#6C6F85", // subtext0
		TokenMDHR:         "#9CA0B0", // overlay0
		TokenMDListMarker: "#FE640B", // peach
		TokenMDCodeBlock:  "#40A02B", // green
		TokenMDCode:       "#D20F39", // red
		TokenMDBold:       "#DF8E1D", // yellow
		TokenMDItalic:     "#EA76CB", // pink
		TokenMDLink:       "#1E66F5", // blue
		TokenMDImage:      "#179299", // teal
	},
}

// DraculaPreset is Dracula. Palette: https://draculatheme.com/contribute
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vivid colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#F8F8F2", // foreground
		TokenTextSecondary:   "#E2E2DC",
		TokenTextMuted:       "#6272A4", // comment
		TokenTextPlaceholder: "#6272A4", // comment

		TokenBorderDefault: "#6272A4", // comment
		TokenBorderFocus:   "#BD93F9", // purple

		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		TokenCaret:       "#F8F8F2", // foreground
		TokenSelectionBg: "#44475A", // current line

		TokenButtonText:     "#F8F8F2", // foreground
		TokenButtonBg:       "#44475A", // current line
		TokenButtonActiveBg: "#6272A4", // comment
		TokenButtonDisabled: "#6272A4", // comment

		TokenToastSuccess: "#50FA7B", // green
		TokenToastError:   "#FF5555", // red
		TokenToastInfo:    "#8BE9FD", // cyan
		TokenToastWarn:    "#FFB86C", // orange

		TokenMDHash:       "#FF79C6", // pink
		TokenMDHeading:    "#BD93F9", // purple
		TokenMDBlockquote: "#6272A4", // comment
		TokenMDHR:         "#6272A4", // comment
		TokenMDListMarker: "#FFB86C", // orange
		TokenMDCodeBlock:  "#50FA7B", // green
		TokenMDCode:       "#50FA7B", // green
		TokenMDBold:       "#FFB86C", // orange
		TokenMDItalic:     "#F1FA8C", // yellow
		TokenMDLink:       "#8BE9FD", // cyan
		TokenMDImage:      "#FF79C6", // pink
	},
}

// NordPreset is Nord. Palette: https://www.nordtheme.com/docs/colors-and-palettes
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#ECEFF4", // nord6
		TokenTextSecondary:   "#E5E9F0", // nord5
		TokenTextMuted:       "#4C566A", // nord3
		TokenTextPlaceholder: "#4C566A", // nord3

		TokenBorderDefault: "#4C566A", // nord3
		TokenBorderFocus:   "#88C0D0", // nord8

		TokenStatusSuccess: "#A3BE8C", // nord14
		TokenStatusWarning: "#EBCB8B", // nord13
		TokenStatusError:   "#BF616A", // nord11

		TokenCaret:       "#D8DEE9", // nord4
		TokenSelectionBg: "#434C5E", // nord2

		TokenButtonText:     "#ECEFF4", // nord6
		TokenButtonBg:       "#3B4252", // nord1
		TokenButtonActiveBg: "#5E81AC", // nord10
		TokenButtonDisabled: "#4C566A", // nord3

		TokenToastSuccess: "#A3BE8C", // nord14
		TokenToastError:   "#BF616A", // nord11
		TokenToastInfo:    "#88C0D0", // nord8
		TokenToastWarn:    "#EBCB8B", // nord13

		TokenMDHash:       "#B48EAD", // nord15
		TokenMDHeading:    "#88C0D0", // nord8
		TokenMDBlockquote: "#D8DEE9", // nord4
		TokenMDHR:         "#4C566A", // nord3
		TokenMDListMarker: "#D08770", // nord12
		TokenMDCodeBlock:  "#A3BE8C", // nord14
		TokenMDCode:       "#8FBCBB", // nord7
		TokenMDBold:       "#EBCB8B", // nord13
		TokenMDItalic:     "#E5E9F0", // nord5
		TokenMDLink:       "#81A1C1", // nord9
		TokenMDImage:      "#5E81AC", // nord10
	},
}

// HighContrastPreset uses pure primaries for accessibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast - maximum readability",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#C0C0C0",
		TokenTextPlaceholder: "#C0C0C0",

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenCaret:       "#FFFF00",
		TokenSelectionBg: "#0000FF",

		TokenButtonText:     "#000000",
		TokenButtonBg:       "#FFFFFF",
		TokenButtonActiveBg: "#FFFF00",
		TokenButtonDisabled: "#808080",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",

		TokenMDHash:       "#FF00FF",
		TokenMDHeading:    "#FFFFFF",
		TokenMDBlockquote: "#C0C0C0",
		TokenMDHR:         "#FFFFFF",
		TokenMDListMarker: "#FFFF00",
		TokenMDCodeBlock:  "#00FF00",
		TokenMDCode:       "#00FF00",
		TokenMDBold:       "#FFFFFF",
		TokenMDItalic:     "#00FFFF",
		TokenMDLink:       "#00FFFF",
		TokenMDImage:      "#FF00FF",
	},
}
