// Package styles holds the Lip Gloss colors and styles for inkwell.
//
// Colors are package variables so a theme can replace them at startup;
// ApplyTheme rewrites the colors and then rebuilds every derived Style.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // hints, status line
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#777777"}

	// Borders
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Editing surface
	CaretColor       = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	SelectionBgColor = lipgloss.AdaptiveColor{Light: "#CCE4FF", Dark: "#3A3F4B"}

	// Toolbar buttons and tabs
	ButtonTextColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}
	ButtonBgColor       = lipgloss.AdaptiveColor{Light: "#E4E4E4", Dark: "#2D3436"}
	ButtonActiveBgColor = lipgloss.AdaptiveColor{Light: "#C8DAF0", Dark: "#1A5276"}
	ButtonDisabledColor = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#555555"}

	// Toasts
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	// Markdown highlighting
	MDHashColor       = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	MDHeadingColor    = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#FFFFFF"}
	MDBlockquoteColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	MDHRColor         = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"}
	MDListMarkerColor = lipgloss.AdaptiveColor{Light: "#E67E22", Dark: "#FF9F43"}
	MDCodeBlockColor  = lipgloss.AdaptiveColor{Light: "#2E8B57", Dark: "#73F59F"}
	MDCodeColor       = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF8787"}
	MDBoldColor       = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#FFFFFF"}
	MDItalicColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	MDLinkColor       = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	MDImageColor      = lipgloss.AdaptiveColor{Light: "#0097A7", Dark: "#48DBFB"}
)

// Derived styles. rebuildStyles recreates them after a theme change because
// a lipgloss.Style captures its colors when built.
var (
	TextStyle        lipgloss.Style
	PlaceholderStyle lipgloss.Style
	CaretStyle       lipgloss.Style
	SelectionStyle   lipgloss.Style

	ButtonStyle         lipgloss.Style
	ButtonActiveStyle   lipgloss.Style
	ButtonDisabledStyle lipgloss.Style
	ToolbarSepStyle     lipgloss.Style

	TabStyle       lipgloss.Style
	TabActiveStyle lipgloss.Style

	StatusBarStyle lipgloss.Style
	ErrorStyle     lipgloss.Style
)

func init() {
	rebuildStyles()
}
