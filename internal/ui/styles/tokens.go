package styles

// ColorToken is a themeable color name. Users override tokens under
// theme.colors in the config.
type ColorToken string

const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Editing surface
	TokenCaret       ColorToken = "editor.caret"
	TokenSelectionBg ColorToken = "editor.selection"

	// Toolbar and tabs
	TokenButtonText     ColorToken = "button.text"
	TokenButtonBg       ColorToken = "button.bg"
	TokenButtonActiveBg ColorToken = "button.active"
	TokenButtonDisabled ColorToken = "button.disabled"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"

	// Markdown highlighting, one per highlight tag
	TokenMDHash       ColorToken = "md.hash"
	TokenMDHeading    ColorToken = "md.heading"
	TokenMDBlockquote ColorToken = "md.blockquote"
	TokenMDHR         ColorToken = "md.hr"
	TokenMDListMarker ColorToken = "md.list-marker"
	TokenMDCodeBlock  ColorToken = "md.code-block"
	TokenMDCode       ColorToken = "md.code"
	TokenMDBold       ColorToken = "md.bold"
	TokenMDItalic     ColorToken = "md.italic"
	TokenMDLink       ColorToken = "md.link"
	TokenMDImage      ColorToken = "md.image"
)

// AllTokens returns every valid token.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextPlaceholder,

		TokenBorderDefault,
		TokenBorderFocus,

		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		TokenCaret,
		TokenSelectionBg,

		TokenButtonText,
		TokenButtonBg,
		TokenButtonActiveBg,
		TokenButtonDisabled,

		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,
		TokenToastWarn,

		TokenMDHash,
		TokenMDHeading,
		TokenMDBlockquote,
		TokenMDHR,
		TokenMDListMarker,
		TokenMDCodeBlock,
		TokenMDCode,
		TokenMDBold,
		TokenMDItalic,
		TokenMDLink,
		TokenMDImage,
	}
}
