// Package config defines inkwell's configuration, its defaults, and the
// commented template written on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/zjrosen/inkwell/internal/log"
	"github.com/zjrosen/inkwell/internal/ui/styles"
)

// KeyDelimiter separates nested viper keys. The default "." would split
// dotted color tokens such as "md.heading" under theme.colors.
const KeyDelimiter = "::"

// Config holds every option.
type Config struct {
	Editor  EditorConfig    `mapstructure:"editor"`
	Preview PreviewConfig   `mapstructure:"preview"`
	Theme   ThemeConfig     `mapstructure:"theme"`
	Cache   CacheConfig     `mapstructure:"cache"`
	Watch   WatchConfig     `mapstructure:"watch"`
	Flags   map[string]bool `mapstructure:"flags"`
}

// EditorConfig configures the editing surface.
type EditorConfig struct {
	TabWidth      int    `mapstructure:"tab_width"`     // cells per tab stop, shared by both layers
	HistoryLimit  int    `mapstructure:"history_limit"` // undo snapshots kept
	Placeholder   string `mapstructure:"placeholder"`   // shown when the document is empty
	ShowToolbar   bool   `mapstructure:"show_toolbar"`
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
}

// PreviewConfig configures the rendered preview.
type PreviewConfig struct {
	Style string `mapstructure:"style"` // "dark", "light", "auto", or a glamour JSON style path
	Width int    `mapstructure:"width"` // word-wrap column; 0 follows the window
}

// ThemeConfig selects colors.
type ThemeConfig struct {
	// Preset is a built-in theme: "default", "catppuccin-mocha",
	// "catppuccin-latte", "dracula", "nord", "high-contrast".
	Preset string `mapstructure:"preset"`

	// Mode pins "light" or "dark"; empty asks the terminal.
	Mode string `mapstructure:"mode"`

	// Colors overrides single tokens, e.g. "md.heading": "#FFFFFF".
	Colors map[string]string `mapstructure:"colors"`
}

// Styles converts to the styles package's mirror type.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{Preset: t.Preset, Mode: t.Mode, Colors: t.Colors}
}

// CacheConfig configures the highlight cache.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// WatchConfig configures reloading the open file when it changes on disk.
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:      4,
			HistoryLimit:  50,
			Placeholder:   "Start writing your markdown here...",
			ShowToolbar:   true,
			ShowStatusBar: true,
		},
		Preview: PreviewConfig{
			Style: "auto",
			Width: 0,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 200 * time.Millisecond,
		},
	}
}

// SetDefaults registers Defaults with v so unset keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	key := func(parts ...string) string {
		out := parts[0]
		for _, p := range parts[1:] {
			out += KeyDelimiter + p
		}
		return out
	}
	v.SetDefault(key("editor", "tab_width"), d.Editor.TabWidth)
	v.SetDefault(key("editor", "history_limit"), d.Editor.HistoryLimit)
	v.SetDefault(key("editor", "placeholder"), d.Editor.Placeholder)
	v.SetDefault(key("editor", "show_toolbar"), d.Editor.ShowToolbar)
	v.SetDefault(key("editor", "show_status_bar"), d.Editor.ShowStatusBar)
	v.SetDefault(key("preview", "style"), d.Preview.Style)
	v.SetDefault(key("preview", "width"), d.Preview.Width)
	v.SetDefault(key("cache", "enabled"), d.Cache.Enabled)
	v.SetDefault(key("cache", "ttl"), d.Cache.TTL)
	v.SetDefault(key("watch", "enabled"), d.Watch.Enabled)
	v.SetDefault(key("watch", "debounce"), d.Watch.Debounce)
}

// NewViper returns a viper instance using KeyDelimiter with defaults set.
func NewViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
	SetDefaults(v)
	return v
}

// Load decodes v into a Config layered over Defaults and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func Validate(cfg Config) error {
	if err := ValidateEditor(cfg.Editor); err != nil {
		return err
	}
	if err := ValidatePreview(cfg.Preview); err != nil {
		return err
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", cfg.Cache.TTL)
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", cfg.Watch.Debounce)
	}
	return nil
}

// ValidateEditor checks the editor section.
func ValidateEditor(e EditorConfig) error {
	if e.TabWidth < 1 || e.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width must be between 1 and 16, got %d", e.TabWidth)
	}
	if e.HistoryLimit < 1 {
		return fmt.Errorf("editor.history_limit must be positive, got %d", e.HistoryLimit)
	}
	return nil
}

// ValidatePreview checks the preview section. A style that is not a
// built-in name must be an existing file.
func ValidatePreview(p PreviewConfig) error {
	if p.Width < 0 {
		return fmt.Errorf("preview.width must not be negative, got %d", p.Width)
	}
	switch p.Style {
	case "", "auto", "dark", "light", "notty", "ascii", "dracula", "tokyo-night", "pink":
		return nil
	}
	if _, err := os.Stat(p.Style); err != nil {
		return fmt.Errorf("preview.style %q is neither a built-in style nor a readable file: %w", p.Style, err)
	}
	return nil
}

// ValidateTheme checks the theme section against the styles package.
func ValidateTheme(t ThemeConfig) error {
	if t.Preset != "" {
		if _, ok := styles.Presets[t.Preset]; !ok {
			return fmt.Errorf("theme.preset: unknown preset %q", t.Preset)
		}
	}
	switch t.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\" or \"dark\", got %q", t.Mode)
	}
	for key, value := range t.Colors {
		if !styles.IsValidToken(styles.ColorToken(key)) {
			return fmt.Errorf("theme.colors: unknown color token %q", key)
		}
		if !styles.IsValidHexColor(value) {
			return fmt.Errorf("theme.colors.%s: invalid hex color %q", key, value)
		}
	}
	return nil
}

// UserConfigPath is ~/.config/inkwell/config.yaml.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "inkwell", "config.yaml"), nil
}

// LocalConfigPath is the per-project config, checked before the user config.
const LocalConfigPath = ".inkwell/config.yaml"

// DefaultConfigTemplate returns the default config as commented YAML.
func DefaultConfigTemplate() string {
	return `# inkwell configuration

editor:
  tab_width: 4                  # cells per tab stop
  history_limit: 50             # undo snapshots kept
  placeholder: "Start writing your markdown here..."
  show_toolbar: true            # formatting buttons above the editor
  show_status_bar: true         # line, word and character counts

preview:
  style: auto                   # auto, dark, light, notty, dracula, tokyo-night, pink, or a JSON style file
  width: 0                      # word-wrap column; 0 follows the window

theme:
  # preset: catppuccin-mocha    # default, catppuccin-mocha, catppuccin-latte, dracula, nord, high-contrast
  # mode: dark                  # force light or dark; unset asks the terminal
  # colors:                     # override single colors
  #   md.heading: "#FFFFFF"
  #   md.code: "#FF8787"

cache:
  enabled: true                 # reuse highlighting for unchanged documents
  ttl: 5m

watch:
  enabled: true                 # reload the open file when it changes on disk
  debounce: 200ms

flags:
  heading-inline: false         # color **bold** and links inside headings
  preview-tab: true
`
}

// WriteDefaultConfig writes DefaultConfigTemplate to configPath, creating
// parent directories.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
