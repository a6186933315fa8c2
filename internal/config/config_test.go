package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadConfigFromYAML reads YAML through viper the same way the CLI does.
func loadConfigFromYAML(t *testing.T, yamlContent string) Config {
	t.Helper()

	v := NewViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yamlContent)))

	cfg, err := Load(v)
	require.NoError(t, err)
	return cfg
}

func TestDefaults(t *testing.T) {
	d := Defaults()

	assert.Equal(t, 4, d.Editor.TabWidth)
	assert.Equal(t, 50, d.Editor.HistoryLimit)
	assert.True(t, d.Editor.ShowToolbar)
	assert.True(t, d.Editor.ShowStatusBar)
	assert.Equal(t, "auto", d.Preview.Style)
	assert.True(t, d.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, d.Cache.TTL)
	assert.True(t, d.Watch.Enabled)
	assert.Equal(t, 200*time.Millisecond, d.Watch.Debounce)
	require.NoError(t, Validate(d))
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg := loadConfigFromYAML(t, "")
	assert.Equal(t, Defaults().Editor, cfg.Editor)
	assert.Equal(t, Defaults().Watch, cfg.Watch)
}

func TestLoad_Overrides(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
editor:
  tab_width: 8
  history_limit: 10
  show_toolbar: false
preview:
  style: dark
  width: 72
cache:
  ttl: 30s
watch:
  enabled: false
  debounce: 1s
flags:
  heading-inline: true
`)

	assert.Equal(t, 8, cfg.Editor.TabWidth)
	assert.Equal(t, 10, cfg.Editor.HistoryLimit)
	assert.False(t, cfg.Editor.ShowToolbar)
	assert.True(t, cfg.Editor.ShowStatusBar, "unset keys keep their default")
	assert.Equal(t, "dark", cfg.Preview.Style)
	assert.Equal(t, 72, cfg.Preview.Width)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, map[string]bool{"heading-inline": true}, cfg.Flags)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	v := NewViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader("editor:\n  tab_width: 0\n")))

	_, err := Load(v)
	require.ErrorContains(t, err, "editor.tab_width")
}

func TestValidateEditor(t *testing.T) {
	tests := []struct {
		name    string
		editor  EditorConfig
		wantErr string
	}{
		{"defaults", Defaults().Editor, ""},
		{"tab width zero", EditorConfig{TabWidth: 0, HistoryLimit: 50}, "tab_width"},
		{"tab width too wide", EditorConfig{TabWidth: 17, HistoryLimit: 50}, "tab_width"},
		{"history limit zero", EditorConfig{TabWidth: 4, HistoryLimit: 0}, "history_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEditor(tt.editor)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidatePreview(t *testing.T) {
	styleFile := filepath.Join(t.TempDir(), "style.json")
	require.NoError(t, os.WriteFile(styleFile, []byte("{}"), 0o600))

	tests := []struct {
		name    string
		preview PreviewConfig
		wantErr bool
	}{
		{"auto", PreviewConfig{Style: "auto"}, false},
		{"empty", PreviewConfig{}, false},
		{"builtin", PreviewConfig{Style: "dracula", Width: 80}, false},
		{"style file", PreviewConfig{Style: styleFile}, false},
		{"missing file", PreviewConfig{Style: filepath.Join(t.TempDir(), "nope.json")}, true},
		{"negative width", PreviewConfig{Style: "dark", Width: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePreview(tt.preview)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidate_NegativeDurations(t *testing.T) {
	cfg := Defaults()
	cfg.Cache.TTL = -time.Second
	require.ErrorContains(t, Validate(cfg), "cache.ttl")

	cfg = Defaults()
	cfg.Watch.Debounce = -time.Second
	require.ErrorContains(t, Validate(cfg), "watch.debounce")
}

func TestDefaultConfigTemplate_Parses(t *testing.T) {
	cfg := loadConfigFromYAML(t, DefaultConfigTemplate())

	assert.Equal(t, Defaults().Editor, cfg.Editor)
	assert.Equal(t, Defaults().Preview, cfg.Preview)
	assert.Equal(t, Defaults().Cache, cfg.Cache)
	assert.Equal(t, Defaults().Watch, cfg.Watch)
	assert.Equal(t, map[string]bool{"heading-inline": false, "preview-tab": true}, cfg.Flags)
}

func TestWriteDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "inkwell", "config.yaml")

	require.NoError(t, WriteDefaultConfig(configPath))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigTemplate(), string(data))

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestNewViper_UsesCustomDelimiter(t *testing.T) {
	v := NewViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader("theme:\n  colors:\n    md.code: \"#FF0000\"\n")))

	var colors map[string]string
	require.NoError(t, v.UnmarshalKey("theme"+KeyDelimiter+"colors", &colors))
	assert.Equal(t, map[string]string{"md.code": "#FF0000"}, colors)
}
