package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTheme_CreatesNewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	err := SaveTheme(configPath, ThemeConfig{Preset: "dracula"})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "theme:\n  preset: dracula\n", string(data))
}

func TestSaveTheme_PreservesOtherConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	initial := `# my settings
editor:
  tab_width: 8 # wide tabs
theme:
  preset: nord
watch:
  enabled: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0o600))

	err := SaveTheme(configPath, ThemeConfig{
		Preset: "catppuccin-latte",
		Colors: map[string]string{"md.code": "#FF0000"},
	})
	require.NoError(t, err)

	cfg := loadConfigFromFile(t, configPath)
	assert.Equal(t, 8, cfg.Editor.TabWidth)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, "catppuccin-latte", cfg.Theme.Preset)
	assert.Equal(t, map[string]string{"md.code": "#FF0000"}, cfg.Theme.Colors)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# my settings")
	assert.Contains(t, string(data), "# wide tabs")
	assert.NotContains(t, string(data), "nord")
}

func TestSaveTheme_AppendsMissingSection(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("editor:\n  tab_width: 2\n"), 0o600))

	require.NoError(t, SaveTheme(configPath, ThemeConfig{Mode: "light"}))

	cfg := loadConfigFromFile(t, configPath)
	assert.Equal(t, 2, cfg.Editor.TabWidth)
	assert.Equal(t, "light", cfg.Theme.Mode)
}

func TestSaveTheme_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("editor: [unclosed\n"), 0o600))

	err := SaveTheme(configPath, ThemeConfig{Preset: "nord"})
	require.ErrorContains(t, err, "parsing config")
}

func TestSaveTheme_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	require.NoError(t, SaveTheme(configPath, ThemeConfig{Preset: "nord"}))
	require.NoError(t, SaveTheme(configPath, ThemeConfig{Preset: "dracula"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.yaml", entries[0].Name())
}

func TestSaveFlag(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("flags:\n  preview-tab: false\n"), 0o600))

	require.NoError(t, SaveFlag(configPath, "heading-inline", true))

	cfg := loadConfigFromFile(t, configPath)
	assert.Equal(t, map[string]bool{"preview-tab": false, "heading-inline": true}, cfg.Flags)
}

func loadConfigFromFile(t *testing.T, path string) Config {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return loadConfigFromYAML(t, string(data))
}
