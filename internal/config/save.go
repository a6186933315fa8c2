package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// themeYAML is the on-disk shape of the theme section.
type themeYAML struct {
	Preset string            `yaml:"preset,omitempty"`
	Mode   string            `yaml:"mode,omitempty"`
	Colors map[string]string `yaml:"colors,omitempty"`
}

// SaveTheme replaces the theme section of the config file, keeping
// comments and formatting in every other section.
func SaveTheme(configPath string, theme ThemeConfig) error {
	node := &yaml.Node{}
	if err := node.Encode(themeYAML(theme)); err != nil {
		return fmt.Errorf("building theme node: %w", err)
	}
	return saveSection(configPath, "theme", node)
}

// SaveFlag sets one feature flag under the flags section.
func SaveFlag(configPath, name string, enabled bool) error {
	cfg, err := readFlags(configPath)
	if err != nil {
		return err
	}
	cfg[name] = enabled

	node := &yaml.Node{}
	if err := node.Encode(cfg); err != nil {
		return fmt.Errorf("building flags node: %w", err)
	}
	return saveSection(configPath, "flags", node)
}

func readFlags(configPath string) (map[string]bool, error) {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var parsed struct {
		Flags map[string]bool `yaml:"flags"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if parsed.Flags == nil {
		parsed.Flags = map[string]bool{}
	}
	return parsed.Flags, nil
}

// saveSection swaps the value under a top-level key, or appends the key,
// then writes the file atomically.
func saveSection(configPath, key string, value *yaml.Node) error {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	switch {
	case doc.Kind == 0:
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{{
				Kind: yaml.MappingNode,
				Content: []*yaml.Node{
					{Kind: yaml.ScalarNode, Value: key},
					value,
				},
			}},
		}
	case doc.Kind == yaml.DocumentNode && len(doc.Content) > 0:
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return fmt.Errorf("parsing config: top level is not a mapping")
		}
		found := false
		for i := 0; i < len(root.Content)-1; i += 2 {
			if root.Content[i].Value == key {
				root.Content[i+1] = value
				found = true
				break
			}
		}
		if !found {
			root.Content = append(root.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: key},
				value,
			)
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// writeAtomic writes to a temp file beside path and renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".inkwell.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
