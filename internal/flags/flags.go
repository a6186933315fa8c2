// Package flags holds feature flags read from the flags section of the config.
// A registry is read-only once built; unknown flags are off.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/inkwell/internal/log"
)

const (
	// FlagHeadingInline scans heading text for inline markup, so **bold**
	// inside a heading is colored as bold rather than as heading text.
	FlagHeadingInline = "heading-inline"

	// FlagPreviewTab shows the rendered preview tab. Turning it off leaves
	// only the editor, for terminals where glamour output is unreadable.
	FlagPreviewTab = "preview-tab"
)

// Known lists every flag with its default.
var Known = map[string]bool{
	FlagHeadingInline: false,
	FlagPreviewTab:    true,
}

// Registry answers flag lookups.
type Registry struct {
	flags map[string]bool
}

// New builds a registry from config values layered over the Known defaults.
func New(values map[string]bool) *Registry {
	flags := maps.Clone(Known)
	for name, v := range values {
		if _, ok := Known[name]; !ok {
			log.Warn(log.CatConfig, "Unknown feature flag in config", "flag", name)
		}
		flags[name] = v
	}
	r := &Registry{flags: flags}
	log.Debug(log.CatConfig, "Feature flags initialized", "flags", r.All())
	return r
}

// Enabled reports whether name is on. A nil registry uses the Known defaults.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return Known[name]
	}
	return r.flags[name]
}

// All returns a copy of every flag value.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return maps.Clone(Known)
	}
	return maps.Clone(r.flags)
}

// Names returns the flag names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.All()))
}
