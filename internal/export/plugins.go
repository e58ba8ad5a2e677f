package export

import (
	"context"
	"os"

	"github.com/tidwall/gjson"
)

// CachePathResolver is the optional capability of resolving the
// precomputed plugin cache file location.
type CachePathResolver interface {
	CachePath() string
}

// EnabledLister is the optional capability of listing the currently
// enabled plugin identifiers from the live registry.
type EnabledLister interface {
	EnabledPlugins(ctx context.Context) ([]string, error)
}

// CollectPlugins reports the set of enabled extensions. The precomputed
// cache file wins when it exists and parses; the live registry is only
// consulted as a fallback. The cache path is reported even when it
// contributed nothing. This collector never fails the export.
func CollectPlugins(ctx context.Context, registry any) Outcome {
	doc := PluginsDoc{Enabled: []string{}}

	var cachePath string
	if r, ok := registry.(CachePathResolver); ok {
		cachePath = r.CachePath()
	}
	if cachePath != "" {
		doc.CachePath = &cachePath
		if enabled, ok := readPluginCache(cachePath); ok {
			doc.Enabled = enabled
			return Collected(doc)
		}
	}

	if l, ok := registry.(EnabledLister); ok {
		if ids, err := l.EnabledPlugins(ctx); err == nil && ids != nil {
			doc.Enabled = ids
		}
	}

	return Collected(doc)
}

// readPluginCache parses the cache file. The cache only counts when the
// file exists and holds a structure with an enabled list; ids are
// stringified so numeric entries survive.
func readPluginCache(path string) ([]string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	if !gjson.ValidBytes(data) {
		return nil, false
	}
	enabled := gjson.GetBytes(data, "enabled")
	if !enabled.IsArray() {
		return nil, false
	}
	ids := []string{}
	for _, v := range enabled.Array() {
		ids = append(ids, v.String())
	}
	return ids, true
}
