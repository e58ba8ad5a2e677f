// Package plugin exposes the extension registry to the exporter.
package plugin

import (
	"context"
	"fmt"

	"github.com/tentapress/tentapress/internal/config"
	"github.com/tentapress/tentapress/internal/db"
)

// Registry resolves the plugin cache location and lists enabled plugins
// from the live registry table. It implements the export package's
// CachePathResolver and EnabledLister capabilities.
type Registry struct {
	cachePath string
	db        *db.DB // may be nil when the primary store is unavailable
}

// NewRegistry creates a plugin registry.
func NewRegistry(cfg *config.Config, d *db.DB) *Registry {
	return &Registry{cachePath: cfg.PluginCachePath(), db: d}
}

// CachePath returns the well-known precomputed cache file location.
func (r *Registry) CachePath() string {
	return r.cachePath
}

// EnabledPlugins lists enabled plugin slugs from the live registry.
func (r *Registry) EnabledPlugins(ctx context.Context) ([]string, error) {
	if r.db == nil {
		return nil, fmt.Errorf("plugin registry store not available")
	}
	has, err := r.db.HasPluginsTable(ctx)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, fmt.Errorf("plugins table does not exist")
	}
	return r.db.ListEnabledPlugins(ctx)
}
