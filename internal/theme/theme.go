// Package theme introspects the installed presentation layer.
package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tentapress/tentapress/internal/config"
	"github.com/tentapress/tentapress/internal/db"
)

// Registry resolves the active theme and its layouts. It implements the
// export package's ActiveThemeProvider and LayoutLister capabilities.
type Registry struct {
	db  *db.DB // may be nil when the primary store is unavailable
	cfg *config.Config
}

// NewRegistry creates a theme registry.
func NewRegistry(d *db.DB, cfg *config.Config) *Registry {
	return &Registry{db: d, cfg: cfg}
}

// ActiveThemeID returns the active theme identifier: the active_theme
// option when set, the configured default otherwise.
func (r *Registry) ActiveThemeID(ctx context.Context) (string, error) {
	if r.db != nil {
		o, err := r.db.GetOption(ctx, "active_theme")
		if err == nil && o != nil && o.Value.Valid && o.Value.String != "" {
			return o.Value.String, nil
		}
	}
	return r.cfg.Themes.Default, nil
}

// Layouts returns the active theme's named layouts, discovered from its
// layouts directory and sorted by name.
func (r *Registry) Layouts(ctx context.Context) ([]string, error) {
	id, err := r.ActiveThemeID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("no active theme")
	}

	root := filepath.Join(r.cfg.ThemesDir(), id)
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("theme directory %s: %w", root, err)
	}

	matches, err := doublestar.Glob(os.DirFS(root), "layouts/**/*.html")
	if err != nil {
		return nil, fmt.Errorf("scan layouts: %w", err)
	}

	layouts := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimPrefix(m, "layouts/")
		name = strings.TrimSuffix(name, ".html")
		layouts = append(layouts, name)
	}
	sort.Strings(layouts)
	return layouts, nil
}
