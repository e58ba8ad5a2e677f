package export

import "context"

// ActiveThemeProvider is the optional capability of reporting the active
// presentation layer's identifier.
type ActiveThemeProvider interface {
	ActiveThemeID(ctx context.Context) (string, error)
}

// LayoutLister is the optional capability of listing the active theme's
// named layouts.
type LayoutLister interface {
	Layouts(ctx context.Context) ([]string, error)
}

// CollectTheme introspects the presentation subsystem through whichever of
// the optional capabilities it implements. A subsystem missing either
// capability simply leaves the corresponding field empty; this collector
// never fails.
func CollectTheme(ctx context.Context, subsystem any) Outcome {
	if subsystem == nil {
		return Unavailable("theme subsystem not available")
	}

	doc := ThemeDoc{Layouts: []string{}}

	if p, ok := subsystem.(ActiveThemeProvider); ok {
		if id, err := p.ActiveThemeID(ctx); err == nil && id != "" {
			doc.ActiveThemeID = &id
		}
	}

	if l, ok := subsystem.(LayoutLister); ok {
		if layouts, err := l.Layouts(ctx); err == nil && layouts != nil {
			doc.Layouts = layouts
		}
	}

	return Collected(doc)
}
