package export

// PagesDoc is the exported content document. Items are maps because the
// emitted fields track the live schema: status, layout and blocks appear
// only when the pages table currently defines them.
type PagesDoc struct {
	Count int              `json:"count"`
	Items []map[string]any `json:"items"`
	Error string           `json:"error,omitempty"`
}

func degradedPagesDoc(reason string) PagesDoc {
	return PagesDoc{Items: []map[string]any{}, Error: reason}
}

// SettingItem is one exported configuration row.
type SettingItem struct {
	Key      string  `json:"key"`
	Value    *string `json:"value,omitempty"`
	Autoload bool    `json:"autoload"`
}

// SettingsDoc is the exported configuration document.
type SettingsDoc struct {
	Count int           `json:"count"`
	Items []SettingItem `json:"items"`
	Error string        `json:"error,omitempty"`
}

func degradedSettingsDoc(reason string) SettingsDoc {
	return SettingsDoc{Items: []SettingItem{}, Error: reason}
}

// ThemeDoc is the exported presentation document. Either field may be
// empty when the corresponding capability is not available.
type ThemeDoc struct {
	ActiveThemeID *string  `json:"activeThemeId"`
	Layouts       []string `json:"layouts"`
	Error         string   `json:"error,omitempty"`
}

func degradedThemeDoc(reason string) ThemeDoc {
	return ThemeDoc{Layouts: []string{}, Error: reason}
}

// PluginsDoc is the exported extension registry document. CachePath is
// reported even when no plugins were found, for diagnostic traceability.
type PluginsDoc struct {
	Enabled   []string `json:"enabled"`
	CachePath *string  `json:"cachePath"`
}

// SeoItem is one exported per-page metadata row. Unset fields are omitted.
type SeoItem struct {
	PageID             int64   `json:"pageId"`
	Title              *string `json:"title,omitempty"`
	Description        *string `json:"description,omitempty"`
	CanonicalURL       *string `json:"canonicalUrl,omitempty"`
	Robots             *string `json:"robots,omitempty"`
	OgTitle            *string `json:"ogTitle,omitempty"`
	OgDescription      *string `json:"ogDescription,omitempty"`
	OgImage            *string `json:"ogImage,omitempty"`
	TwitterTitle       *string `json:"twitterTitle,omitempty"`
	TwitterDescription *string `json:"twitterDescription,omitempty"`
	TwitterImage       *string `json:"twitterImage,omitempty"`
}

// SeoDoc is the exported per-page metadata document.
type SeoDoc struct {
	Count int       `json:"count"`
	Items []SeoItem `json:"items"`
}

// Manifest records what an archive actually contains.
type Manifest struct {
	SchemaVersion  int             `json:"schemaVersion"`
	GeneratedAtUtc string          `json:"generatedAtUtc"`
	AppName        string          `json:"appName"`
	Includes       map[string]bool `json:"includes"`
}
