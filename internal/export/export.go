// Package export assembles a portable snapshot of a tentapress
// installation as a single zip archive.
//
// The pipeline is strictly linear: the content document is always
// collected, the optional domains are gated by request flags, and the
// manifest is written last so it reflects what the archive actually
// contains. A domain whose backing storage is absent degrades to an
// error-annotated document instead of failing the export; only a container
// that cannot be opened aborts the run.
package export

// Manifest constants.
const (
	SchemaVersion = 1
	AppName       = "tentapress"
)

// Entry names at the container root.
const (
	EntryPages    = "pages.json"
	EntrySettings = "settings.json"
	EntryTheme    = "theme.json"
	EntryPlugins  = "plugins.json"
	EntrySeo      = "seo.json"
	EntryManifest = "manifest.json"
)

// Manifest include keys.
const (
	DomainPages    = "pages"
	DomainSettings = "settings"
	DomainTheme    = "theme"
	DomainPlugins  = "plugins"
	DomainSeo      = "seo"
)

// Options selects which optional domains an export includes. Content is
// always included and has no flag.
type Options struct {
	Settings bool `json:"includeSettings"`
	Theme    bool `json:"includeTheme"`
	Plugins  bool `json:"includePlugins"`
	Seo      bool `json:"includeSeo"`
}

// DefaultOptions returns the default export options: everything included.
func DefaultOptions() Options {
	return Options{Settings: true, Theme: true, Plugins: true, Seo: true}
}

// ArchiveResult describes a freshly created export archive. The caller
// owns the file and is expected to delete it after use.
type ArchiveResult struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// Outcome is the result of one collector run: a document, or an
// unavailability marker carrying the reason the domain produced nothing.
type Outcome struct {
	Doc    any    // nil when unavailable
	Reason string // set when unavailable
	OK     bool
}

// Collected wraps a successfully produced document.
func Collected(doc any) Outcome {
	return Outcome{Doc: doc, OK: true}
}

// Unavailable marks a domain that produced no document.
func Unavailable(reason string) Outcome {
	return Outcome{Reason: reason}
}
