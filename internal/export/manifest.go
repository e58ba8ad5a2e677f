package export

import "time"

// BuildManifest assembles the manifest for an archive. includes must
// describe what was actually written: pages is always true, seo is true
// only when the seo document was produced, and every other key mirrors its
// requested flag.
func BuildManifest(now time.Time, includes map[string]bool) Manifest {
	return Manifest{
		SchemaVersion:  SchemaVersion,
		GeneratedAtUtc: now.UTC().Format(time.RFC3339),
		AppName:        AppName,
		Includes:       includes,
	}
}
