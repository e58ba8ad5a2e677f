package export

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	tperrors "github.com/tentapress/tentapress/internal/errors"
)

// Assembler orchestrates the collectors and writes the archive. The
// pipeline is single-threaded and strictly linear: content, then the
// flag-gated domains, then the manifest, then finalize.
type Assembler struct {
	Pages   PageStore
	Options OptionStore
	Seo     SeoStore

	// Theme and Plugins are probed for their optional capabilities
	// (ActiveThemeProvider, LayoutLister, CachePathResolver,
	// EnabledLister); either may be nil.
	Theme   any
	Plugins any

	Staging *Staging
	Logger  *slog.Logger

	// Now overrides the clock in tests.
	Now func() time.Time
}

// Run executes one export. The only fatal outcome is a container that
// cannot be created; every per-domain failure degrades into the archive
// itself. On any error no partial archive file is left behind.
func (a *Assembler) Run(ctx context.Context, opts Options) (*ArchiveResult, error) {
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	// Init: staging dir, unique path, open container.
	if err := a.Staging.Ensure(); err != nil {
		return nil, tperrors.ErrExportInit(a.Staging.Dir, err)
	}
	path, filename := a.Staging.NewArchivePath(now())

	f, err := os.Create(path)
	if err != nil {
		return nil, tperrors.ErrExportInit(path, err)
	}
	zw := zip.NewWriter(f)

	finalized := false
	defer func() {
		if finalized {
			return
		}
		_ = zw.Close()
		_ = f.Close()
		_ = os.Remove(path)
	}()

	// Content is unconditional.
	pagesOut := CollectPages(ctx, a.Pages)
	pagesDoc := pagesOut.Doc
	if !pagesOut.OK {
		logger.Warn("content domain degraded", "reason", pagesOut.Reason)
		pagesDoc = degradedPagesDoc(pagesOut.Reason)
	}
	if err := writeJSONEntry(zw, EntryPages, pagesDoc); err != nil {
		return nil, err
	}

	includes := map[string]bool{
		DomainPages:    true,
		DomainSettings: opts.Settings,
		DomainTheme:    opts.Theme,
		DomainPlugins:  opts.Plugins,
		DomainSeo:      false,
	}

	if opts.Settings {
		out := CollectSettings(ctx, a.Options)
		doc := out.Doc
		if !out.OK {
			logger.Warn("settings domain degraded", "reason", out.Reason)
			doc = degradedSettingsDoc(out.Reason)
		}
		if err := writeJSONEntry(zw, EntrySettings, doc); err != nil {
			return nil, err
		}
	}

	if opts.Theme {
		out := CollectTheme(ctx, a.Theme)
		doc := out.Doc
		if !out.OK {
			logger.Warn("theme domain degraded", "reason", out.Reason)
			doc = degradedThemeDoc(out.Reason)
		}
		if err := writeJSONEntry(zw, EntryTheme, doc); err != nil {
			return nil, err
		}
	}

	if opts.Plugins {
		out := CollectPlugins(ctx, a.Plugins)
		if err := writeJSONEntry(zw, EntryPlugins, out.Doc); err != nil {
			return nil, err
		}
	}

	// SEO is doubly gated: the flag must be set and the collector must
	// actually produce a document. An absent metadata table means the
	// domain does not apply, so nothing is written.
	if opts.Seo {
		out := CollectSeo(ctx, a.Seo)
		if out.OK {
			if err := writeJSONEntry(zw, EntrySeo, out.Doc); err != nil {
				return nil, err
			}
			includes[DomainSeo] = true
		} else {
			logger.Info("seo metadata absent, omitting", "reason", out.Reason)
		}
	}

	// Manifest last: it reflects what was actually written.
	manifest := BuildManifest(now(), includes)
	if err := writeJSONEntry(zw, EntryManifest, manifest); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	finalized = true

	logger.Info("export complete", "archive", filename)
	return &ArchiveResult{Path: path, Filename: filename}, nil
}

// writeJSONEntry writes one pretty-printed JSON document into the archive.
// HTML escaping is off so slashes and non-ASCII text survive verbatim; the
// encoder supplies the trailing newline.
func writeJSONEntry(zw *zip.Writer, name string, doc any) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return nil
}
