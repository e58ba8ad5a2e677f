// Package cli implements the tentapress command-line interface.
// This file contains shared helper functions used across multiple commands.
package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tentapress/tentapress/internal/config"
	"github.com/tentapress/tentapress/internal/db"
	"github.com/tentapress/tentapress/internal/db/driver"
	"github.com/tentapress/tentapress/internal/export"
	"github.com/tentapress/tentapress/internal/plugin"
	"github.com/tentapress/tentapress/internal/theme"
)

// buildAssembler wires the export pipeline from configuration. The
// returned cleanup closes the database connection. A database that cannot
// be opened leaves the stores nil, so the export degrades instead of
// failing.
func buildAssembler(cfg *config.Config) (*export.Assembler, func()) {
	var store *db.DB
	dialect, err := driver.ParseDialect(cfg.Database.Dialect)
	if err == nil {
		store, err = db.OpenWithDialect(cfg.DSN(), dialect)
	}
	if err != nil {
		slog.Warn("database unavailable, export will degrade", "error", err)
		store = nil
	}

	assembler := &export.Assembler{
		Theme:   theme.NewRegistry(store, cfg),
		Plugins: plugin.NewRegistry(cfg, store),
		Staging: export.NewStaging(filepath.Join(cfg.TempDir, "exports")),
	}
	if store != nil {
		assembler.Pages = store
		assembler.Options = store
		assembler.Seo = store
	}

	cleanup := func() {
		if store != nil {
			_ = store.Close()
		}
	}
	return assembler, cleanup
}

// moveFile renames src to dst, copying across filesystems when rename is
// not possible.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
