package db

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// OpenTest opens an in-memory database and closes it when the test ends.
func OpenTest(t testing.TB) *DB {
	t.Helper()
	d, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// CreatePagesTable creates the pages table. Optional schema-evolution
// columns (status, layout, blocks) are added only when named.
func CreatePagesTable(t testing.TB, d *DB, optional ...string) {
	t.Helper()
	cols := []string{
		"id INTEGER PRIMARY KEY",
		"title TEXT",
		"slug TEXT",
		"created_at TEXT",
		"updated_at TEXT",
	}
	for _, c := range optional {
		cols = append(cols, c+" TEXT")
	}
	mustExec(t, d, fmt.Sprintf("CREATE TABLE %s (%s)", TablePages, strings.Join(cols, ", ")))
}

// CreateOptionsTable creates the key/value options table.
func CreateOptionsTable(t testing.TB, d *DB) {
	t.Helper()
	mustExec(t, d, fmt.Sprintf(`CREATE TABLE %s (
		option_key TEXT PRIMARY KEY,
		option_value TEXT,
		autoload INTEGER
	)`, TableOptions))
}

// CreatePluginsTable creates the plugins registry table.
func CreatePluginsTable(t testing.TB, d *DB) {
	t.Helper()
	mustExec(t, d, fmt.Sprintf(`CREATE TABLE %s (
		slug TEXT PRIMARY KEY,
		enabled INTEGER NOT NULL DEFAULT 0
	)`, TablePlugins))
}

// CreateSeoTable creates the per-page SEO metadata table.
func CreateSeoTable(t testing.TB, d *DB) {
	t.Helper()
	mustExec(t, d, fmt.Sprintf(`CREATE TABLE %s (
		page_id INTEGER PRIMARY KEY,
		title TEXT,
		description TEXT,
		canonical_url TEXT,
		robots TEXT,
		og_title TEXT,
		og_description TEXT,
		og_image TEXT,
		twitter_title TEXT,
		twitter_description TEXT,
		twitter_image TEXT
	)`, TableSeoMeta))
}

func mustExec(t testing.TB, d *DB, query string, args ...any) {
	t.Helper()
	if _, err := d.Exec(context.Background(), query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}
