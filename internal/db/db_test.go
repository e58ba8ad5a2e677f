package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "tentapress.db")

	d, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer d.Close()

	if d.Path() != dbPath {
		t.Errorf("Path() = %q, want %q", d.Path(), dbPath)
	}
}

func TestOpen_CreatesParentDir(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "nested", "tentapress.db")

	d, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	d.Close()
}

func TestHasTable(t *testing.T) {
	d := OpenTest(t)
	ctx := context.Background()

	ok, err := d.HasTable(ctx, TablePages)
	if err != nil {
		t.Fatalf("HasTable: %v", err)
	}
	if ok {
		t.Error("HasTable = true before table creation")
	}

	CreatePagesTable(t, d)

	ok, err = d.HasTable(ctx, TablePages)
	if err != nil {
		t.Fatalf("HasTable: %v", err)
	}
	if !ok {
		t.Error("HasTable = false after table creation")
	}
}

func TestTableColumns(t *testing.T) {
	d := OpenTest(t)
	ctx := context.Background()

	CreatePagesTable(t, d, "status", "layout")

	cols, err := d.TableColumns(ctx, TablePages)
	if err != nil {
		t.Fatalf("TableColumns: %v", err)
	}
	want := []string{"id", "title", "slug", "created_at", "updated_at", "status", "layout"}
	if len(cols) != len(want) {
		t.Fatalf("TableColumns = %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("column[%d] = %q, want %q", i, cols[i], want[i])
		}
	}
}

func TestTableColumns_MissingTable(t *testing.T) {
	d := OpenTest(t)

	cols, err := d.TableColumns(context.Background(), "tp_nope")
	if err != nil {
		t.Fatalf("TableColumns: %v", err)
	}
	if len(cols) != 0 {
		t.Errorf("TableColumns = %v, want empty", cols)
	}
}

func TestPageColumns(t *testing.T) {
	d := OpenTest(t)
	ctx := context.Background()

	CreatePagesTable(t, d, "blocks")

	set, err := d.PageColumns(ctx)
	if err != nil {
		t.Fatalf("PageColumns: %v", err)
	}
	if !set["blocks"] {
		t.Error("blocks should be present")
	}
	if set["status"] || set["layout"] {
		t.Errorf("unexpected optional columns: %v", set)
	}
}

func TestListPages(t *testing.T) {
	d := OpenTest(t)
	ctx := context.Background()

	CreatePagesTable(t, d, "status")
	mustExec(t, d, `INSERT INTO tp_pages (id, title, slug, created_at, updated_at, status)
		VALUES (2, 'About', 'about', '2026-01-02T00:00:00Z', '2026-01-03T00:00:00Z', 'published')`)
	mustExec(t, d, `INSERT INTO tp_pages (id, title, slug, created_at, updated_at, status)
		VALUES (1, 'Home', 'home', '2026-01-01T00:00:00Z', NULL, NULL)`)

	pages, err := d.ListPages(ctx, map[string]bool{"status": true})
	if err != nil {
		t.Fatalf("ListPages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("len = %d, want 2", len(pages))
	}
	if pages[0].ID != 1 || pages[1].ID != 2 {
		t.Errorf("pages not ordered by id: %d, %d", pages[0].ID, pages[1].ID)
	}
	if pages[0].Title.String != "Home" {
		t.Errorf("title = %q", pages[0].Title.String)
	}
	if pages[0].Status.Valid {
		t.Error("status should be null for page 1")
	}
	if pages[1].Status.String != "published" {
		t.Errorf("status = %q", pages[1].Status.String)
	}
}

func TestListOptions(t *testing.T) {
	d := OpenTest(t)
	ctx := context.Background()

	CreateOptionsTable(t, d)
	mustExec(t, d, `INSERT INTO tp_options (option_key, option_value, autoload) VALUES ('site_title', 'My Site', 1)`)
	mustExec(t, d, `INSERT INTO tp_options (option_key, option_value, autoload) VALUES ('active_theme', 'aurora', NULL)`)

	opts, err := d.ListOptions(ctx)
	if err != nil {
		t.Fatalf("ListOptions: %v", err)
	}
	if len(opts) != 2 {
		t.Fatalf("len = %d, want 2", len(opts))
	}
	// Ordered by key ascending
	if opts[0].Key != "active_theme" || opts[1].Key != "site_title" {
		t.Errorf("keys = %q, %q", opts[0].Key, opts[1].Key)
	}
	if opts[0].Autoload.Valid {
		t.Error("autoload should be null for active_theme")
	}
	if !opts[1].Autoload.Bool {
		t.Error("autoload should be true for site_title")
	}
}

func TestGetOption(t *testing.T) {
	d := OpenTest(t)
	ctx := context.Background()

	// No table yet: nil, nil
	o, err := d.GetOption(ctx, "active_theme")
	if err != nil || o != nil {
		t.Fatalf("GetOption without table = %v, %v", o, err)
	}

	CreateOptionsTable(t, d)
	mustExec(t, d, `INSERT INTO tp_options (option_key, option_value, autoload) VALUES ('active_theme', 'aurora', 1)`)

	o, err = d.GetOption(ctx, "active_theme")
	if err != nil {
		t.Fatalf("GetOption: %v", err)
	}
	if o == nil || o.Value.String != "aurora" {
		t.Fatalf("GetOption = %+v", o)
	}

	o, err = d.GetOption(ctx, "missing")
	if err != nil || o != nil {
		t.Fatalf("GetOption missing = %v, %v", o, err)
	}
}

func TestListEnabledPlugins(t *testing.T) {
	d := OpenTest(t)
	ctx := context.Background()

	CreatePluginsTable(t, d)
	mustExec(t, d, `INSERT INTO tp_plugins (slug, enabled) VALUES ('zeta', 1)`)
	mustExec(t, d, `INSERT INTO tp_plugins (slug, enabled) VALUES ('alpha', 1)`)
	mustExec(t, d, `INSERT INTO tp_plugins (slug, enabled) VALUES ('gamma', 0)`)

	slugs, err := d.ListEnabledPlugins(ctx)
	if err != nil {
		t.Fatalf("ListEnabledPlugins: %v", err)
	}
	if len(slugs) != 2 || slugs[0] != "alpha" || slugs[1] != "zeta" {
		t.Errorf("slugs = %v", slugs)
	}
}

func TestListSeoMeta(t *testing.T) {
	d := OpenTest(t)
	ctx := context.Background()

	CreateSeoTable(t, d)
	mustExec(t, d, `INSERT INTO tp_seo_meta (page_id, title, robots) VALUES (5, 'About us', 'noindex')`)
	mustExec(t, d, `INSERT INTO tp_seo_meta (page_id, og_image) VALUES (1, 'https://cdn.example/og.png')`)

	metas, err := d.ListSeoMeta(ctx)
	if err != nil {
		t.Fatalf("ListSeoMeta: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("len = %d, want 2", len(metas))
	}
	if metas[0].PageID != 1 || metas[1].PageID != 5 {
		t.Errorf("not ordered by page_id: %d, %d", metas[0].PageID, metas[1].PageID)
	}
	if metas[0].Title.Valid {
		t.Error("title should be null for page 1")
	}
	if metas[1].Robots.String != "noindex" {
		t.Errorf("robots = %q", metas[1].Robots.String)
	}
}
