package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// OptionalPageColumns are the schema-evolution columns a site's pages table
// may or may not define, in the order they are selected when present.
var OptionalPageColumns = []string{"status", "layout", "blocks"}

// Page represents one row of the pages table. Optional columns are only
// populated when they were part of the query.
type Page struct {
	ID        int64
	Title     sql.NullString
	Slug      sql.NullString
	CreatedAt sql.NullString
	UpdatedAt sql.NullString
	Status    sql.NullString
	Layout    sql.NullString
	Blocks    sql.NullString // raw JSON as stored
}

// HasPagesTable reports whether the pages table exists.
func (d *DB) HasPagesTable(ctx context.Context) (bool, error) {
	return d.HasTable(ctx, TablePages)
}

// PageColumns returns the set of optional page columns the current schema
// defines.
func (d *DB) PageColumns(ctx context.Context) (map[string]bool, error) {
	cols, err := d.TableColumns(ctx, TablePages)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(cols))
	for _, c := range cols {
		present[c] = true
	}
	set := make(map[string]bool, len(OptionalPageColumns))
	for _, c := range OptionalPageColumns {
		if present[c] {
			set[c] = true
		}
	}
	return set, nil
}

// ListPages returns all pages ordered by id ascending. Optional columns are
// selected only when named in include, so the query stays valid against
// older schemas.
func (d *DB) ListPages(ctx context.Context, include map[string]bool) ([]*Page, error) {
	sel := []string{"id", "title", "slug", "created_at", "updated_at"}
	var extra []string
	for _, c := range OptionalPageColumns {
		if include[c] {
			extra = append(extra, c)
		}
	}
	sel = append(sel, extra...)

	rows, err := d.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM %s ORDER BY id ASC`, strings.Join(sel, ", "), TablePages,
	))
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []*Page
	for rows.Next() {
		var p Page
		dest := []any{&p.ID, &p.Title, &p.Slug, &p.CreatedAt, &p.UpdatedAt}
		for _, c := range extra {
			switch c {
			case "status":
				dest = append(dest, &p.Status)
			case "layout":
				dest = append(dest, &p.Layout)
			case "blocks":
				dest = append(dest, &p.Blocks)
			}
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, &p)
	}
	return pages, rows.Err()
}
