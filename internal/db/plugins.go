package db

import (
	"context"
	"fmt"

	"github.com/tentapress/tentapress/internal/db/driver"
)

// HasPluginsTable reports whether the plugins table exists.
func (d *DB) HasPluginsTable(ctx context.Context) (bool, error) {
	return d.HasTable(ctx, TablePlugins)
}

// ListEnabledPlugins returns the slugs of enabled plugins ordered by slug
// ascending.
func (d *DB) ListEnabledPlugins(ctx context.Context) ([]string, error) {
	rows, err := d.Query(ctx, fmt.Sprintf(
		`SELECT slug FROM %s WHERE enabled = %s ORDER BY slug ASC`,
		TablePlugins, d.boolLiteral(true),
	))
	if err != nil {
		return nil, fmt.Errorf("list enabled plugins: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan plugin slug: %w", err)
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

// boolLiteral renders a boolean constant for the active dialect. SQLite
// stores booleans as integers.
func (d *DB) boolLiteral(v bool) string {
	if d.Dialect() == driver.DialectPostgres {
		if v {
			return "TRUE"
		}
		return "FALSE"
	}
	if v {
		return "1"
	}
	return "0"
}
