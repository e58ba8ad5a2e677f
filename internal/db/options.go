package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Option represents one row of the key/value options table.
type Option struct {
	Key      string
	Value    sql.NullString
	Autoload sql.NullBool
}

// HasOptionsTable reports whether the options table exists.
func (d *DB) HasOptionsTable(ctx context.Context) (bool, error) {
	return d.HasTable(ctx, TableOptions)
}

// ListOptions returns every row of the options table ordered by key
// ascending. No autoload filter is applied; exports carry full fidelity.
func (d *DB) ListOptions(ctx context.Context) ([]*Option, error) {
	rows, err := d.Query(ctx, fmt.Sprintf(
		`SELECT option_key, option_value, autoload FROM %s ORDER BY option_key ASC`, TableOptions,
	))
	if err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}
	defer rows.Close()

	var opts []*Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.Key, &o.Value, &o.Autoload); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		opts = append(opts, &o)
	}
	return opts, rows.Err()
}

// GetOption returns a single option by key. Returns nil, nil if not found
// or if the options table does not exist.
func (d *DB) GetOption(ctx context.Context, key string) (*Option, error) {
	ok, err := d.HasOptionsTable(ctx)
	if err != nil || !ok {
		return nil, err
	}

	var o Option
	err = d.QueryRow(ctx, fmt.Sprintf(
		`SELECT option_key, option_value, autoload FROM %s WHERE option_key = %s`,
		TableOptions, d.driver.Placeholder(1),
	), key).Scan(&o.Key, &o.Value, &o.Autoload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get option %s: %w", key, err)
	}
	return &o, nil
}
