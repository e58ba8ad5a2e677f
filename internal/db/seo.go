package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SeoMeta represents one row of per-page SEO metadata.
type SeoMeta struct {
	PageID             int64
	Title              sql.NullString
	Description        sql.NullString
	CanonicalURL       sql.NullString
	Robots             sql.NullString
	OgTitle            sql.NullString
	OgDescription      sql.NullString
	OgImage            sql.NullString
	TwitterTitle       sql.NullString
	TwitterDescription sql.NullString
	TwitterImage       sql.NullString
}

// HasSeoTable reports whether the SEO metadata table exists.
func (d *DB) HasSeoTable(ctx context.Context) (bool, error) {
	return d.HasTable(ctx, TableSeoMeta)
}

// ListSeoMeta returns all SEO metadata rows ordered by owning page id
// ascending.
func (d *DB) ListSeoMeta(ctx context.Context) ([]*SeoMeta, error) {
	rows, err := d.Query(ctx, fmt.Sprintf(`
		SELECT page_id, title, description, canonical_url, robots,
			og_title, og_description, og_image,
			twitter_title, twitter_description, twitter_image
		FROM %s ORDER BY page_id ASC
	`, TableSeoMeta))
	if err != nil {
		return nil, fmt.Errorf("list seo meta: %w", err)
	}
	defer rows.Close()

	var metas []*SeoMeta
	for rows.Next() {
		var m SeoMeta
		if err := rows.Scan(
			&m.PageID, &m.Title, &m.Description, &m.CanonicalURL, &m.Robots,
			&m.OgTitle, &m.OgDescription, &m.OgImage,
			&m.TwitterTitle, &m.TwitterDescription, &m.TwitterImage,
		); err != nil {
			return nil, fmt.Errorf("scan seo meta: %w", err)
		}
		metas = append(metas, &m)
	}
	return metas, rows.Err()
}
