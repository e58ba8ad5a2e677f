package export

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tentapress/tentapress/internal/db"
)

// SeoStore is the narrow metadata-store capability the SEO collector
// consumes.
type SeoStore interface {
	HasSeoTable(ctx context.Context) (bool, error)
	ListSeoMeta(ctx context.Context) ([]*db.SeoMeta, error)
}

// CollectSeo exports per-page SEO metadata ordered by owning page id.
// Unlike the other collectors, Unavailable here means the domain does not
// apply at all: the assembler omits the document instead of writing an
// error-annotated placeholder.
func CollectSeo(ctx context.Context, store SeoStore) Outcome {
	if store == nil {
		return Unavailable("metadata store not available")
	}

	has, err := store.HasSeoTable(ctx)
	if err != nil {
		return Unavailable(fmt.Sprintf("seo table check failed: %v", err))
	}
	if !has {
		return Unavailable("seo table does not exist")
	}

	metas, err := store.ListSeoMeta(ctx)
	if err != nil {
		return Unavailable(fmt.Sprintf("seo query failed: %v", err))
	}

	items := make([]SeoItem, 0, len(metas))
	for _, m := range metas {
		items = append(items, SeoItem{
			PageID:             m.PageID,
			Title:              nullablePtr(m.Title),
			Description:        nullablePtr(m.Description),
			CanonicalURL:       nullablePtr(m.CanonicalURL),
			Robots:             nullablePtr(m.Robots),
			OgTitle:            nullablePtr(m.OgTitle),
			OgDescription:      nullablePtr(m.OgDescription),
			OgImage:            nullablePtr(m.OgImage),
			TwitterTitle:       nullablePtr(m.TwitterTitle),
			TwitterDescription: nullablePtr(m.TwitterDescription),
			TwitterImage:       nullablePtr(m.TwitterImage),
		})
	}

	return Collected(SeoDoc{Count: len(items), Items: items})
}

func nullablePtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
