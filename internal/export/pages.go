package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tentapress/tentapress/internal/db"
)

// PageStore is the narrow content-store capability the pages collector
// consumes.
type PageStore interface {
	HasPagesTable(ctx context.Context) (bool, error)
	PageColumns(ctx context.Context) (map[string]bool, error)
	ListPages(ctx context.Context, include map[string]bool) ([]*db.Page, error)
}

// CollectPages queries all content records ordered by id ascending.
// Schema-evolution fields (status, layout, blocks) are emitted only when
// the live schema defines them.
func CollectPages(ctx context.Context, store PageStore) Outcome {
	if store == nil {
		return Unavailable("content store not available")
	}

	has, err := store.HasPagesTable(ctx)
	if err != nil {
		return Unavailable(fmt.Sprintf("pages table check failed: %v", err))
	}
	if !has {
		return Unavailable("pages table does not exist")
	}

	cols, err := store.PageColumns(ctx)
	if err != nil {
		return Unavailable(fmt.Sprintf("pages schema inspection failed: %v", err))
	}

	pages, err := store.ListPages(ctx, cols)
	if err != nil {
		return Unavailable(fmt.Sprintf("pages query failed: %v", err))
	}

	items := make([]map[string]any, 0, len(pages))
	for _, p := range pages {
		item := map[string]any{
			"id":    p.ID,
			"title": p.Title.String,
			"slug":  p.Slug.String,
		}
		if p.CreatedAt.Valid {
			item["createdAt"] = p.CreatedAt.String
		}
		if p.UpdatedAt.Valid {
			item["updatedAt"] = p.UpdatedAt.String
		}
		if cols["status"] {
			item["status"] = p.Status.String
		}
		if cols["layout"] {
			item["layout"] = p.Layout.String
		}
		if cols["blocks"] {
			item["blocks"] = parseBlocks(p.Blocks.String)
		}
		items = append(items, item)
	}

	return Collected(PagesDoc{Count: len(items), Items: items})
}

// parseBlocks decodes a stored blocks value. Anything that is not a JSON
// list comes back as an empty list.
func parseBlocks(raw string) []any {
	var blocks []any
	if err := json.Unmarshal([]byte(raw), &blocks); err != nil || blocks == nil {
		return []any{}
	}
	return blocks
}
