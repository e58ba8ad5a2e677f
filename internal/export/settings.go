package export

import (
	"context"
	"fmt"

	"github.com/tentapress/tentapress/internal/db"
)

// OptionStore is the narrow configuration-store capability the settings
// collector consumes.
type OptionStore interface {
	HasOptionsTable(ctx context.Context) (bool, error)
	ListOptions(ctx context.Context) ([]*db.Option, error)
}

// CollectSettings reads every row of the key/value configuration store,
// ordered by key ascending. Rows are not filtered by autoload status; a
// portable snapshot carries full fidelity.
func CollectSettings(ctx context.Context, store OptionStore) Outcome {
	if store == nil {
		return Unavailable("configuration store not available")
	}

	has, err := store.HasOptionsTable(ctx)
	if err != nil {
		return Unavailable(fmt.Sprintf("options table check failed: %v", err))
	}
	if !has {
		return Unavailable("options table does not exist")
	}

	opts, err := store.ListOptions(ctx)
	if err != nil {
		return Unavailable(fmt.Sprintf("options query failed: %v", err))
	}

	items := make([]SettingItem, 0, len(opts))
	for _, o := range opts {
		item := SettingItem{Key: o.Key, Autoload: true}
		if o.Value.Valid {
			v := o.Value.String
			item.Value = &v
		}
		if o.Autoload.Valid {
			item.Autoload = o.Autoload.Bool
		}
		items = append(items, item)
	}

	return Collected(SettingsDoc{Count: len(items), Items: items})
}
