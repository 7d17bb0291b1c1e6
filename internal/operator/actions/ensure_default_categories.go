package actions

import (
	"context"
	"slices"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-forecast/internal/storage"
	"github.com/carson-networks/budget-forecast/internal/storage/sqlconfig"
)

// DefaultCategoryNames is the category set every new user starts with.
var DefaultCategoryNames = []string{
	"Food",
	"Transport",
	"Gym",
	"Shopping",
	"Bills",
	"Entertainment",
	"Health",
	"Other",
}

// EnsureDefaultCategories creates whichever default categories the user is
// missing. Categories holds all of the user's categories afterwards, by name.
type EnsureDefaultCategories struct {
	UserID uuid.UUID

	Categories []*sqlconfig.Category
	IAction
}

func (e *EnsureDefaultCategories) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Categories.ListByUser(ctx, e.UserID)
	if err != nil {
		return err
	}

	have := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		have[c.Name] = struct{}{}
	}

	var missing []string
	for _, name := range DefaultCategoryNames {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}

	categories := slices.Clone(existing)
	if len(missing) > 0 {
		inserted, err := writer.Categories.InsertMany(ctx, e.UserID, missing)
		if err != nil {
			return err
		}
		categories = append(categories, inserted...)
	}

	slices.SortFunc(categories, func(a, b *sqlconfig.Category) int {
		return strings.Compare(a.Name, b.Name)
	})
	e.Categories = categories
	return nil
}
