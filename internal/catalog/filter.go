package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
)

type SortMode string

const (
	SortNone    SortMode = "none"
	SortLowHigh SortMode = "low-high"
	SortHighLow SortMode = "high-low"
)

// CategoryAll disables the category stage.
const CategoryAll = "all"

type Filters struct {
	Search   string   `json:"search"`
	Category string   `json:"category"`
	Sort     SortMode `json:"sort"`
}

func DefaultFilters() Filters {
	return Filters{Category: CategoryAll, Sort: SortNone}
}

// Apply derives the displayed list from master. Stages always run in the
// same order: search, then category, then sort. master is never modified.
func Apply(master []models.Product, f Filters) []models.Product {
	out := make([]models.Product, 0, len(master))
	needle := strings.ToLower(f.Search)
	for _, p := range master {
		if f.Search != "" && !strings.Contains(strings.ToLower(p.DisplayTitle()), needle) {
			continue
		}
		if f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortLowHigh:
		slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortHighLow:
		slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) })
	}
	return out
}
