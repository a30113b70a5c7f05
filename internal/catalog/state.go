// Package catalog holds the product list a storefront session browses and
// the search / category / sort pipeline over it.
package catalog

import (
	"context"
	"fmt"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
)

// Source is where the full catalog comes from.
type Source interface {
	Products(ctx context.Context) ([]models.Product, error)
}

type State struct {
	src       Source
	master    []models.Product
	displayed []models.Product
	filters   Filters
	loaded    bool
}

func NewState(src Source) *State {
	return &State{src: src, filters: DefaultFilters()}
}

// FetchAll loads the whole catalog. Master and displayed both become the
// fetched list, whatever filters were set before.
func (s *State) FetchAll(ctx context.Context) error {
	ps, err := s.src.Products(ctx)
	if err != nil {
		return fmt.Errorf("fetch products: %w", err)
	}
	s.master = ps
	s.displayed = append([]models.Product(nil), ps...)
	s.loaded = true
	return nil
}

// Loaded reports whether FetchAll has succeeded at least once.
func (s *State) Loaded() bool { return s.loaded }

func (s *State) SetSearch(text string) {
	s.filters.Search = text
	s.derive()
}

func (s *State) SetCategory(name string) {
	s.filters.Category = name
	s.derive()
}

func (s *State) SetSort(mode SortMode) {
	s.filters.Sort = mode
	s.derive()
}

func (s *State) derive() {
	s.displayed = Apply(s.master, s.filters)
}

func (s *State) Filters() Filters { return s.filters }

func (s *State) Displayed() []models.Product {
	return append([]models.Product(nil), s.displayed...)
}

// Categories lists distinct categories in first-seen order.
func (s *State) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.master {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

func (s *State) Lookup(id models.ID) (models.Product, bool) {
	for _, p := range s.master {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
