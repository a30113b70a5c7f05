// Package wishlist keeps the per-user set of saved products.
package wishlist

import (
	"context"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/storage"
)

type Action interface{ wishlistAction() }

type Add struct{ Product models.Product }

type Remove struct{ ID models.ID }

type Clear struct{}

func (Add) wishlistAction()    {}
func (Remove) wishlistAction() {}
func (Clear) wishlistAction()  {}

// Reduce returns the wishlist after a. Adding a product whose id is already
// present is a no-op.
func Reduce(items []models.Product, a Action) []models.Product {
	switch a := a.(type) {
	case Add:
		for _, p := range items {
			if p.ID == a.Product.ID {
				return items
			}
		}
		out := make([]models.Product, len(items), len(items)+1)
		copy(out, items)
		return append(out, a.Product.Snapshot())
	case Remove:
		out := make([]models.Product, 0, len(items))
		for _, p := range items {
			if p.ID != a.ID {
				out = append(out, p)
			}
		}
		return out
	case Clear:
		return []models.Product{}
	}
	return items
}

type Container struct {
	store storage.Store
	ns    storage.Namespace
	items []models.Product
}

func Load(ctx context.Context, store storage.Store, ns storage.Namespace) (*Container, error) {
	c := &Container{store: store}
	if err := c.Bind(ctx, ns); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) Bind(ctx context.Context, ns storage.Namespace) error {
	items, _, err := storage.LoadJSON[[]models.Product](ctx, c.store, ns.WishlistKey())
	if err != nil {
		return err
	}
	if items == nil {
		items = []models.Product{}
	}
	c.ns = ns
	c.items = items
	return nil
}

// Dispatch applies a and writes the full list back, Clear included.
func (c *Container) Dispatch(ctx context.Context, a Action) error {
	c.items = Reduce(c.items, a)
	return storage.SaveJSON(ctx, c.store, c.ns.WishlistKey(), c.items)
}

func (c *Container) AddToWishlist(ctx context.Context, p models.Product) error {
	return c.Dispatch(ctx, Add{Product: p})
}

func (c *Container) RemoveFromWishlist(ctx context.Context, id models.ID) error {
	return c.Dispatch(ctx, Remove{ID: id})
}

func (c *Container) ClearWishlist(ctx context.Context) error {
	return c.Dispatch(ctx, Clear{})
}

func (c *Container) Contains(id models.ID) bool {
	_, ok := c.Lookup(id)
	return ok
}

func (c *Container) Lookup(id models.ID) (models.Product, bool) {
	for _, p := range c.items {
		if p.ID == id {
			return p.Snapshot(), true
		}
	}
	return models.Product{}, false
}

func (c *Container) Items() []models.Product {
	out := make([]models.Product, 0, len(c.items))
	for _, p := range c.items {
		out = append(out, p.Snapshot())
	}
	return out
}
