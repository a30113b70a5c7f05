package cart

import (
	"context"
	"fmt"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/storage"
)

type Container struct {
	store storage.Store
	ns    storage.Namespace
	items []models.CartEntry
}

// Load binds a container to ns and reads whatever cart is stored there.
func Load(ctx context.Context, store storage.Store, ns storage.Namespace) (*Container, error) {
	c := &Container{store: store}
	if err := c.Bind(ctx, ns); err != nil {
		return nil, err
	}
	return c, nil
}

// Bind switches to another user's namespace and reloads from it. Absent or
// unreadable data gives an empty cart.
func (c *Container) Bind(ctx context.Context, ns storage.Namespace) error {
	items, _, err := storage.LoadJSON[[]models.CartEntry](ctx, c.store, ns.CartKey())
	if err != nil {
		return err
	}
	if items == nil {
		items = []models.CartEntry{}
	}
	c.ns = ns
	c.items = items
	return nil
}

// Dispatch applies a and then persists. The in-memory cart moves forward even
// when the write fails; the write error is returned.
func (c *Container) Dispatch(ctx context.Context, a Action) error {
	c.items = Reduce(c.items, a)
	return c.persist(ctx, a)
}

func (c *Container) persist(ctx context.Context, a Action) error {
	key := c.ns.CartKey()
	if _, ok := a.(Clear); ok {
		if err := c.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
		return nil
	}
	return storage.SaveJSON(ctx, c.store, key, c.items)
}

func (c *Container) AddToCart(ctx context.Context, p models.Product, qty int) error {
	return c.Dispatch(ctx, Add{Product: p, Quantity: qty})
}

func (c *Container) RemoveFromCart(ctx context.Context, id models.ID) error {
	return c.Dispatch(ctx, Remove{ID: id})
}

// UpdateQuantity is the numeric-input path: the value is written as is,
// including zero or negative values.
func (c *Container) UpdateQuantity(ctx context.Context, id models.ID, qty int) error {
	return c.Dispatch(ctx, UpdateQuantity{ID: id, Quantity: qty})
}

// Increment is the "+" button.
func (c *Container) Increment(ctx context.Context, id models.ID) error {
	e, ok := c.entry(id)
	if !ok {
		return nil
	}
	return c.UpdateQuantity(ctx, id, e.Quantity+1)
}

// Decrement is the "-" button; it never goes below 1.
func (c *Container) Decrement(ctx context.Context, id models.ID) error {
	e, ok := c.entry(id)
	if !ok {
		return nil
	}
	return c.UpdateQuantity(ctx, id, max(e.Quantity-1, 1))
}

func (c *Container) ClearCart(ctx context.Context) error {
	return c.Dispatch(ctx, Clear{})
}

func (c *Container) entry(id models.ID) (models.CartEntry, bool) {
	for _, it := range c.items {
		if it.Product.ID == id {
			return it, true
		}
	}
	return models.CartEntry{}, false
}

func (c *Container) Namespace() storage.Namespace { return c.ns }

func (c *Container) Items() []models.CartEntry { return models.SnapshotEntries(c.items) }

func (c *Container) Total() float64 { return Total(c.items) }

func (c *Container) Count() int { return Count(c.items) }
