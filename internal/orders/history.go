// Package orders keeps the append-only order history of each user and
// announces newly placed orders.
package orders

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/Hasna17806/ZYRA-sub000/internal/cart"
	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/storage"
)

// DateLayout matches a browser's Date.toISOString.
const DateLayout = "2006-01-02T15:04:05.000Z"

// ByUser is the value stored under storage.KeyOrdersByUser: user email to
// that user's orders, oldest first.
type ByUser map[string][]models.Order

// History reads and appends to the global order map.
type History struct {
	store storage.Store
	now   func() time.Time
}

func NewHistory(store storage.Store) *History {
	return &History{store: store, now: time.Now}
}

// WithClock replaces the clock used for order ids and dates.
func (h *History) WithClock(now func() time.Time) *History {
	h.now = now
	return h
}

func (h *History) load(ctx context.Context) (ByUser, error) {
	m, _, err := storage.LoadJSON[ByUser](ctx, h.store, storage.KeyOrdersByUser)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = ByUser{}
	}
	return m, nil
}

// NewOrder builds an order from a snapshot of items. The total is fixed here
// and never recomputed from the catalog.
func NewOrder(at time.Time, user models.User, items []models.CartEntry, shipping models.ShippingInfo, payment string) models.Order {
	snap := models.SnapshotEntries(items)
	return models.Order{
		ID:              models.ID(strconv.FormatInt(at.UnixMilli(), 10)),
		UserID:          user.ID,
		Items:           snap,
		Total:           cart.Total(snap),
		ShippingAddress: shipping,
		PaymentMethod:   payment,
		Status:          string(StatusPlaced),
		Date:            at.UTC().Format(DateLayout),
	}
}

// Append returns m with o appended under email. m is not modified.
func Append(m ByUser, email string, o models.Order) ByUser {
	out := make(ByUser, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	list := make([]models.Order, len(m[email]), len(m[email])+1)
	copy(list, m[email])
	out[email] = append(list, o)
	return out
}

func (h *History) PlaceOrder(ctx context.Context, user models.User, items []models.CartEntry, shipping models.ShippingInfo, payment string) (models.Order, error) {
	m, err := h.load(ctx)
	if err != nil {
		return models.Order{}, err
	}
	o := NewOrder(h.now(), user, items, shipping, payment)
	if err := storage.SaveJSON(ctx, h.store, storage.KeyOrdersByUser, Append(m, user.Email, o)); err != nil {
		return models.Order{}, fmt.Errorf("place order: %w", err)
	}
	return o, nil
}

// ClearOrders drops the whole order list stored under key (the user's email).
func (h *History) ClearOrders(ctx context.Context, key string) error {
	m, err := h.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return storage.SaveJSON(ctx, h.store, storage.KeyOrdersByUser, m)
}

// List returns the user's orders, most recent first.
func (h *History) List(ctx context.Context, email string) ([]models.Order, error) {
	m, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(m[email])
	slices.Reverse(out)
	if out == nil {
		out = []models.Order{}
	}
	return out, nil
}

// Page slices List. page is 1-based; total is the full count.
func (h *History) Page(ctx context.Context, email string, page, size int) (items []models.Order, total int, err error) {
	all, err := h.List(ctx, email)
	if err != nil {
		return nil, 0, err
	}
	total = len(all)
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return all, total, nil
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	if page > pages {
		return []models.Order{}, total, nil
	}
	// page <= pages keeps the product below total
	start := (page - 1) * size
	end := min(start+size, total)
	return all[start:end], total, nil
}
