// Package cart is the per-user shopping cart: a pure reducer over cart
// entries and a container that persists the result after every transition.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
)

type Action interface{ cartAction() }

// Add merges into an existing entry for the same product id by summing
// quantities, otherwise appends a snapshot of the product.
type Add struct {
	Product  models.Product
	Quantity int
}

type Remove struct{ ID models.ID }

// UpdateQuantity writes Quantity as given. No bounds are enforced here.
type UpdateQuantity struct {
	ID       models.ID
	Quantity int
}

type Clear struct{}

func (Add) cartAction()            {}
func (Remove) cartAction()         {}
func (UpdateQuantity) cartAction() {}
func (Clear) cartAction()          {}

// Reduce returns the cart after a. The input slice is not modified.
func Reduce(items []models.CartEntry, a Action) []models.CartEntry {
	switch a := a.(type) {
	case Add:
		out := clone(items)
		for i := range out {
			if out[i].Product.ID == a.Product.ID {
				out[i].Quantity += a.Quantity
				return out
			}
		}
		return append(out, models.CartEntry{Product: a.Product.Snapshot(), Quantity: a.Quantity})
	case Remove:
		out := make([]models.CartEntry, 0, len(items))
		for _, it := range items {
			if it.Product.ID != a.ID {
				out = append(out, it)
			}
		}
		return out
	case UpdateQuantity:
		out := clone(items)
		for i := range out {
			if out[i].Product.ID == a.ID {
				out[i].Quantity = a.Quantity
			}
		}
		return out
	case Clear:
		return []models.CartEntry{}
	}
	return items
}

func clone(items []models.CartEntry) []models.CartEntry {
	out := make([]models.CartEntry, len(items), len(items)+1)
	copy(out, items)
	return out
}

// Total is the sum of price times quantity over items.
func Total(items []models.CartEntry) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum.InexactFloat64()
}

// Count is the number of units in the cart, as shown on the cart badge.
func Count(items []models.CartEntry) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
