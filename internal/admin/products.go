// Package admin backs the admin console: list, update and delete views over
// the REST collections. Each view mirrors the server list in memory and
// applies a change locally before sending it, without rolling back when the
// request fails.
package admin

import (
	"context"
	"slices"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/validate"
)

type ProductAPI interface {
	Products(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (models.Product, error)
	ReplaceProduct(ctx context.Context, id models.ID, p models.Product) (models.Product, error)
	PatchProduct(ctx context.Context, id models.ID, delta map[string]any) (models.Product, error)
	DeleteProduct(ctx context.Context, id models.ID) error
}

type ProductsView struct {
	api   ProductAPI
	items []models.Product
}

func NewProductsView(api ProductAPI) *ProductsView {
	return &ProductsView{api: api}
}

func (v *ProductsView) Load(ctx context.Context) error {
	ps, err := v.api.Products(ctx)
	if err != nil {
		return err
	}
	v.items = ps
	return nil
}

func (v *ProductsView) Items() []models.Product { return slices.Clone(v.items) }

// Create validates the form, then appends what the server created.
func (v *ProductsView) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if err := validate.Product(p); err != nil {
		return models.Product{}, err
	}
	created, err := v.api.CreateProduct(ctx, p)
	if err != nil {
		return models.Product{}, err
	}
	v.items = append(v.items, created)
	return created, nil
}

// Replace is the full edit form: the whole record is validated and sent.
func (v *ProductsView) Replace(ctx context.Context, id models.ID, p models.Product) error {
	p.ID = id
	if err := validate.Product(p); err != nil {
		return err
	}
	for i := range v.items {
		if v.items[i].ID == id {
			v.items[i] = p
			break
		}
	}
	_, err := v.api.ReplaceProduct(ctx, id, p)
	return err
}

func (v *ProductsView) Update(ctx context.Context, id models.ID, delta map[string]any) error {
	for i, p := range v.items {
		if p.ID != id {
			continue
		}
		next, err := applyDelta(p, delta)
		if err != nil {
			return err
		}
		if err := validate.Product(next); err != nil {
			return err
		}
		v.items[i] = next
		break
	}
	_, err := v.api.PatchProduct(ctx, id, delta)
	return err
}

func (v *ProductsView) Delete(ctx context.Context, id models.ID) error {
	v.items = slices.DeleteFunc(v.items, func(p models.Product) bool { return p.ID == id })
	return v.api.DeleteProduct(ctx, id)
}
