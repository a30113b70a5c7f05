package admin

import (
	"context"
	"slices"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/orders"
	"github.com/Hasna17806/ZYRA-sub000/internal/validate"
)

type OrderAPI interface {
	Orders(ctx context.Context) ([]models.Order, error)
	PatchOrder(ctx context.Context, id models.ID, delta map[string]any) (models.Order, error)
	DeleteOrder(ctx context.Context, id models.ID) error
}

type OrdersView struct {
	api   OrderAPI
	items []models.Order
}

func NewOrdersView(api OrderAPI) *OrdersView {
	return &OrdersView{api: api}
}

func (v *OrdersView) Load(ctx context.Context) error {
	list, err := v.api.Orders(ctx)
	if err != nil {
		return err
	}
	v.items = list
	return nil
}

func (v *OrdersView) Items() []models.Order { return slices.Clone(v.items) }

// UpdateStatus is the only change the admin makes to a placed order.
func (v *OrdersView) UpdateStatus(ctx context.Context, id models.ID, status orders.Status) error {
	if !status.Valid() {
		return &validate.Error{Field: "status", Message: "unknown status " + string(status)}
	}
	for i := range v.items {
		if v.items[i].ID == id {
			v.items[i].Status = string(status)
			break
		}
	}
	_, err := v.api.PatchOrder(ctx, id, map[string]any{"status": string(status)})
	return err
}

func (v *OrdersView) Delete(ctx context.Context, id models.ID) error {
	v.items = slices.DeleteFunc(v.items, func(o models.Order) bool { return o.ID == id })
	return v.api.DeleteOrder(ctx, id)
}
