package admin

import (
	"context"
	"fmt"
)

// API is the whole REST surface the console uses.
type API interface {
	ProductAPI
	UserAPI
	OrderAPI
}

// Console groups the three views of one admin session.
type Console struct {
	Products *ProductsView
	Users    *UsersView
	Orders   *OrdersView
}

func NewConsole(api API) *Console {
	return &Console{
		Products: NewProductsView(api),
		Users:    NewUsersView(api),
		Orders:   NewOrdersView(api),
	}
}

// Analytics reloads all three collections and summarizes them.
func (c *Console) Analytics(ctx context.Context) (Summary, error) {
	if err := c.Products.Load(ctx); err != nil {
		return Summary{}, fmt.Errorf("products: %w", err)
	}
	if err := c.Users.Load(ctx); err != nil {
		return Summary{}, fmt.Errorf("users: %w", err)
	}
	if err := c.Orders.Load(ctx); err != nil {
		return Summary{}, fmt.Errorf("orders: %w", err)
	}
	return Summarize(c.Products.items, c.Users.items, c.Orders.items), nil
}
