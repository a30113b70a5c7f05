package restapi

import (
	"context"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
)

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.List(ctx, CollectionProducts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var out models.Product
	err := c.Create(ctx, CollectionProducts, p, &out)
	return out, err
}

func (c *Client) ReplaceProduct(ctx context.Context, id models.ID, p models.Product) (models.Product, error) {
	var out models.Product
	err := c.Replace(ctx, CollectionProducts, id.String(), p, &out)
	return out, err
}

func (c *Client) PatchProduct(ctx context.Context, id models.ID, delta map[string]any) (models.Product, error) {
	var out models.Product
	err := c.Patch(ctx, CollectionProducts, id.String(), delta, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, id models.ID) error {
	return c.Delete(ctx, CollectionProducts, id.String())
}

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.List(ctx, CollectionUsers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	var out models.User
	err := c.Create(ctx, CollectionUsers, u, &out)
	return out, err
}

func (c *Client) PatchUser(ctx context.Context, id models.ID, delta map[string]any) (models.User, error) {
	var out models.User
	err := c.Patch(ctx, CollectionUsers, id.String(), delta, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id models.ID) error {
	return c.Delete(ctx, CollectionUsers, id.String())
}

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.List(ctx, CollectionOrders, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	var out models.Order
	err := c.Create(ctx, CollectionOrders, o, &out)
	return out, err
}

func (c *Client) PatchOrder(ctx context.Context, id models.ID, delta map[string]any) (models.Order, error) {
	var out models.Order
	err := c.Patch(ctx, CollectionOrders, id.String(), delta, &out)
	return out, err
}

func (c *Client) DeleteOrder(ctx context.Context, id models.ID) error {
	return c.Delete(ctx, CollectionOrders, id.String())
}
