package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/orders"
	"github.com/Hasna17806/ZYRA-sub000/internal/restapi"
	"github.com/Hasna17806/ZYRA-sub000/internal/restapi/restapitest"
	"github.com/Hasna17806/ZYRA-sub000/internal/validate"
)

func intp(n int) *int { return &n }

func console(t *testing.T) (*Console, *restapitest.Server) {
	t.Helper()
	srv := restapitest.New(t)
	srv.Seed(restapi.CollectionProducts,
		map[string]any{"id": 1, "title": "Red Shirt", "price": 30, "category": "men", "image": "s.png", "stock": 2},
		map[string]any{"id": 2, "title": "Blue Hat", "price": 10, "category": "men", "image": "h.png", "stock": 40},
	)
	srv.Seed(restapi.CollectionUsers,
		map[string]any{"id": 1, "name": "Root", "email": "root@zyra.io", "password": "Admin123", "role": "admin"},
		map[string]any{"id": 7, "name": "Ana", "email": "ana@zyra.io", "password": "Secret123", "role": "user"},
	)
	srv.Seed(restapi.CollectionOrders,
		map[string]any{"id": "100", "userId": 7, "total": 70, "status": "Processing"},
		map[string]any{"id": "101", "userId": 7, "total": 20.5, "status": "Delivered"},
		map[string]any{"id": "102", "userId": 7, "total": 500, "status": "Cancelled"},
	)
	return NewConsole(restapi.New(srv.URL)), srv
}

func TestProductUpdateIsOptimistic(t *testing.T) {
	ctx := context.Background()
	c, srv := console(t)
	require.NoError(t, c.Products.Load(ctx))

	require.NoError(t, c.Products.Update(ctx, "1", map[string]any{"price": 25.0}))
	assert.Equal(t, 25.0, c.Products.Items()[0].Price)
	assert.EqualValues(t, 25, srv.Records(restapi.CollectionProducts)[0]["price"])

	err := c.Products.Update(ctx, "1", map[string]any{"price": 0})
	assert.ErrorIs(t, err, validate.ErrValidation)
	assert.Equal(t, 25.0, c.Products.Items()[0].Price)

	// the request fails after the local change and nothing is rolled back
	srv.Close()
	err = c.Products.Update(ctx, "2", map[string]any{"title": "Green Hat"})
	assert.ErrorIs(t, err, restapi.ErrRequestFailed)
	assert.Equal(t, "Green Hat", c.Products.Items()[1].Title)
}

func TestProductCreateAndDelete(t *testing.T) {
	ctx := context.Background()
	c, srv := console(t)
	require.NoError(t, c.Products.Load(ctx))

	_, err := c.Products.Create(ctx, models.Product{Title: "Scarf", Price: 12})
	assert.ErrorIs(t, err, validate.ErrValidation)

	p, err := c.Products.Create(ctx, models.Product{Title: "Scarf", Price: 12, Category: "women", Image: "x.png", Stock: intp(3)})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Len(t, c.Products.Items(), 3)

	require.NoError(t, c.Products.Delete(ctx, p.ID))
	assert.Len(t, c.Products.Items(), 2)
	assert.Len(t, srv.Records(restapi.CollectionProducts), 2)
}

func TestProductReplace(t *testing.T) {
	ctx := context.Background()
	c, srv := console(t)
	require.NoError(t, c.Products.Load(ctx))

	err := c.Products.Replace(ctx, "2", models.Product{Title: "Blue Cap", Price: 12})
	assert.ErrorIs(t, err, validate.ErrValidation)
	assert.Equal(t, "Blue Hat", c.Products.Items()[1].Title)

	next := models.Product{Title: "Blue Cap", Price: 12, Category: "men", Image: "c.png"}
	require.NoError(t, c.Products.Replace(ctx, "2", next))
	assert.Equal(t, "Blue Cap", c.Products.Items()[1].Title)
	assert.Equal(t, models.ID("2"), c.Products.Items()[1].ID)

	rec := srv.Records(restapi.CollectionProducts)[1]
	assert.Equal(t, "Blue Cap", rec["title"])
	assert.NotContains(t, rec, "stock", "a replace drops fields the form did not send")
}

func TestUsersView(t *testing.T) {
	ctx := context.Background()
	c, srv := console(t)
	require.NoError(t, c.Users.Load(ctx))

	for _, u := range c.Users.Items() {
		assert.Empty(t, u.Password)
	}

	err := c.Users.Update(ctx, "7", map[string]any{"role": "owner"})
	assert.ErrorIs(t, err, validate.ErrValidation)

	require.NoError(t, c.Users.Update(ctx, "7", map[string]any{"role": "admin"}))
	assert.True(t, c.Users.Items()[1].IsAdmin())
	assert.Equal(t, "admin", srv.Records(restapi.CollectionUsers)[1]["role"])

	require.NoError(t, c.Users.Delete(ctx, "7"))
	assert.Len(t, c.Users.Items(), 1)
}

func TestOrderStatus(t *testing.T) {
	ctx := context.Background()
	c, srv := console(t)
	require.NoError(t, c.Orders.Load(ctx))

	err := c.Orders.UpdateStatus(ctx, "100", orders.Status("Lost"))
	assert.ErrorIs(t, err, validate.ErrValidation)

	require.NoError(t, c.Orders.UpdateStatus(ctx, "100", orders.StatusShipped))
	assert.Equal(t, "Shipped", c.Orders.Items()[0].Status)
	assert.Equal(t, "Shipped", srv.Records(restapi.CollectionOrders)[0]["status"])

	require.NoError(t, c.Orders.Delete(ctx, "102"))
	assert.Len(t, c.Orders.Items(), 2)
}

func TestAnalytics(t *testing.T) {
	c, _ := console(t)
	s, err := c.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, s.Products)
	assert.Equal(t, 2, s.Users)
	assert.Equal(t, 1, s.Admins)
	assert.Equal(t, 3, s.Orders)
	assert.InDelta(t, 90.5, s.Revenue, 1e-9)
	assert.InDelta(t, 45.25, s.AverageOrder, 1e-9)
	assert.Equal(t, map[string]int{"Processing": 1, "Delivered": 1, "Cancelled": 1}, s.OrdersByStatus)
	assert.Equal(t, []models.ID{"1"}, s.LowStock)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil, nil)
	assert.Zero(t, s.Revenue)
	assert.Zero(t, s.AverageOrder)
	assert.NotNil(t, s.LowStock)
}

func TestApplyDelta(t *testing.T) {
	p := models.Product{ID: "1", Title: "Hat", Price: 10, Colors: []string{"red"}}
	out, err := applyDelta(p, map[string]any{"price": 12.5, "stock": 3})
	require.NoError(t, err)

	assert.Equal(t, 12.5, out.Price)
	require.NotNil(t, out.Stock)
	assert.Equal(t, 3, *out.Stock)
	assert.Equal(t, "Hat", out.Title)
	assert.Equal(t, []string{"red"}, out.Colors)
}
