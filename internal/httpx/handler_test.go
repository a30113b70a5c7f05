package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/restapi"
	"github.com/Hasna17806/ZYRA-sub000/internal/restapi/restapitest"
	"github.com/Hasna17806/ZYRA-sub000/internal/storage"
	"github.com/Hasna17806/ZYRA-sub000/internal/storefront"
)

func setupRouter(t *testing.T) (*chi.Mux, *storage.Memory) {
	t.Helper()
	srv := restapitest.New(t)
	srv.Seed(restapi.CollectionUsers,
		map[string]any{"id": 1, "name": "Root", "email": "root@zyra.io", "password": "Admin123", "role": "admin"},
		map[string]any{"id": 7, "name": "Ana", "email": "ana@zyra.io", "password": "Secret123", "role": "user"},
	)
	srv.Seed(restapi.CollectionProducts,
		map[string]any{"id": 1, "title": "Red Shirt", "price": 30, "category": "men", "image": "s.png", "stock": 3},
		map[string]any{"id": 2, "title": "Blue Hat", "price": 10, "category": "men", "image": "h.png"},
		map[string]any{"id": 3, "title": "Red Hat", "price": 20, "category": "women", "image": "r.png"},
	)

	api := restapi.New(srv.URL)
	store := storage.NewMemory()
	open := func(ctx context.Context, id string) (*storefront.Storefront, error) {
		return storefront.New(ctx, storage.WithPrefix(store, fmt.Sprintf("device:%s:", id)), api)
	}

	r := NewRouter()
	h := &Handler{Sessions: NewSessions(open, api, 0)}
	h.Register(r)
	return r, store
}

func call(t *testing.T, r http.Handler, device, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if device != "" {
		req.Header.Set(HeaderDeviceID, device)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestDeviceHeaderRequired(t *testing.T) {
	r, _ := setupRouter(t)

	w := call(t, r, "", http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, "", http.MethodPost, "/devices", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, decodeBody[map[string]string](t, w)["deviceId"])

	w = call(t, r, "", http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin(t *testing.T) {
	r, _ := setupRouter(t)

	w := call(t, r, "d1", http.MethodPost, "/auth/login", loginReq{Email: "ana@zyra.io", Password: "secret123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(t, r, "d1", http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(t, r, "d1", http.MethodPost, "/auth/login", loginReq{Email: "ana@zyra.io", Password: "Secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}](t, w)
	assert.Equal(t, models.ID("7"), body.User.ID)
	assert.Empty(t, body.User.Password)
	assert.NotEmpty(t, body.Token)

	w = call(t, r, "d1", http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// another device is still logged out
	w = call(t, r, "d2", http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCatalogFilters(t *testing.T) {
	r, _ := setupRouter(t)

	w := call(t, r, "d1", http.MethodGet, "/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decodeBody[catalogResp](t, w).Total)

	search, category, sort := "red", "men", "low-high"
	w = call(t, r, "d1", http.MethodPatch, "/catalog/filters", filtersReq{Search: &search, Category: &category, Sort: &sort})
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[catalogResp](t, w)
	require.Len(t, got.Products, 1)
	assert.Equal(t, models.ID("1"), got.Products[0].ID)

	w = call(t, r, "d1", http.MethodGet, "/catalog/categories", nil)
	assert.Equal(t, []string{"all", "men", "women"}, decodeBody[[]string](t, w))

	w = call(t, r, "d1", http.MethodGet, "/catalog/products/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAndCheckout(t *testing.T) {
	r, store := setupRouter(t)

	w := call(t, r, "d1", http.MethodPost, "/cart", addToCartReq{ProductID: "1"})
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, "d1", http.MethodPost, "/cart", addToCartReq{ProductID: "2", Quantity: 2})
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, "d1", http.MethodPost, "/cart/1/increment", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cart := decodeBody[cartResp](t, w)
	assert.Equal(t, 4, cart.Count)
	assert.Equal(t, 80.0, cart.Total)

	w = call(t, r, "d1", http.MethodPost, "/cart", addToCartReq{ProductID: "404"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	checkout := checkoutReq{
		ShippingAddress: models.ShippingInfo{FullName: "Ana Z", Address: "1 Main St", City: "Kochi"},
		PaymentMethod:   "cod",
	}
	w = call(t, r, "d1", http.MethodPost, "/orders", checkout)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "guests cannot check out")

	// the guest cart is not carried into the user's cart
	w = call(t, r, "d1", http.MethodPost, "/auth/login", loginReq{Email: "ana@zyra.io", Password: "Secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, "d1", http.MethodPost, "/orders", checkout)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, "d1", http.MethodPost, "/cart", addToCartReq{ProductID: "3"})
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, "d1", http.MethodPost, "/orders", checkout)
	require.Equal(t, http.StatusCreated, w.Code)
	order := decodeBody[models.Order](t, w)
	assert.Equal(t, 20.0, order.Total)
	assert.Equal(t, "Processing", order.Status)

	w = call(t, r, "d1", http.MethodGet, "/cart", nil)
	assert.Zero(t, decodeBody[cartResp](t, w).Count)
	_, ok, _ := store.Get(context.Background(), "device:d1:cart_7")
	assert.False(t, ok)

	w = call(t, r, "d1", http.MethodGet, "/orders?page=1&size=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[ordersResp](t, w)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, order.ID, list.Orders[0].ID)

	w = call(t, r, "d1", http.MethodGet, "/orders?page=4611686018427387904&size=4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[ordersResp](t, w).Orders)
}

func TestWishlist(t *testing.T) {
	r, _ := setupRouter(t)

	for i := 0; i < 2; i++ {
		w := call(t, r, "d1", http.MethodPost, "/wishlist", addToWishlistReq{ProductID: "2"})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := call(t, r, "d1", http.MethodGet, "/wishlist", nil)
	assert.Len(t, decodeBody[[]models.Product](t, w), 1)

	w = call(t, r, "d1", http.MethodPost, "/wishlist/2/move-to-cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeBody[cartResp](t, w).Count)

	w = call(t, r, "d1", http.MethodGet, "/wishlist", nil)
	assert.Empty(t, decodeBody[[]models.Product](t, w))
}

func TestAdminAccess(t *testing.T) {
	r, _ := setupRouter(t)

	w := call(t, r, "d1", http.MethodGet, "/admin/analytics", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	call(t, r, "d1", http.MethodPost, "/auth/login", loginReq{Email: "ana@zyra.io", Password: "Secret123"})
	w = call(t, r, "d1", http.MethodGet, "/admin/analytics", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	call(t, r, "d2", http.MethodPost, "/auth/login", loginReq{Email: "root@zyra.io", Password: "Admin123"})
	w = call(t, r, "d2", http.MethodGet, "/admin/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, decodeBody[map[string]any](t, w)["products"])

	w = call(t, r, "d2", http.MethodPatch, "/admin/products/1", map[string]any{"price": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, "d2", http.MethodPut, "/admin/products/1", models.Product{Title: "Red Shirt"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, "d2", http.MethodPut, "/admin/products/1",
		models.Product{Title: "Red Tee", Price: 25, Category: "men", Image: "t.png"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Red Tee", decodeBody[[]models.Product](t, w)[0].Title)

	w = call(t, r, "d2", http.MethodPatch, "/admin/orders/1/status", statusReq{Status: "Teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, "d2", http.MethodGet, "/admin/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, u := range decodeBody[[]models.User](t, w) {
		assert.Empty(t, u.Password)
	}
}
