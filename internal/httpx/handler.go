package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	kafkax "github.com/Hasna17806/ZYRA-sub000/internal/kafka"
)

// upstreamTimeout bounds handlers that call the REST collaborator.
const upstreamTimeout = 5 * time.Second

type Handler struct {
	Sessions *Sessions
}

func (h *Handler) Register(r *chi.Mux) {
	r.Post("/devices", h.newDevice)

	r.Group(func(r chi.Router) {
		r.Use(h.Sessions.withDevice)

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)
		r.Get("/auth/me", h.me)
		r.Patch("/auth/profile", h.updateProfile)
		r.Post("/auth/password", h.changePassword)

		r.Post("/catalog/refresh", h.refreshCatalog)
		r.Get("/catalog", h.getCatalog)
		r.Patch("/catalog/filters", h.setFilters)
		r.Get("/catalog/categories", h.categories)
		r.Get("/catalog/products/{id}", h.product)

		r.Get("/cart", h.getCart)
		r.Post("/cart", h.addToCart)
		r.Delete("/cart", h.clearCart)
		r.Put("/cart/{id}", h.updateQuantity)
		r.Post("/cart/{id}/increment", h.increment)
		r.Post("/cart/{id}/decrement", h.decrement)
		r.Delete("/cart/{id}", h.removeFromCart)

		r.Get("/wishlist", h.getWishlist)
		r.Post("/wishlist", h.addToWishlist)
		r.Delete("/wishlist", h.clearWishlist)
		r.Delete("/wishlist/{id}", h.removeFromWishlist)
		r.Post("/wishlist/{id}/move-to-cart", h.moveToCart)

		r.Get("/orders", h.listOrders)
		r.Post("/orders", h.checkout)
		r.Delete("/orders", h.clearOrders)

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/products", h.adminProducts)
			r.Post("/products", h.adminCreateProduct)
			r.Put("/products/{id}", h.adminReplaceProduct)
			r.Patch("/products/{id}", h.adminUpdateProduct)
			r.Delete("/products/{id}", h.adminDeleteProduct)
			r.Get("/users", h.adminUsers)
			r.Patch("/users/{id}", h.adminUpdateUser)
			r.Delete("/users/{id}", h.adminDeleteUser)
			r.Get("/orders", h.adminOrders)
			r.Patch("/orders/{id}/status", h.adminUpdateOrderStatus)
			r.Delete("/orders/{id}", h.adminDeleteOrder)
			r.Get("/analytics", h.adminAnalytics)
		})
	})
}

// upstream derives the context for calls to the REST collaborator and
// carries the request id into published events.
func upstream(r *http.Request) (context.Context, context.CancelFunc) {
	ctx := kafkax.WithTraceID(r.Context(), middleware.GetReqID(r.Context()))
	return context.WithTimeout(ctx, upstreamTimeout)
}

// newDevice hands out an id for clients that have none yet.
func (h *Handler) newDevice(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{"deviceId": uuid.NewString()})
}
