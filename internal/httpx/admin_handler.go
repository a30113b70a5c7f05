package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/orders"
)

type statusReq struct {
	Status string `json:"status"`
}

func idParam(r *http.Request) models.ID { return models.ID(chi.URLParam(r, "id")) }

func (h *Handler) adminProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := upstream(r)
	defer cancel()

	v := device(r).Admin.Products
	if err := v.Load(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v.Items())
}

func (h *Handler) adminCreateProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if !decode(w, r, &p) {
		return
	}
	ctx, cancel := upstream(r)
	defer cancel()

	created, err := device(r).Admin.Products.Create(ctx, p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Updates reload the view first so the local copy they patch and validate is
// the server's current record.
func (h *Handler) adminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var delta map[string]any
	if !decode(w, r, &delta) {
		return
	}
	ctx, cancel := upstream(r)
	defer cancel()

	v := device(r).Admin.Products
	if err := v.Load(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	if err := v.Update(ctx, idParam(r), delta); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v.Items())
}

func (h *Handler) adminReplaceProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if !decode(w, r, &p) {
		return
	}
	ctx, cancel := upstream(r)
	defer cancel()

	v := device(r).Admin.Products
	if err := v.Load(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	if err := v.Replace(ctx, idParam(r), p); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v.Items())
}

func (h *Handler) adminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := upstream(r)
	defer cancel()

	if err := device(r).Admin.Products.Delete(ctx, idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := upstream(r)
	defer cancel()

	v := device(r).Admin.Users
	if err := v.Load(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v.Items())
}

func (h *Handler) adminUpdateUser(w http.ResponseWriter, r *http.Request) {
	var delta map[string]any
	if !decode(w, r, &delta) {
		return
	}
	ctx, cancel := upstream(r)
	defer cancel()

	v := device(r).Admin.Users
	if err := v.Load(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	if err := v.Update(ctx, idParam(r), delta); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v.Items())
}

func (h *Handler) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := upstream(r)
	defer cancel()

	if err := device(r).Admin.Users.Delete(ctx, idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := upstream(r)
	defer cancel()

	v := device(r).Admin.Orders
	if err := v.Load(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v.Items())
}

func (h *Handler) adminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusReq
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := upstream(r)
	defer cancel()

	v := device(r).Admin.Orders
	if err := v.Load(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	if err := v.UpdateStatus(ctx, idParam(r), orders.Status(req.Status)); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v.Items())
}

func (h *Handler) adminDeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := upstream(r)
	defer cancel()

	if err := device(r).Admin.Orders.Delete(ctx, idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := upstream(r)
	defer cancel()

	s, err := device(r).Admin.Analytics(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
