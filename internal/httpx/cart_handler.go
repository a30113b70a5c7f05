package httpx

import (
	"net/http"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
)

type addToCartReq struct {
	Product   *models.Product `json:"product"`
	ProductID models.ID       `json:"productId"`
	Quantity  int             `json:"quantity"`
}

type quantityReq struct {
	Quantity int `json:"quantity"`
}

type cartResp struct {
	Items []models.CartEntry `json:"items"`
	Count int                `json:"count"`
	Total float64            `json:"total"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeCart(w, device(r))
}

func writeCart(w http.ResponseWriter, d *Device) {
	c := d.Shop.Cart
	writeJSON(w, http.StatusOK, cartResp{Items: c.Items(), Count: c.Count(), Total: c.Total()})
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if !decode(w, r, &req) {
		return
	}
	d := device(r)
	p, err := productFromBody(r, d.Shop, req.Product, req.ProductID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := d.Shop.Cart.AddToCart(r.Context(), p, req.Quantity); err != nil {
		writeError(w, r, err)
		return
	}
	writeCart(w, d)
}

// updateQuantity is the numeric input: the value is stored as sent.
func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityReq
	if !decode(w, r, &req) {
		return
	}
	d := device(r)
	if err := d.Shop.Cart.UpdateQuantity(r.Context(), idParam(r), req.Quantity); err != nil {
		writeError(w, r, err)
		return
	}
	writeCart(w, d)
}

func (h *Handler) increment(w http.ResponseWriter, r *http.Request) {
	d := device(r)
	if err := d.Shop.Cart.Increment(r.Context(), idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	writeCart(w, d)
}

func (h *Handler) decrement(w http.ResponseWriter, r *http.Request) {
	d := device(r)
	if err := d.Shop.Cart.Decrement(r.Context(), idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	writeCart(w, d)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	d := device(r)
	if err := d.Shop.Cart.RemoveFromCart(r.Context(), idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	writeCart(w, d)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	d := device(r)
	if err := d.Shop.Cart.ClearCart(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeCart(w, d)
}
