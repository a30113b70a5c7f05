package httpx

import (
	"net/http"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
)

type addToWishlistReq struct {
	Product   *models.Product `json:"product"`
	ProductID models.ID       `json:"productId"`
}

func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, device(r).Shop.Wishlist.Items())
}

func (h *Handler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	var req addToWishlistReq
	if !decode(w, r, &req) {
		return
	}
	d := device(r)
	p, err := productFromBody(r, d.Shop, req.Product, req.ProductID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := d.Shop.Wishlist.AddToWishlist(r.Context(), p); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d.Shop.Wishlist.Items())
}

func (h *Handler) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	d := device(r)
	if err := d.Shop.Wishlist.RemoveFromWishlist(r.Context(), idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d.Shop.Wishlist.Items())
}

func (h *Handler) clearWishlist(w http.ResponseWriter, r *http.Request) {
	d := device(r)
	if err := d.Shop.Wishlist.ClearWishlist(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d.Shop.Wishlist.Items())
}

func (h *Handler) moveToCart(w http.ResponseWriter, r *http.Request) {
	d := device(r)
	if err := d.Shop.MoveToCart(r.Context(), idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	writeCart(w, d)
}
