package httpx

import (
	"net/http"
	"strconv"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
)

type checkoutReq struct {
	ShippingAddress models.ShippingInfo `json:"shippingAddress"`
	PaymentMethod   string              `json:"paymentMethod"`
}

type ordersResp struct {
	Page   int            `json:"page"`
	Size   int            `json:"size"`
	Total  int            `json:"total"`
	Orders []models.Order `json:"orders"`
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	size := queryInt(r, "size", 10)

	list, total, err := device(r).Shop.OrderHistory(r.Context(), page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ordersResp{Page: page, Size: size, Total: total, Orders: list})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := upstream(r)
	defer cancel()

	o, err := device(r).Shop.Checkout(ctx, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) clearOrders(w http.ResponseWriter, r *http.Request) {
	if err := device(r).Shop.ClearOrderHistory(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, name string, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 1 {
		return def
	}
	return n
}
