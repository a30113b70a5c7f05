package httpx

import (
	"net/http"

	"github.com/Hasna17806/ZYRA-sub000/internal/catalog"
	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/storefront"
)

type filtersReq struct {
	Search   *string `json:"search"`
	Category *string `json:"category"`
	Sort     *string `json:"sort"`
}

type catalogResp struct {
	Filters  catalog.Filters  `json:"filters"`
	Total    int              `json:"total"`
	Products []models.Product `json:"products"`
}

func (h *Handler) refreshCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := upstream(r)
	defer cancel()

	st := device(r).Shop.Catalog
	if err := st.FetchAll(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	writeCatalog(w, st)
}

func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	st := device(r).Shop.Catalog
	if !st.Loaded() {
		ctx, cancel := upstream(r)
		defer cancel()
		if err := st.FetchAll(ctx); err != nil {
			writeError(w, r, err)
			return
		}
	}
	writeCatalog(w, st)
}

// setFilters calls the setter of every field present in the body. Each one
// re-derives the list from the full catalog.
func (h *Handler) setFilters(w http.ResponseWriter, r *http.Request) {
	var req filtersReq
	if !decode(w, r, &req) {
		return
	}
	st := device(r).Shop.Catalog
	if req.Search != nil {
		st.SetSearch(*req.Search)
	}
	if req.Category != nil {
		st.SetCategory(*req.Category)
	}
	if req.Sort != nil {
		st.SetSort(catalog.SortMode(*req.Sort))
	}
	writeCatalog(w, st)
}

func writeCatalog(w http.ResponseWriter, st *catalog.State) {
	ps := st.Displayed()
	writeJSON(w, http.StatusOK, catalogResp{Filters: st.Filters(), Total: len(ps), Products: ps})
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	st := device(r).Shop.Catalog
	cats := st.Categories()
	if cats == nil {
		cats = []string{}
	}
	writeJSON(w, http.StatusOK, append([]string{catalog.CategoryAll}, cats...))
}

func (h *Handler) product(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := upstream(r)
	defer cancel()

	p, err := device(r).Shop.Product(ctx, idParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// productFromBody resolves the product a cart or wishlist request names:
// either a full snapshot or just an id looked up in the catalog.
func productFromBody(r *http.Request, shop *storefront.Storefront, p *models.Product, id models.ID) (models.Product, error) {
	if p != nil && p.ID != "" {
		return *p, nil
	}
	ctx, cancel := upstream(r)
	defer cancel()
	return shop.Product(ctx, id)
}
