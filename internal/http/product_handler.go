package http

import (
	"net/http"

	"github.com/Chahethsen12/MobiTech-Elite/internal/catalog"
	"github.com/go-chi/chi/v5"
)

// ListProducts handles GET /products?category=&q=&sort=
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	products, err := h.svc.ListProducts(catalog.Query{
		Category: query.Get("category"),
		Search:   query.Get("q"),
		Sort:     catalog.SortOrder(query.Get("sort")),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.svc.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
