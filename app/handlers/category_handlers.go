package handlers

import (
	"net/http"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/services"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/renderer"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	query  *services.CatalogQueryService
	render *render.Render
}

func NewCategoryHandler(query *services.CatalogQueryService, r *render.Render) *CategoryHandler {
	return &CategoryHandler{query: query, render: r}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.query.ListCategories(r.Context())
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

// BySlug returns the category with its in-stock products, or a null
// body when the slug matches nothing.
func (h *CategoryHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.query.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Products(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	products, err := h.query.GetProductsByCategory(r.Context(), slug)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}
