package admin

import (
	"net/http"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/services"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/renderer"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render   *render.Render
	query    *services.CatalogQueryService
	mutation *services.CatalogMutationService
	settings *services.SettingsService
}

func NewAdminHandler(
	render *render.Render,
	query *services.CatalogQueryService,
	mutation *services.CatalogMutationService,
	settings *services.SettingsService,
) *AdminHandler {
	return &AdminHandler{
		render:   render,
		query:    query,
		mutation: mutation,
		settings: settings,
	}
}

// ListProducts backs the admin product table: every product, newest
// first, with a thumbnail and the image count.
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.query.AdminListProducts(r.Context())
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.query.GetStats(r.Context())
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, stats)
}
