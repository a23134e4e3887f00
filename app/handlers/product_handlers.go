package handlers

import (
	"net/http"
	"strconv"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/helpers"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/services"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/renderer"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	query    *services.CatalogQueryService
	settings *services.SettingsService
	render   *render.Render
}

func NewProductHandler(query *services.CatalogQueryService, settings *services.SettingsService, r *render.Render) *ProductHandler {
	return &ProductHandler{query: query, settings: settings, render: r}
}

// ProductDetailResponse decorates a product with the storefront extras
// the detail page needs: a formatted price and the WhatsApp order link.
type ProductDetailResponse struct {
	Product      *models.Product `json:"product"`
	DisplayPrice string          `json:"displayPrice,omitempty"`
	WhatsappLink string          `json:"whatsappLink,omitempty"`
}

func parseBoolParam(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	input := services.ListProductsInput{
		CategorySlug: r.URL.Query().Get("categorySlug"),
		Featured:     parseBoolParam(r, "featured"),
		InStock:      parseBoolParam(r, "inStock"),
		Cursor:       r.URL.Query().Get("cursor"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			renderer.Error(h.render, w, r, apperrors.Validation("limit must be an integer"))
			return
		}
		input.Limit = limit
	}

	page, err := h.query.ListProducts(r.Context(), input)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, page)
}

func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.query.GetFeatured(r.Context())
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

// Detail resolves by id or slug (id wins). A missing product is a 200
// with a null product, matching the read contract where absence is not
// an error.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	slug := r.URL.Query().Get("slug")

	product, err := h.query.GetProduct(r.Context(), id, slug)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}

	response := ProductDetailResponse{Product: product}
	if product != nil {
		response.DisplayPrice = helpers.FormatPrice(product.Price)
		if settings, err := h.settings.Get(r.Context()); err == nil {
			response.WhatsappLink = helpers.WhatsAppLink(settings.Whatsapp, settings.SiteName, product.Name)
		}
	}
	_ = h.render.JSON(w, http.StatusOK, response)
}
