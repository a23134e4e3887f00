package admin

import (
	"encoding/json"
	"net/http"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/services"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/renderer"
	"github.com/gorilla/mux"
)

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input services.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		renderer.Error(h.render, w, r, apperrors.Validation("invalid JSON body"))
		return
	}

	product, err := h.mutation.CreateProduct(r.Context(), input)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		renderer.Error(h.render, w, r, apperrors.Validation("invalid JSON body"))
		return
	}

	product, err := h.mutation.UpdateProduct(r.Context(), id, input)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.mutation.DeleteProduct(r.Context(), id); err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.mutation.ToggleFeatured(r.Context(), id)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *AdminHandler) ToggleStock(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.mutation.ToggleStock(r.Context(), id)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *AdminHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	var input services.AddImageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		renderer.Error(h.render, w, r, apperrors.Validation("invalid JSON body"))
		return
	}

	image, err := h.mutation.AddImage(r.Context(), input)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, image)
}

func (h *AdminHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.mutation.DeleteImage(r.Context(), id); err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
