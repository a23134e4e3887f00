package admin

import (
	"encoding/json"
	"net/http"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/services"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/renderer"
	"github.com/gorilla/mux"
)

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input services.CreateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		renderer.Error(h.render, w, r, apperrors.Validation("invalid JSON body"))
		return
	}

	category, err := h.mutation.CreateCategory(r.Context(), input)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.UpdateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		renderer.Error(h.render, w, r, apperrors.Validation("invalid JSON body"))
		return
	}

	category, err := h.mutation.UpdateCategory(r.Context(), id, input)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

// DeleteCategory fails with a conflict while any product still
// references the category.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.mutation.DeleteCategory(r.Context(), id); err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
