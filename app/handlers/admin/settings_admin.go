package admin

import (
	"encoding/json"
	"net/http"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/services"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/renderer"
)

// UpdateSettings applies a partial upsert to the singleton settings
// row. Last writer wins.
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateSettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		renderer.Error(h.render, w, r, apperrors.Validation("invalid JSON body"))
		return
	}

	settings, err := h.settings.Update(r.Context(), input)
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, settings)
}
