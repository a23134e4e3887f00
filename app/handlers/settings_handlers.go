package handlers

import (
	"net/http"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/services"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/renderer"
	"github.com/unrolled/render"
)

type SettingsHandler struct {
	settings *services.SettingsService
	render   *render.Render
}

func NewSettingsHandler(settings *services.SettingsService, r *render.Render) *SettingsHandler {
	return &SettingsHandler{settings: settings, render: r}
}

// Get returns the singleton settings row, creating it with defaults on
// the first read after a fresh database.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, settings)
}
