package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/helpers"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/repositories"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/renderer"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	adminRepo    repositories.AdminRepositoryImpl
	sessionStore sessions.SessionStore
	render       *render.Render
}

func NewAuthHandler(adminRepo repositories.AdminRepositoryImpl, sessionStore sessions.SessionStore, r *render.Render) *AuthHandler {
	return &AuthHandler{adminRepo: adminRepo, sessionStore: sessionStore, render: r}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CSRFToken hands the admin client a token for subsequent mutations.
func (h *AuthHandler) CSRFToken(w http.ResponseWriter, r *http.Request) {
	token := csrf.Token(r)
	w.Header().Set("X-CSRF-Token", token)
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"csrfToken": token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderer.Error(h.render, w, r, apperrors.Validation("invalid JSON body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		renderer.Error(h.render, w, r, apperrors.Validation("email and password are required"))
		return
	}

	admin, err := h.adminRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		renderer.Error(h.render, w, r, apperrors.Store(err))
		return
	}
	if admin == nil || !helpers.PasswordCompare(admin.Password, []byte(req.Password)) {
		renderer.Error(h.render, w, r, apperrors.Unauthorized("invalid email or password"))
		return
	}

	if err := h.sessionStore.SetAdminID(w, r, admin.ID); err != nil {
		log.Printf("Login: failed to save session for %s: %v", admin.Email, err)
		renderer.Error(h.render, w, r, apperrors.Store(err))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, admin)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		renderer.Error(h.render, w, r, apperrors.Store(err))
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
