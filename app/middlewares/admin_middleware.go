package middlewares

import (
	"log"
	"net/http"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/repositories"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/renderer"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/sessions"
	"github.com/unrolled/render"
)

// AdminAuthMiddleware rejects requests whose session does not resolve
// to an existing admin row.
func AdminAuthMiddleware(sessionStore sessions.SessionStore, adminRepo repositories.AdminRepositoryImpl, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID := sessionStore.GetAdminID(r)
			if adminID == "" {
				renderer.Error(rnd, w, r, apperrors.Unauthorized("admin session required"))
				return
			}

			admin, err := adminRepo.FindByID(r.Context(), adminID)
			if err != nil {
				log.Printf("AdminAuthMiddleware: error finding admin %s: %v", adminID, err)
				renderer.Error(rnd, w, r, apperrors.Store(err))
				return
			}
			if admin == nil {
				renderer.Error(rnd, w, r, apperrors.Unauthorized("admin session is no longer valid"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
