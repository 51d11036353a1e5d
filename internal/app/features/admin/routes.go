// internal/app/features/admin/routes.go
package admin

import (
	"github.com/dalemusser/ukrconnect/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the admin area at /admin. Sign-in and sign-out stay
// reachable; everything else requires admin.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/login", h.ServeLogin)
	r.Post("/login", h.HandleLogin)
	r.Post("/logout", h.HandleLogout)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireAdmin)
		pr.Get("/", h.ServeDashboard)
		pr.Get("/translations", h.ServeTranslations)
		pr.Post("/translations", h.HandleCreateTranslation)
	})
	return r
}
