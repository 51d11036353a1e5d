// internal/app/features/resources/routes.go
package resources

import "github.com/go-chi/chi/v5"

// Routes mounts the public resources directory at /resources.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
