package translator

import "github.com/go-chi/chi/v5"

// Routes serves the translator page; mount at /translator.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)
	return r
}

// APIRoutes serves the JSON lookup; mount at /api/translations.
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAPI)
	return r
}
