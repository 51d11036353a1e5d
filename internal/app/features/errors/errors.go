// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
)

// pageData is the view model shared by every error page.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Heading string
	Message string
}

// Handler serves the router-level fallbacks.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// NotFound is installed as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "", "/")
}

// MethodNotAllowed is installed as the router's MethodNotAllowed handler.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusMethodNotAllowed, "Not allowed",
		"That action is not available here.", "/")
}
