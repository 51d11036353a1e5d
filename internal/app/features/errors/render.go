// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// The status is written before rendering so it survives a template
// failure.
func render(w http.ResponseWriter, r *http.Request, status int, heading, msg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, heading, backURL),
		Status:  status,
		Heading: heading,
		Message: msg,
	}
	if backURL != "" {
		data.BackURL = backURL
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}

// RenderNotFound shows the 404 page. An empty msg uses a generic one.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "The page you were looking for could not be found."
	}
	render(w, r, http.StatusNotFound, "Page not found", msg, backURL)
}

// RenderBadRequest shows a 400 page with msg.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusBadRequest, "Bad request", msg, backURL)
}

// RenderServerError shows a generic 500 page. Details belong in the log,
// not in msg.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Something went wrong. Please try again later."
	}
	render(w, r, http.StatusInternalServerError, "Server error", msg, backURL)
}
