// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/consulthub/internal/app/system/navigation"
	"github.com/dalemusser/consulthub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Heading string
	Message string
}

// Handler is the errors feature handler.
// No store needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the 404 page. Mounted as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r)
}

// RenderNotFound shows the "page not found" view with a link home.
func RenderNotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, "Page not found", navigation.PathDashboard),
		Heading: "Page not found",
		Message: "The page you were looking for does not exist.",
	}
	data.BackURL = navigation.PathDashboard

	writeStatus(w, http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}

// RenderServerError shows a friendly 500 page with msg. If backURL is empty
// the back link resolves from the request with "/" as fallback.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, "Something went wrong", navigation.PathDashboard),
		Heading: "Something went wrong",
		Message: msg,
	}
	if backURL != "" {
		data.BackURL = backURL
	}

	writeStatus(w, http.StatusInternalServerError)
	templates.Render(w, r, "error_server", data)
}

func writeStatus(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
}
