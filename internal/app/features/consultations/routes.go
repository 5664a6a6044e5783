// internal/app/features/consultations/routes.go
package consultations

import "github.com/go-chi/chi/v5"

// Routes wires the consultations list under the mount point chosen by the
// top-level router ("/consultations").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
