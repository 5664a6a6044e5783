// internal/app/features/feedback/routes.go
package feedback

import "github.com/go-chi/chi/v5"

// Routes wires the feedback list under "/feedback".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
