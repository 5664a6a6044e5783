// internal/app/features/groups/routes.go
package groups

import "github.com/go-chi/chi/v5"

// Routes wires the groups list under "/groups".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST
	r.Get("/", h.ServeGroupsList)

	return r
}
