// internal/app/features/startconsultation/routes.go
package startconsultation

import "github.com/go-chi/chi/v5"

// Routes wires the form under "/start-consultation". The POST is covered by
// the router-level CSRF middleware and by the per-client submission limit.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeForm)
	r.With(h.Limiter.Middleware(h.onLimited)).Post("/", h.HandleSubmit)

	// Sidebar refresh when the group selection changes
	r.Get("/group", h.ServeGroupSummary)
	return r
}
