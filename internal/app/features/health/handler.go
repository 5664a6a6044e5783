package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Catalog catalog.Reader
	Backend string
	Log     *zap.Logger
}

// NewHandler constructs a health Handler over the repository.
func NewHandler(reader catalog.Reader, backend string, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: reader,
		Backend: backend,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Store   string `json:"store"`
	Message string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "backend":"mongo", "store":"connected" }
//
// On repository failure: 503 and
//
//	{ "status":"error", "backend":"mongo", "store":"disconnected", "message":"Store unavailable" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Backend: h.Backend,
		Store:   "connected",
	}

	if err := h.Catalog.Ping(ctx); err != nil {
		h.Log.Error("health-check: store ping failed", zap.String("backend", h.Backend), zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Store = "disconnected"
		resp.Message = "Store unavailable"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
