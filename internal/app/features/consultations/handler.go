// internal/app/features/consultations/handler.go
package consultations

import (
	uierrors "github.com/dalemusser/consulthub/internal/app/features/errors"
	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/app/system/metrics"
	"go.uber.org/zap"
)

// Handler serves the Consultations list.
type Handler struct {
	Catalog catalog.Reader
	Metrics *metrics.Metrics
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

// NewHandler constructs a consultations Handler. Metrics may be nil.
func NewHandler(reader catalog.Reader, m *metrics.Metrics, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: reader,
		Metrics: m,
		ErrLog:  errLog,
		Log:     logger,
	}
}
