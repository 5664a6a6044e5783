// internal/app/features/groups/handler.go
package groups

import (
	uierrors "github.com/dalemusser/consulthub/internal/app/features/errors"
	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/app/system/metrics"
	"go.uber.org/zap"
)

// Handler is the dependency container for the groups feature. Group
// management actions render as inert placeholders, so the list is its only
// route.
type Handler struct {
	Catalog catalog.Reader
	Metrics *metrics.Metrics
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

// NewHandler constructs a new groups Handler. It is typically called
// from the bootstrap BuildHandler function.
func NewHandler(reader catalog.Reader, m *metrics.Metrics, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: reader,
		Metrics: m,
		ErrLog:  errLog,
		Log:     logger,
	}
}
