// internal/app/features/dashboard/handler.go
package dashboard

import (
	"time"

	uierrors "github.com/dalemusser/consulthub/internal/app/features/errors"
	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"go.uber.org/zap"
)

// DefaultEndingSoonDays is the "ending soon" window when none is configured.
const DefaultEndingSoonDays = 2

type Handler struct {
	Catalog        catalog.Reader
	EndingSoonDays int
	Now            func() time.Time
	ErrLog         *uierrors.ErrorLogger
	Log            *zap.Logger
}

func NewHandler(reader catalog.Reader, endingSoonDays int, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if endingSoonDays < 0 {
		endingSoonDays = DefaultEndingSoonDays
	}
	return &Handler{
		Catalog:        reader,
		EndingSoonDays: endingSoonDays,
		Now:            time.Now,
		ErrLog:         errLog,
		Log:            logger,
	}
}
