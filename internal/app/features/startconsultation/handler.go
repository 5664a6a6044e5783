// internal/app/features/startconsultation/handler.go
package startconsultation

import (
	"net/http"

	uierrors "github.com/dalemusser/consulthub/internal/app/features/errors"
	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/app/system/metrics"
	"github.com/dalemusser/consulthub/internal/app/system/notify"
	"github.com/dalemusser/consulthub/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// DefaultMaxUploadBytes caps the multipart body when no limit is configured.
const DefaultMaxUploadBytes int64 = 10 << 20

// multipartMemory is how much of the body ParseMultipartForm keeps in memory.
const multipartMemory = 1 << 20

// Handler serves the start-consultation form.
type Handler struct {
	Catalog  catalog.Reader
	Notify   *notify.Queue
	Metrics  *metrics.Metrics
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
	MaxBytes int64

	// Limiter caps submissions per client. Nil disables it.
	Limiter *ratelimit.Limiter
}

// NewHandler constructs a Handler. maxBytes <= 0 selects
// DefaultMaxUploadBytes; q and m may be nil.
func NewHandler(reader catalog.Reader, q *notify.Queue, m *metrics.Metrics, maxBytes int64, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &Handler{
		Catalog:  reader,
		Notify:   q,
		Metrics:  m,
		ErrLog:   errLog,
		Log:      logger,
		MaxBytes: maxBytes,
	}
}

// onLimited runs when a client exceeds the submission limit.
func (h *Handler) onLimited(r *http.Request, key string) {
	h.Metrics.ObserveLimited()
	h.Log.Warn("submission rate limited",
		zap.String("client", key),
		zap.String("path", r.URL.Path))
}
