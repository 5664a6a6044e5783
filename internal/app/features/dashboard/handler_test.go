package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/consulthub/internal/app/features/dashboard"
	uierrors "github.com/dalemusser/consulthub/internal/app/features/errors"
	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/dalemusser/consulthub/internal/testutil"
	"go.uber.org/zap"
)

// feedbackDown fails only the feedback load, so the concurrent load as a
// whole must fail.
type feedbackDown struct{ catalog.Reader }

func (feedbackDown) Feedback(context.Context) ([]models.Feedback, error) {
	return nil, errors.New("feedback collection unavailable")
}

func newTestHandler(reader catalog.Reader) *dashboard.Handler {
	logger := zap.NewNop()
	return dashboard.NewHandler(reader, 2, uierrors.NewErrorLogger(logger), logger)
}

func TestNewHandler_NegativeWindow(t *testing.T) {
	h := dashboard.NewHandler(nil, -1, nil, zap.NewNop())
	if h.EndingSoonDays != dashboard.DefaultEndingSoonDays {
		t.Errorf("EndingSoonDays = %d", h.EndingSoonDays)
	}
}

func TestServeDashboard_PartialFailure(t *testing.T) {
	mem := catalog.NewMemory(testutil.Catalog(t))
	h := newTestHandler(feedbackDown{Reader: mem})

	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		h.ServeDashboard(rec, httptest.NewRequest("GET", "/", nil))
	}()

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
