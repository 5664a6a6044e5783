package consultations_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/consulthub/internal/app/features/consultations"
	uierrors "github.com/dalemusser/consulthub/internal/app/features/errors"
	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/app/system/metrics"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/dalemusser/consulthub/internal/testutil"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

type failingCatalog struct{ catalog.Reader }

func (failingCatalog) Consultations(context.Context) ([]models.Consultation, error) {
	return nil, errors.New("store offline")
}

func newTestHandler(t *testing.T, reader catalog.Reader) (*consultations.Handler, *metrics.Metrics) {
	t.Helper()
	logger := zap.NewNop()
	m := metrics.New()
	return consultations.NewHandler(reader, m, uierrors.NewErrorLogger(logger), logger), m
}

// serve runs the handler, tolerating a panic from the template engine, which
// is not booted in unit tests.
func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		h(rec, req)
	}()
	return rec
}

func TestServeList_RecordsMetrics(t *testing.T) {
	h, m := newTestHandler(t, catalog.NewMemory(testutil.Catalog(t)))

	serve(h.ServeList, httptest.NewRequest("GET", "/consultations?status=active&q=policy", nil))

	got := promtest.ToFloat64(m.ListQueries.WithLabelValues("consultations", "true"))
	if got != 1 {
		t.Errorf("list_queries_total{searched=true} = %v, want 1", got)
	}
}

func TestServeList_HTMXFragment(t *testing.T) {
	h, m := newTestHandler(t, catalog.NewMemory(testutil.Catalog(t)))

	serve(h.ServeList, testutil.NewHTMXRequest("/consultations?q="))

	got := promtest.ToFloat64(m.ListQueries.WithLabelValues("consultations", "false"))
	if got != 1 {
		t.Errorf("list_queries_total{searched=false} = %v, want 1", got)
	}
}

func TestServeList_StoreError(t *testing.T) {
	h, m := newTestHandler(t, failingCatalog{})

	rec := serve(h.ServeList, httptest.NewRequest("GET", "/consultations", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if n := promtest.CollectAndCount(m.ListQueries); n != 0 {
		t.Errorf("failed loads must not be counted, got %d series", n)
	}
}

func TestRoutes(t *testing.T) {
	h, _ := newTestHandler(t, catalog.NewMemory(testutil.Catalog(t)))
	r := consultations.Routes(h)
	if r == nil {
		t.Fatal("Routes returned nil")
	}
}
