package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/consulthub/internal/app/features/health"
	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/testutil"
	"go.uber.org/zap"
)

type downStore struct{ catalog.Reader }

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

type healthBody struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Store   string `json:"store"`
	Message string `json:"message"`
}

func TestServe_StoreConnected(t *testing.T) {
	mem := catalog.NewMemory(testutil.Catalog(t))
	handler := health.NewHandler(mem, catalog.BackendMemory, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Status != "ok" || body.Store != "connected" || body.Backend != "memory" {
		t.Errorf("body = %+v", body)
	}
}

func TestServe_StoreDown(t *testing.T) {
	handler := health.NewHandler(downStore{}, catalog.BackendMongo, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Status != "error" || body.Store != "disconnected" {
		t.Errorf("body = %+v", body)
	}
	if body.Message != "Store unavailable" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestServe_MongoConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := health.NewHandler(catalog.NewMongo(db), catalog.BackendMongo, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
