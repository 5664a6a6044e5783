package errors_test

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/consulthub/internal/app/features/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// render runs fn, tolerating a panic from the template engine, which is not
// booted in unit tests.
func render(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func TestNewErrorLogger_NilLogger(t *testing.T) {
	el := uierrors.NewErrorLogger(nil)
	if el == nil || el.Log == nil {
		t.Fatal("NewErrorLogger(nil) should fall back to a no-op logger")
	}
}

func TestLogServerError_LogsAndSets500(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	el := uierrors.NewErrorLogger(zap.New(core))

	req := httptest.NewRequest("GET", "/consultations", nil)
	rec := httptest.NewRecorder()
	render(func() {
		el.LogServerError(rec, req, "list consultations failed", stderrors.New("boom"), "A database error occurred.", "/")
	})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	entries := logs.FilterMessage("list consultations failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/consultations" {
		t.Errorf("path field = %v", fields["path"])
	}
	if fields["error"] != "boom" {
		t.Errorf("error field = %v", fields["error"])
	}
}

func TestNotFound_Sets404(t *testing.T) {
	h := uierrors.NewHandler()
	rec := httptest.NewRecorder()
	render(func() {
		h.NotFound(rec, httptest.NewRequest("GET", "/nope", nil))
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
