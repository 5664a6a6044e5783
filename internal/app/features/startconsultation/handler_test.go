package startconsultation_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	uierrors "github.com/dalemusser/consulthub/internal/app/features/errors"
	"github.com/dalemusser/consulthub/internal/app/features/startconsultation"
	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/app/system/consultform"
	"github.com/dalemusser/consulthub/internal/app/system/metrics"
	"github.com/dalemusser/consulthub/internal/app/system/notify"
	"github.com/dalemusser/consulthub/internal/app/system/ratelimit"
	"github.com/dalemusser/consulthub/internal/testutil"
	"github.com/gorilla/sessions"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

type harness struct {
	h       *startconsultation.Handler
	queue   *notify.Queue
	metrics *metrics.Metrics
}

func newHarness(t *testing.T, maxBytes int64) harness {
	t.Helper()
	logger := zap.NewNop()
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	q := notify.NewQueue(store, "consulthub-test", logger)
	m := metrics.New()
	h := startconsultation.NewHandler(catalog.NewMemory(testutil.Catalog(t)), q, m, maxBytes, uierrors.NewErrorLogger(logger), logger)
	return harness{h: h, queue: q, metrics: m}
}

// multipartBody builds a form with an optional file part.
func multipartBody(t *testing.T, fileName string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		fw.Write([]byte("%PDF-1.4 test document"))
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

// serve runs fn, tolerating a panic from the template engine, which is not
// booted in unit tests.
func serve(fn http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		fn(rec, req)
	}()
	return rec
}

// drainAfter replays the cookies set by rec and drains the queue.
func drainAfter(q *notify.Queue, rec *httptest.ResponseRecorder) []notify.Notification {
	next := httptest.NewRequest("GET", "/start-consultation", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	return q.Drain(httptest.NewRecorder(), next)
}

func TestNewHandler_DefaultLimit(t *testing.T) {
	hs := newHarness(t, 0)
	if hs.h.MaxBytes != startconsultation.DefaultMaxUploadBytes {
		t.Errorf("MaxBytes = %d, want %d", hs.h.MaxBytes, startconsultation.DefaultMaxUploadBytes)
	}
}

func TestHandleSubmit_Success(t *testing.T) {
	hs := newHarness(t, 0)

	body, ct := multipartBody(t, "Policy.pdf", map[string]string{
		"start_date": "2025-10-01",
		"end_date":   "2025-10-15",
		"group":      "clinical-leads",
		"summary":    "<b>Focus</b> on section 3",
	})
	rec := serve(hs.h.HandleSubmit, testutil.NewBodyRequest("POST", "/start-consultation", ct, body))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/start-consultation" {
		t.Errorf("Location = %q", loc)
	}
	if got := promtest.ToFloat64(hs.metrics.FormSubmissions.WithLabelValues(metrics.OutcomeAccepted)); got != 1 {
		t.Errorf("accepted submissions = %v, want 1", got)
	}

	got := drainAfter(hs.queue, rec)
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	n := got[0]
	if n.Title != consultform.StartedTitle || n.Destructive() {
		t.Errorf("notification = %+v", n)
	}
	if !strings.Contains(n.Description, `"Policy.pdf"`) || !strings.Contains(n.Description, "Clinical Leads") {
		t.Errorf("description = %q", n.Description)
	}
}

func TestHandleSubmit_MissingFile(t *testing.T) {
	hs := newHarness(t, 0)

	form := url.Values{
		"start_date": {"2025-10-01"},
		"end_date":   {"2025-10-15"},
		"group":      {"clinical-leads"},
	}
	req := testutil.NewBodyRequest("POST", "/start-consultation", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	rec := serve(hs.h.HandleSubmit, req)

	if rec.Code == http.StatusSeeOther {
		t.Fatal("rejected submission must not redirect")
	}
	if got := promtest.ToFloat64(hs.metrics.FormSubmissions.WithLabelValues(metrics.OutcomeRejected)); got != 1 {
		t.Errorf("rejected submissions = %v, want 1", got)
	}
	if got := promtest.ToFloat64(hs.metrics.MissingFields.WithLabelValues(consultform.FieldFile)); got != 1 {
		t.Errorf("missing file count = %v, want 1", got)
	}
	if got := promtest.ToFloat64(hs.metrics.MissingFields.WithLabelValues(consultform.FieldGroup)); got != 0 {
		t.Errorf("group was supplied but counted missing: %v", got)
	}
}

func TestHandleSubmit_DisallowedExtension(t *testing.T) {
	hs := newHarness(t, 0)

	body, ct := multipartBody(t, "notes.txt", map[string]string{
		"start_date": "2025-10-01",
		"end_date":   "2025-10-15",
		"group":      "quality-champs",
	})
	rec := serve(hs.h.HandleSubmit, testutil.NewBodyRequest("POST", "/start-consultation", ct, body))

	if rec.Code == http.StatusSeeOther {
		t.Fatal("a .txt upload counts as no file and must be rejected")
	}
	if got := promtest.ToFloat64(hs.metrics.MissingFields.WithLabelValues(consultform.FieldFile)); got != 1 {
		t.Errorf("missing file count = %v, want 1", got)
	}
}

func TestHandleSubmit_OversizeBody(t *testing.T) {
	hs := newHarness(t, 128)

	body, ct := multipartBody(t, "Policy.pdf", map[string]string{
		"start_date": "2025-10-01",
		"end_date":   "2025-10-15",
		"group":      "clinical-leads",
		"summary":    strings.Repeat("x", 4096),
	})
	rec := serve(hs.h.HandleSubmit, testutil.NewBodyRequest("POST", "/start-consultation", ct, body))

	if rec.Code == http.StatusSeeOther {
		t.Fatal("oversize submission must be rejected")
	}
	for _, f := range consultform.RequiredFields {
		if got := promtest.ToFloat64(hs.metrics.MissingFields.WithLabelValues(f)); got != 1 {
			t.Errorf("missing %s count = %v, want 1", f, got)
		}
	}
}

func TestRoutes(t *testing.T) {
	hs := newHarness(t, 0)
	if startconsultation.Routes(hs.h) == nil {
		t.Fatal("Routes returned nil")
	}
}

func TestRoutes_SubmissionRateLimit(t *testing.T) {
	hs := newHarness(t, 0)
	hs.h.Limiter = ratelimit.New(1, time.Minute)
	router := startconsultation.Routes(hs.h)

	post := func() *httptest.ResponseRecorder {
		body, ct := multipartBody(t, "Policy.pdf", map[string]string{
			"start_date": "2025-10-01",
			"end_date":   "2025-10-15",
			"group":      "clinical-leads",
		})
		req := testutil.NewBodyRequest("POST", "/", ct, body)
		req.RemoteAddr = "192.0.2.10:4000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	if rec := post(); rec.Code != http.StatusSeeOther {
		t.Fatalf("first submit status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	rec := post()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second submit status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
	if got := promtest.ToFloat64(hs.metrics.FormSubmissions.WithLabelValues(metrics.OutcomeLimited)); got != 1 {
		t.Errorf("limited submissions = %v, want 1", got)
	}
}
