package notify

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newQueue(t *testing.T) *Queue {
	t.Helper()
	store, err := NewCookieStore(testKey, "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewCookieStore: %v", err)
	}
	return NewQueue(store, "test-session", zap.NewNop())
}

// carryCookies copies Set-Cookie values from rec onto a new request.
func carryCookies(rec *httptest.ResponseRecorder, target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNewNormalisesSeverity(t *testing.T) {
	n := New("t", "d", "loud")
	if n.Severity != SeverityNormal {
		t.Errorf("Severity = %q, want normal", n.Severity)
	}
	if n.ID == "" {
		t.Error("expected an id")
	}
	if !New("t", "d", SeverityDestructive).Destructive() {
		t.Error("destructive notification should report Destructive")
	}
}

func TestPushThenDrainAcrossRequests(t *testing.T) {
	q := newQueue(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/start-consultation", nil)
	if err := q.Push(rec, req, New("Consultation Started", "ok", SeverityNormal)); err != nil {
		t.Fatalf("Push: %v", err)
	}

	rec2 := httptest.NewRecorder()
	got := q.Drain(rec2, carryCookies(rec, "/start-consultation"))
	if len(got) != 1 || got[0].Title != "Consultation Started" {
		t.Fatalf("Drain = %+v", got)
	}

	// The drained cookie no longer carries the notification.
	rec3 := httptest.NewRecorder()
	if again := q.Drain(rec3, carryCookies(rec2, "/start-consultation")); len(again) != 0 {
		t.Errorf("second Drain = %+v, want none", again)
	}
}

func TestPushThenDrainSameRequest(t *testing.T) {
	q := newQueue(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/start-consultation", nil)

	_ = q.Push(rec, req, New("Missing Information", "a", SeverityDestructive))
	_ = q.Push(rec, req, New("Second", "b", SeverityNormal))

	got := q.Drain(rec, req)
	if len(got) != 2 {
		t.Fatalf("Drain returned %d, want 2", len(got))
	}
	if got[0].Title != "Missing Information" || got[1].Title != "Second" {
		t.Errorf("order = %q, %q", got[0].Title, got[1].Title)
	}
}

func TestDrainEmpty(t *testing.T) {
	q := newQueue(t)
	rec := httptest.NewRecorder()
	if got := q.Drain(rec, httptest.NewRequest(http.MethodGet, "/", nil)); got != nil {
		t.Errorf("Drain = %+v, want nil", got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("empty drain should not set a cookie")
	}
}

func TestDrainIgnoresUndecodableCookie(t *testing.T) {
	q := newQueue(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "test-session", Value: "garbage"})
	if got := q.Drain(httptest.NewRecorder(), r); len(got) != 0 {
		t.Errorf("Drain = %+v, want none", got)
	}
}

func TestNewCookieStore(t *testing.T) {
	if _, err := NewCookieStore("", "", false, zap.NewNop()); err == nil {
		t.Error("expected error for empty key")
	}

	store, err := NewCookieStore(testKey, "example.org", true, zap.NewNop())
	if err != nil {
		t.Fatalf("NewCookieStore: %v", err)
	}
	if store.Options.SameSite != http.SameSiteNoneMode || !store.Options.Secure {
		t.Errorf("secure store options = %+v", store.Options)
	}

	var _ sessions.Store = store
	rec := httptest.NewRecorder()
	q := NewQueue(store, "s", nil)
	_ = q.Push(rec, httptest.NewRequest(http.MethodGet, "/", nil), New("t", "d", ""))
	if h := rec.Header().Get("Set-Cookie"); !strings.Contains(h, "Domain=example.org") {
		t.Errorf("Set-Cookie = %q, want Domain=example.org", h)
	}
}
