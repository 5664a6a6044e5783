// internal/app/system/notify/notify.go
//
// Package notify is the single notification surface. A handler pushes a
// Notification; the next page render drains and displays it exactly once.
// Pending notifications ride in the session as flash messages, so they
// survive a Post/Redirect/Get round trip.
package notify

import (
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Severity selects how a notification is styled.
type Severity string

const (
	SeverityNormal      Severity = "normal"
	SeverityDestructive Severity = "destructive"
)

// Notification is a transient, non-blocking message: a title, a
// description and a severity.
type Notification struct {
	ID          string
	Title       string
	Description string
	Severity    Severity
}

// New returns a notification with a fresh id. Any severity other than
// destructive is treated as normal.
func New(title, description string, sev Severity) Notification {
	if sev != SeverityDestructive {
		sev = SeverityNormal
	}
	return Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Severity:    sev,
	}
}

// Destructive reports whether n should be drawn as an error.
func (n Notification) Destructive() bool {
	return n.Severity == SeverityDestructive
}

func init() {
	gob.Register(Notification{})
}

const flashKey = "_notify"

// Queue pushes and drains notifications through a session store.
type Queue struct {
	store sessions.Store
	name  string
	log   *zap.Logger
}

// NewQueue returns a Queue storing flashes in the session called name.
func NewQueue(store sessions.Store, name string, logger *zap.Logger) *Queue {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Queue{store: store, name: name, log: logger}
}

// Push appends n to the caller's pending notifications.
func (q *Queue) Push(w http.ResponseWriter, r *http.Request, n Notification) error {
	s := q.session(r)
	s.AddFlash(n, flashKey)
	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("save notification: %w", err)
	}
	return nil
}

// Drain returns and clears the pending notifications, oldest first. It must
// run before the response body is written. Failures are logged and yield
// no notifications.
func (q *Queue) Drain(w http.ResponseWriter, r *http.Request) []Notification {
	s := q.session(r)
	raw := s.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(r, w); err != nil {
		q.log.Warn("clear notifications", zap.Error(err))
	}
	out := make([]Notification, 0, len(raw))
	for _, v := range raw {
		if n, ok := v.(Notification); ok {
			out = append(out, n)
		}
	}
	return out
}

// session returns the request's session. A cookie that no longer decodes
// (rotated key, tampering) yields a fresh session instead of an error.
func (q *Queue) session(r *http.Request) *sessions.Session {
	s, err := q.store.Get(r, q.name)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			q.log.Debug("discarding undecodable session cookie", zap.String("session", q.name))
		} else {
			q.log.Warn("session load failed", zap.Error(err))
		}
	}
	if s == nil {
		s = sessions.NewSession(q.store, q.name)
	}
	return s
}

// NewCookieStore builds the cookie-backed session store. With secure set,
// cookies are Secure with SameSite=None; otherwise SameSite=Lax so they
// work over plain http on localhost.
func NewCookieStore(sessionKey, domain string, secure bool, logger *zap.Logger) (*sessions.CookieStore, error) {
	if sessionKey == "" {
		return nil, errors.New("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))
	return store, nil
}
