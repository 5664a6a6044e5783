// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"unicode"

	"github.com/dalemusser/consulthub/internal/app/system/navigation"
	"github.com/dalemusser/consulthub/internal/app/system/notify"
	"github.com/dalemusser/consulthub/internal/app/system/search"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(w, r, "Page Title", "/"),
//	}
type BaseVM struct {
	// Header branding and user chip
	SiteName     string
	SiteSubtitle string
	UserName     string
	UserRole     string
	UserInitials string

	// Navigation with the current view marked
	Nav []navigation.Item

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string

	// Notifications drained for this render
	Notifications []notify.Notification
}

var (
	mu    sync.RWMutex
	site  = models.DefaultSiteSettings()
	queue *notify.Queue
)

// Init sets the site branding and the notification queue.
// Call this once at startup from bootstrap.
func Init(settings models.SiteSettings, q *notify.Queue) {
	mu.Lock()
	defer mu.Unlock()
	site = settings
	queue = q
}

// Site returns the configured branding.
func Site() models.SiteSettings {
	mu.RLock()
	defer mu.RUnlock()
	return site
}

// Queue returns the notification queue, or nil before Init.
func Queue() *notify.Queue {
	mu.RLock()
	defer mu.RUnlock()
	return queue
}

// NewBaseVM creates a fully populated BaseVM for a page. It drains pending
// notifications, so call it before anything is written to w.
func NewBaseVM(w http.ResponseWriter, r *http.Request, title, backDefault string) BaseVM {
	s := Site()
	current := httpnav.CurrentPath(r)

	vm := BaseVM{
		SiteName:     s.SiteName,
		SiteSubtitle: s.SiteSubtitle,
		UserName:     s.UserName,
		UserRole:     s.UserRole,
		UserInitials: Initials(s.UserName),
		Nav:          navigation.Items(r.URL.Path),
		Title:        title,
		BackURL:      httpnav.ResolveBackURL(r, backDefault),
		CurrentPath:  current,
		CSRFToken:    csrf.Token(r),
	}

	if q := Queue(); q != nil {
		vm.Notifications = q.Drain(w, r)
	}
	return vm
}

// Initials returns up to two upper-case initials for name.
func Initials(name string) string {
	var out []rune
	start := true
	for _, r := range name {
		if unicode.IsSpace(r) {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
			if len(out) == 2 {
				break
			}
		}
	}
	for i, r := range out {
		out[i] = unicode.ToUpper(r)
	}
	return string(out)
}

// ListControls feeds the shared search_box and tab_strip partials.
type ListControls struct {
	Action      string // path the controls request, e.g. "/consultations"
	Target      string // id of the results fragment
	Placeholder string
	Query       string
	Active      string
	Tabs        []search.Tab
}

// TabURL is the request a tab button issues: Action with the tab's status
// and the current query, both URL-encoded. A blank query is left out.
func (c ListControls) TabURL(status string) string {
	v := url.Values{}
	v.Set("status", status)
	if c.Query != "" {
		v.Set("q", c.Query)
	}
	if strings.Contains(c.Action, "?") {
		return c.Action + "&" + v.Encode()
	}
	return c.Action + "?" + v.Encode()
}
