// Package navigation defines the application's named views and computes
// which one is current.
package navigation

import "strings"

// Paths of the five named views.
const (
	PathDashboard         = "/"
	PathStartConsultation = "/start-consultation"
	PathConsultations     = "/consultations"
	PathGroups            = "/groups"
	PathFeedback          = "/feedback"
)

// Item is one entry in the header navigation.
type Item struct {
	Name   string
	Path   string
	Icon   string
	Active bool
}

// Routes is the fixed route surface in header order.
var Routes = []Item{
	{Name: "Dashboard", Path: PathDashboard, Icon: "bar-chart"},
	{Name: "Start Consultation", Path: PathStartConsultation, Icon: "file-text"},
	{Name: "Consultations", Path: PathConsultations, Icon: "message-square"},
	{Name: "Groups", Path: PathGroups, Icon: "users"},
	{Name: "Feedback", Path: PathFeedback, Icon: "message-square"},
}

// Items returns a copy of Routes with Active set on the entry matching
// currentPath. The dashboard matches only "/" exactly; other entries also
// match their subpaths.
func Items(currentPath string) []Item {
	out := make([]Item, len(Routes))
	copy(out, Routes)
	for i := range out {
		out[i].Active = IsActive(out[i].Path, currentPath)
	}
	return out
}

// IsActive reports whether the nav entry at path is current for currentPath.
func IsActive(path, currentPath string) bool {
	if i := strings.IndexAny(currentPath, "?#"); i >= 0 {
		currentPath = currentPath[:i]
	}
	if path == PathDashboard {
		return currentPath == PathDashboard || currentPath == ""
	}
	return currentPath == path || strings.HasPrefix(currentPath, path+"/")
}

// Paths lists every named view path.
func Paths() []string {
	out := make([]string, 0, len(Routes))
	for _, r := range Routes {
		out = append(out, r.Path)
	}
	return out
}
