// internal/app/features/dashboard/common.go
package dashboard

import (
	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/viewdata"
)

// recentLimit is how many consultations the Recent panel lists.
const recentLimit = 3

// statCard is one tile in the stats grid.
type statCard struct {
	Title       string
	Value       int
	Description string
	Icon        badges.Icon
	Tone        badges.Tone
}

// recentItem is one consultation in the Recent panel.
type recentItem struct {
	Title     string
	Group     string
	Status    badges.Badge
	EndDate   string
	Responses int
	Target    int
	Progress  int
}

// quickAction is a link in the Quick Actions panel.
type quickAction struct {
	Label string
	Path  string
	Icon  badges.Icon
}

// attention summarises what needs action soon.
type attention struct {
	EndingSoon     int
	EndingSoonDays int
	PendingReview  int
}

type dashboardData struct {
	viewdata.BaseVM
	FirstName string

	Stats     []statCard
	Recent    []recentItem
	Actions   []quickAction
	Attention attention
}
