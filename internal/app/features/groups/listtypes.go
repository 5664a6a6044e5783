// internal/app/features/groups/listtypes.go
package groups

import (
	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/viewdata"
	"github.com/dalemusser/consulthub/internal/domain/models"
)

const resultsTarget = "groups-results"

// groupListItem represents a single group card in the list.
type groupListItem struct {
	ID                  string
	Name                string
	Description         string
	MemberCount         int
	ActiveConsultations int
	Access              badges.Badge
	LastActivity        string
	Members             []models.Member // at most models.MemberPreviewLimit
	Overflow            int             // shown as "+N" when positive
}

// groupListData is the view model for the groups list page.
type groupListData struct {
	viewdata.BaseVM
	Controls viewdata.ListControls

	Groups []groupListItem
	Shown  int
	Total  int

	// Summary tiles over the full list
	TotalMembers int
	ActiveTotal  int
}
