// internal/app/features/consultations/listtypes.go
package consultations

import (
	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/viewdata"
)

// resultsTarget is the id of the fragment HTMX swaps on search and tab switch.
const resultsTarget = "consultations-results"

// consultationRow is one consultation card.
type consultationRow struct {
	ID           int
	Title        string
	Description  string
	Group        string
	Status       badges.Badge
	Priority     badges.Badge
	Period       string
	Responses    int
	Target       int
	Progress     int
	LastActivity string
	CanManage    bool // only active consultations can be managed
}

// listData is the view model for the consultations page and its fragment.
type listData struct {
	viewdata.BaseVM
	Controls viewdata.ListControls
	Rows     []consultationRow
	Shown    int
	Total    int
}
