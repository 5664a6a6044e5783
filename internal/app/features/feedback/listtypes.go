// internal/app/features/feedback/listtypes.go
package feedback

import (
	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/viewdata"
)

const resultsTarget = "feedback-results"

// feedbackRow is one feedback card.
type feedbackRow struct {
	ID            int
	DocumentTitle string
	Section       string
	Body          string
	SubmittedBy   string
	Role          string
	Initials      string
	Timestamp     string
	Status        badges.Badge
	Priority      badges.Badge
	Category      badges.Badge
	Helpful       int
	Pending       bool // pending items offer Mark Reviewed and Address
}

// statTile is one overview tile above the list.
type statTile struct {
	Label string
	Count int
	Tone  badges.Tone
}

type listData struct {
	viewdata.BaseVM
	Controls viewdata.ListControls
	Stats    []statTile
	Rows     []feedbackRow
	Shown    int
	Total    int
}
