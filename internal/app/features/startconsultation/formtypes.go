// internal/app/features/startconsultation/formtypes.go
package startconsultation

import (
	"github.com/dalemusser/consulthub/internal/app/system/consultform"
	"github.com/dalemusser/consulthub/internal/app/system/viewdata"
	"github.com/dalemusser/consulthub/internal/domain/models"
)

// groupOption is one entry in the group select.
type groupOption struct {
	ID          string
	Name        string
	MemberCount int
	Selected    bool
}

// processStep is one entry in the fixed process outline.
type processStep struct {
	Number      int
	Title       string
	Description string
}

// processSteps is the consultation process shown beside the form.
var processSteps = []processStep{
	{1, "Document Upload", "Upload and configure consultation"},
	{2, "Notifications Sent", "Group members receive email alerts"},
	{3, "Feedback Collection", "Structured feedback is collected"},
	{4, "Automatic Closure", "Process closes at end date"},
}

// groupSummary feeds the "Selected Group" sidebar card.
type groupSummary struct {
	Selected    bool
	Name        string
	MemberCount int
}

// formData is the view model for the form page.
type formData struct {
	viewdata.BaseVM

	Form    consultform.Form
	State   string
	Missing map[string]bool // fields to flag after a rejected submit

	Groups  []groupOption
	Summary groupSummary
	Steps   []processStep

	Accept string // accept attribute for the file input
	MaxMB  int64
}

func buildOptions(opts []models.GroupOption, selected string) []groupOption {
	out := make([]groupOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, groupOption{
			ID:          o.ID,
			Name:        o.Name,
			MemberCount: o.MemberCount,
			Selected:    o.ID == selected,
		})
	}
	return out
}

func summarize(opts []models.GroupOption, selected string) groupSummary {
	g, ok := consultform.LookupGroup(opts, selected)
	if !ok {
		return groupSummary{}
	}
	return groupSummary{Selected: true, Name: g.Name, MemberCount: g.MemberCount}
}
