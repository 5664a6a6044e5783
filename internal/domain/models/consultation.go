// internal/domain/models/consultation.go
package models

import "math"

// Consultation statuses.
const (
	ConsultationDraft    = "draft"
	ConsultationActive   = "active"
	ConsultationReview   = "review"
	ConsultationArchived = "archived"
)

// ConsultationStatuses lists the known statuses in tab order.
var ConsultationStatuses = []string{
	ConsultationActive,
	ConsultationReview,
	ConsultationDraft,
	ConsultationArchived,
}

// Priorities shared by consultations and feedback.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Priorities lists the known priorities, lowest first.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// Consultation is a policy document under structured review by a group
// within a time window.
//
// NOTE:
//   - Progress is derived from Responses and TargetResponses on every call.
//     It is never stored.
//   - Group holds the owning group's display name, not its id.
//   - Position records the order of the source list.
type Consultation struct {
	ID              int    `bson:"_id" json:"id" yaml:"id"`
	Position        int    `bson:"position" json:"position" yaml:"-"`
	Title           string `bson:"title" json:"title" yaml:"title"`
	Description     string `bson:"description" json:"description" yaml:"description"`
	Group           string `bson:"group" json:"group" yaml:"group"`
	Status          string `bson:"status" json:"status" yaml:"status"`
	Priority        string `bson:"priority" json:"priority" yaml:"priority"`
	StartDate       string `bson:"start_date" json:"start_date" yaml:"start_date"`
	EndDate         string `bson:"end_date" json:"end_date" yaml:"end_date"`
	Responses       int    `bson:"responses" json:"responses" yaml:"responses"`
	TargetResponses int    `bson:"target_responses" json:"target_responses" yaml:"target_responses"`
	LastActivity    string `bson:"last_activity" json:"last_activity" yaml:"last_activity"`
}

// Progress returns Responses as a percentage of TargetResponses, rounded to
// the nearest integer and clamped to [0,100]. A zero target is 0% until the
// first response arrives, then 100%.
func (c Consultation) Progress() int {
	return ProgressPercent(c.Responses, c.TargetResponses)
}

// ProgressPercent is the progress rule used by Consultation.Progress.
func ProgressPercent(responses, target int) int {
	if target <= 0 {
		if responses > 0 {
			return 100
		}
		return 0
	}
	pct := int(math.Round(float64(responses) * 100 / float64(target)))
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}
