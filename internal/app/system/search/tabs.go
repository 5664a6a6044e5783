// internal/app/system/search/tabs.go
package search

import "github.com/dalemusser/consulthub/internal/domain/models"

// TabAll is the tab value meaning "no status filter".
const TabAll = "all"

// TabDef names one tab in a list page's tab strip.
type TabDef struct {
	Value string // status value, or TabAll
	Label string
}

// Tab is a TabDef with its count under the current query.
type Tab struct {
	Value  string
	Label  string
	Count  int
	Active bool
}

// Status converts a tab value to the filter status ("" for All).
func (d TabDef) Status() string {
	if d.Value == TabAll {
		return ""
	}
	return d.Value
}

// ResolveTab returns the tab value in defs matching v, or TabAll when v is
// empty or unknown.
func ResolveTab(defs []TabDef, v string) string {
	for _, d := range defs {
		if d.Value == v {
			return v
		}
	}
	return TabAll
}

// Tabs counts every tab against the full list and the current query, so each
// count always equals the length of the list that tab would show.
func Tabs[T any](items []T, spec Spec[T], defs []TabDef, active, q string) []Tab {
	active = ResolveTab(defs, active)
	out := make([]Tab, 0, len(defs))
	for _, d := range defs {
		out = append(out, Tab{
			Value:  d.Value,
			Label:  d.Label,
			Count:  Count(items, spec, d.Status(), q),
			Active: d.Value == active,
		})
	}
	return out
}

// ConsultationTabs is the Consultations page tab strip.
var ConsultationTabs = []TabDef{
	{TabAll, "All"},
	{models.ConsultationActive, "Active"},
	{models.ConsultationReview, "Review"},
	{models.ConsultationDraft, "Draft"},
	{models.ConsultationArchived, "Archived"},
}

// FeedbackTabs is the Feedback page tab strip.
var FeedbackTabs = []TabDef{
	{TabAll, "All Feedback"},
	{models.FeedbackPending, "Pending"},
	{models.FeedbackUnderReview, "Under Review"},
	{models.FeedbackReviewed, "Reviewed"},
}
