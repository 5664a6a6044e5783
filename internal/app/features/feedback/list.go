// internal/app/features/feedback/list.go
package feedback

import (
	"context"
	"net/http"

	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/navigation"
	"github.com/dalemusser/consulthub/internal/app/system/normalize"
	"github.com/dalemusser/consulthub/internal/app/system/search"
	"github.com/dalemusser/consulthub/internal/app/system/timeouts"
	"github.com/dalemusser/consulthub/internal/app/system/viewdata"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeList handles GET /feedback?status=&q=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	status := normalize.Status(query.Get(r, "status"))
	// The query is matched as typed, surrounding spaces included.
	q := r.URL.Query().Get("q")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Catalog.Feedback(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list feedback failed", err, "Feedback could not be loaded.", navigation.PathDashboard)
		return
	}

	data := buildList(all, status, q)
	h.Metrics.ObserveList("feedback", search.Active(q), data.Shown)
	h.Log.Debug("feedback listed",
		zap.String("status", data.Controls.Active),
		zap.String("q", q),
		zap.Int("results", data.Shown))

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "feedback_results", data)
		return
	}

	data.BaseVM = viewdata.NewBaseVM(w, r, "Feedback", navigation.PathDashboard)
	templates.Render(w, r, "feedback_list", data)
}

func buildList(all []models.Feedback, status, q string) listData {
	active := search.ResolveTab(search.FeedbackTabs, status)
	filterStatus := ""
	if active != search.TabAll {
		filterStatus = active
	}

	shown := search.Filter(all, search.Feedback, filterStatus, q)
	rows := make([]feedbackRow, 0, len(shown))
	for _, fb := range shown {
		rows = append(rows, toRow(fb))
	}

	return listData{
		Controls: viewdata.ListControls{
			Action:      navigation.PathFeedback,
			Target:      resultsTarget,
			Placeholder: "Search feedback...",
			Query:       q,
			Active:      active,
			Tabs:        search.Tabs(all, search.Feedback, search.FeedbackTabs, active, q),
		},
		Stats: stats(all, q),
		Rows:  rows,
		Shown: len(rows),
		Total: len(all),
	}
}

// stats counts the overview tiles with the same rule as the tabs.
func stats(all []models.Feedback, q string) []statTile {
	return []statTile{
		{Label: "Total Feedback", Count: search.Count(all, search.Feedback, "", q), Tone: badges.ToneInfo},
		{Label: "Pending Review", Count: search.Count(all, search.Feedback, models.FeedbackPending, q), Tone: badges.ToneWarning},
		{Label: "Under Review", Count: search.Count(all, search.Feedback, models.FeedbackUnderReview, q), Tone: badges.ToneInfo},
		{Label: "Reviewed", Count: search.Count(all, search.Feedback, models.FeedbackReviewed, q), Tone: badges.ToneSuccess},
	}
}

func toRow(fb models.Feedback) feedbackRow {
	return feedbackRow{
		ID:            fb.ID,
		DocumentTitle: fb.DocumentTitle,
		Section:       fb.Section,
		Body:          fb.Body,
		SubmittedBy:   fb.SubmittedBy,
		Role:          fb.Role,
		Initials:      fb.Initials,
		Timestamp:     fb.Timestamp,
		Status:        badges.FeedbackStatus(fb.Status),
		Priority:      badges.FeedbackPriority(fb.Priority),
		Category:      badges.FeedbackCategory(fb.Category),
		Helpful:       fb.Helpful,
		Pending:       fb.Status == models.FeedbackPending,
	}
}
