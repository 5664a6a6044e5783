// internal/app/features/consultations/list.go
package consultations

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

// ServeList handles GET /consultations?status=&q=.
// The search box and the tab strip re-request the page on every keystroke
// and tab switch; HTMX requests get only the results fragment.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	status := normalize.Status(query.Get(r, "status"))
	// The query is matched as typed, surrounding spaces included.
	q := r.URL.Query().Get("q")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Catalog.Consultations(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list consultations failed", err, "Consultations could not be loaded.", navigation.PathDashboard)
		return
	}

	data := buildList(all, status, q)
	h.Metrics.ObserveList("consultations", search.Active(q), data.Shown)
	h.Log.Debug("consultations listed",
		zap.String("status", data.Controls.Active),
		zap.String("q", q),
		zap.Int("results", data.Shown))

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "consultations_results", data)
		return
	}

	data.BaseVM = viewdata.NewBaseVM(w, r, "Consultations", navigation.PathDashboard)
	templates.Render(w, r, "consultations_list", data)
}

// buildList filters all by the resolved tab and query and counts every tab
// under the same query.
func buildList(all []models.Consultation, status, q string) listData {
	active := search.ResolveTab(search.ConsultationTabs, status)
	filterStatus := ""
	if active != search.TabAll {
		filterStatus = active
	}

	shown := search.Filter(all, search.Consultations, filterStatus, q)
	rows := make([]consultationRow, 0, len(shown))
	for _, c := range shown {
		rows = append(rows, toRow(c))
	}

	return listData{
		Controls: viewdata.ListControls{
			Action:      navigation.PathConsultations,
			Target:      resultsTarget,
			Placeholder: "Search consultations...",
			Query:       q,
			Active:      active,
			Tabs:        search.Tabs(all, search.Consultations, search.ConsultationTabs, active, q),
		},
		Rows:  rows,
		Shown: len(rows),
		Total: len(all),
	}
}

func toRow(c models.Consultation) consultationRow {
	return consultationRow{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		Group:        c.Group,
		Status:       badges.ConsultationStatus(c.Status),
		Priority:     badges.ConsultationPriority(c.Priority),
		Period:       c.StartDate + " - " + c.EndDate,
		Responses:    c.Responses,
		Target:       c.TargetResponses,
		Progress:     c.Progress(),
		LastActivity: c.LastActivity,
		CanManage:    c.Status == models.ConsultationActive,
	}
}
