// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"

	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/navigation"
	"github.com/dalemusser/consulthub/internal/app/system/search"
	"github.com/dalemusser/consulthub/internal/app/system/timeouts"
	"github.com/dalemusser/consulthub/internal/app/system/viewdata"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeGroupsList handles GET /groups?q=. Groups have no status tabs; the
// query searches name and description.
func (h *Handler) ServeGroupsList(w http.ResponseWriter, r *http.Request) {
	// The query is matched as typed, surrounding spaces included.
	q := r.URL.Query().Get("q")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Catalog.Groups(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list groups failed", err, "Groups could not be loaded.", navigation.PathDashboard)
		return
	}

	data := buildList(all, q)
	h.Metrics.ObserveList("groups", search.Active(q), data.Shown)
	h.Log.Debug("groups listed", zap.String("q", q), zap.Int("results", data.Shown))

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "groups_results", data)
		return
	}

	data.BaseVM = viewdata.NewBaseVM(w, r, "Groups", navigation.PathDashboard)
	templates.Render(w, r, "groups_list", data)
}

func buildList(all []models.Group, q string) groupListData {
	shown := search.Filter(all, search.Groups, "", q)
	items := make([]groupListItem, 0, len(shown))
	for _, g := range shown {
		items = append(items, toItem(g))
	}

	data := groupListData{
		Controls: viewdata.ListControls{
			Action:      navigation.PathGroups,
			Target:      resultsTarget,
			Placeholder: "Search groups...",
			Query:       q,
		},
		Groups: items,
		Shown:  len(items),
		Total:  len(all),
	}
	for _, g := range all {
		data.TotalMembers += g.MemberCount
		data.ActiveTotal += g.ActiveConsultations
	}
	return data
}

func toItem(g models.Group) groupListItem {
	return groupListItem{
		ID:                  g.ID,
		Name:                g.Name,
		Description:         g.Description,
		MemberCount:         g.MemberCount,
		ActiveConsultations: g.ActiveConsultations,
		Access:              badges.AccessLevel(g.AccessLevel),
		LastActivity:        g.LastActivity,
		Members:             g.PreviewMembers(),
		Overflow:            g.OverflowCount(),
	}
}
