// internal/app/features/dashboard/overview.go
package dashboard

import (
	"net/http"
	"time"

	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/consultform"
	"github.com/dalemusser/consulthub/internal/app/system/navigation"
	"github.com/dalemusser/consulthub/internal/app/system/timeouts"
	"github.com/dalemusser/consulthub/internal/app/system/viewdata"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var quickActions = []quickAction{
	{Label: "Start New Consultation", Path: navigation.PathStartConsultation, Icon: badges.IconFileText},
	{Label: "Manage Groups", Path: navigation.PathGroups, Icon: badges.IconUsers},
	{Label: "Review Feedback", Path: navigation.PathFeedback, Icon: badges.IconMessageSquare},
	{Label: "View Consultations", Path: navigation.PathConsultations, Icon: badges.IconClock},
}

// ServeDashboard handles GET /. The three record lists load concurrently.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "dashboard load")
	defer cancel()

	var (
		cons   []models.Consultation
		fbs    []models.Feedback
		groups []models.Group
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cons, err = h.Catalog.Consultations(gctx)
		return err
	})
	g.Go(func() (err error) {
		fbs, err = h.Catalog.Feedback(gctx)
		return err
	})
	g.Go(func() (err error) {
		groups, err = h.Catalog.Groups(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.ErrLog.LogServerError(w, r, "load dashboard failed", err, "The dashboard could not be loaded.", navigation.PathDashboard)
		return
	}

	data := buildDashboard(cons, fbs, groups, h.Now(), h.EndingSoonDays)
	data.BaseVM = viewdata.NewBaseVM(w, r, "Dashboard", navigation.PathDashboard)
	data.FirstName = viewdata.Site().FirstName()

	h.Log.Debug("dashboard served",
		zap.Int("consultations", len(cons)),
		zap.Int("feedback", len(fbs)),
		zap.Int("groups", len(groups)))

	templates.Render(w, r, "dashboard", data)
}

func buildDashboard(cons []models.Consultation, fbs []models.Feedback, groups []models.Group, now time.Time, days int) dashboardData {
	var active, review int
	for _, c := range cons {
		switch c.Status {
		case models.ConsultationActive:
			active++
		case models.ConsultationReview:
			review++
		}
	}

	return dashboardData{
		Stats: []statCard{
			{Title: "Active Consultations", Value: active, Description: "Currently in progress", Icon: badges.IconFileText, Tone: badges.ToneConsultationActive},
			{Title: "Total Feedback", Value: len(fbs), Description: "Responses received", Icon: badges.IconMessageSquare, Tone: badges.ToneInfo},
			{Title: "Consultation Groups", Value: len(groups), Description: "Active groups", Icon: badges.IconUsers, Tone: badges.ToneSuccess},
			{Title: "Pending Reviews", Value: review, Description: "Consultations in review", Icon: badges.IconClock, Tone: badges.ToneWarning},
		},
		Recent:  recent(cons, recentLimit),
		Actions: quickActions,
		Attention: attention{
			EndingSoon:     endingSoon(cons, now, days),
			EndingSoonDays: days,
			PendingReview:  countFeedback(fbs, models.FeedbackPending),
		},
	}
}

// recent returns the first n consultations that are neither draft nor
// archived, in source order.
func recent(cons []models.Consultation, n int) []recentItem {
	out := make([]recentItem, 0, n)
	for _, c := range cons {
		if len(out) == n {
			break
		}
		if c.Status == models.ConsultationDraft || c.Status == models.ConsultationArchived {
			continue
		}
		out = append(out, recentItem{
			Title:     c.Title,
			Group:     c.Group,
			Status:    badges.ConsultationStatus(c.Status),
			EndDate:   c.EndDate,
			Responses: c.Responses,
			Target:    c.TargetResponses,
			Progress:  c.Progress(),
		})
	}
	return out
}

// endingSoon counts active or in-review consultations whose end date falls
// between today and today+days inclusive. Dates are calendar dates, compared
// in now's location.
func endingSoon(cons []models.Consultation, now time.Time, days int) int {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	limit := today.AddDate(0, 0, days)

	n := 0
	for _, c := range cons {
		if c.Status != models.ConsultationActive && c.Status != models.ConsultationReview {
			continue
		}
		end, ok := consultform.ParseDate(c.EndDate)
		if !ok {
			continue
		}
		if !end.Before(today) && !end.After(limit) {
			n++
		}
	}
	return n
}

func countFeedback(fbs []models.Feedback, status string) int {
	n := 0
	for _, f := range fbs {
		if f.Status == status {
			n++
		}
	}
	return n
}
