package dashboard

import (
	"testing"
	"time"

	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/dalemusser/consulthub/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestBuildDashboard_Stats(t *testing.T) {
	cat := testutil.Catalog(t)
	now := time.Date(2025, 9, 18, 9, 30, 0, 0, time.UTC)

	data := buildDashboard(cat.Consultations, cat.Feedback, cat.Groups, now, 2)

	got := map[string]int{}
	for _, s := range data.Stats {
		got[s.Title] = s.Value
	}
	want := map[string]int{
		"Active Consultations": 2,
		"Total Feedback":       5,
		"Consultation Groups":  5,
		"Pending Reviews":      1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if data.Attention.PendingReview != 2 {
		t.Errorf("pending feedback = %d, want 2", data.Attention.PendingReview)
	}
	if len(data.Actions) != 4 {
		t.Errorf("quick actions = %d, want 4", len(data.Actions))
	}
}

func TestRecent_SkipsDraftAndArchived(t *testing.T) {
	cons := testutil.Catalog(t).Consultations

	items := recent(cons, recentLimit)
	var titles []string
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	want := []string{
		"Clinical Handover Policy v2.1",
		"Medication Administration Guidelines",
		"Patient Safety Protocols",
	}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("recent mismatch (-want +got):\n%s", diff)
	}
	if items[0].Progress != 75 || items[1].Progress != 80 || items[2].Progress != 46 {
		t.Errorf("progress = %d/%d/%d", items[0].Progress, items[1].Progress, items[2].Progress)
	}
}

func TestEndingSoon(t *testing.T) {
	cons := []models.Consultation{
		{ID: 1, Status: models.ConsultationActive, EndDate: "2025-09-18"},   // today
		{ID: 2, Status: models.ConsultationReview, EndDate: "2025-09-20"},   // edge of window
		{ID: 3, Status: models.ConsultationActive, EndDate: "2025-09-21"},   // outside
		{ID: 4, Status: models.ConsultationActive, EndDate: "2025-09-17"},   // already ended
		{ID: 5, Status: models.ConsultationDraft, EndDate: "2025-09-19"},    // wrong status
		{ID: 6, Status: models.ConsultationArchived, EndDate: "2025-09-19"}, // wrong status
		{ID: 7, Status: models.ConsultationActive, EndDate: "soon"},         // unparsable
	}
	now := time.Date(2025, 9, 18, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		days int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{7, 3},
	}
	for _, tt := range tests {
		if got := endingSoon(cons, now, tt.days); got != tt.want {
			t.Errorf("endingSoon(days=%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}
