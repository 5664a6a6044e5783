package search

import (
	"testing"

	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/dalemusser/consulthub/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func titles(cs []models.Consultation) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Title)
	}
	return out
}

func TestFilter_Identity(t *testing.T) {
	cat := testutil.Catalog(t)
	got := Filter(cat.Consultations, Consultations, "", "")
	if diff := cmp.Diff(cat.Consultations, got); diff != "" {
		t.Errorf("no filter and no query should be identity (-want +got):\n%s", diff)
	}
}

func TestFilter_QueryWhitespaceIsSignificant(t *testing.T) {
	items := []models.Group{
		{Name: "Patient Safety"},
		{Name: "Patient"},
		{Name: "NoSpaceHere"},
	}
	names := func(gs []models.Group) []string {
		out := make([]string, 0, len(gs))
		for _, g := range gs {
			out = append(out, g.Name)
		}
		return out
	}

	tests := []struct {
		q    string
		want []string
	}{
		{"patient ", []string{"Patient Safety"}},
		{" safety", []string{"Patient Safety"}},
		{" ", []string{"Patient Safety"}},
		{"   \t", []string{}},
		{"", []string{"Patient Safety", "Patient", "NoSpaceHere"}},
	}
	for _, tt := range tests {
		got := names(Filter(items, Groups, "", tt.q))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("q=%q (-want +got):\n%s", tt.q, diff)
		}
		if n := Count(items, Groups, "", tt.q); n != len(tt.want) {
			t.Errorf("Count(q=%q) = %d, want %d", tt.q, n, len(tt.want))
		}
	}
}

func TestActive(t *testing.T) {
	for q, want := range map[string]bool{"": false, "  \t": false, "a": true, " a ": true} {
		if got := Active(q); got != want {
			t.Errorf("Active(%q) = %v, want %v", q, got, want)
		}
	}
}

func TestFilter_ConsultationsByStatus(t *testing.T) {
	cat := testutil.Catalog(t)
	for _, status := range models.ConsultationStatuses {
		got := Filter(cat.Consultations, Consultations, status, "")
		for _, c := range got {
			if c.Status != status {
				t.Errorf("status %q: got record with status %q", status, c.Status)
			}
		}
	}

	got := titles(Filter(cat.Consultations, Consultations, models.ConsultationActive, ""))
	want := []string{"Clinical Handover Policy v2.1", "Patient Safety Protocols"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("active (-want +got):\n%s", diff)
	}
}

func TestFilter_ConsultationsQuery(t *testing.T) {
	cat := testutil.Catalog(t)
	tests := []struct {
		name string
		q    string
		want []string
	}{
		{"title match", "handover", []string{"Clinical Handover Policy v2.1"}},
		{"case-insensitive", "PATIENT", []string{"Clinical Handover Policy v2.1", "Patient Safety Protocols"}},
		{"description match", "code blue", []string{"Emergency Response Protocol"}},
		{"group match", "quality champs", []string{"Medication Administration Guidelines"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Filter(cat.Consultations, Consultations, "", tt.q))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter(%q) (-want +got):\n%s", tt.q, diff)
			}
		})
	}
}

func TestFilter_StatusAndQueryCombine(t *testing.T) {
	cat := testutil.Catalog(t)
	got := titles(Filter(cat.Consultations, Consultations, models.ConsultationActive, "safety"))
	want := []string{"Patient Safety Protocols"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	cat := testutil.Catalog(t)
	for _, q := range []string{"", "policy", "Nursing", "e"} {
		once := Filter(cat.Feedback, Feedback, "", q)
		twice := Filter(once, Feedback, "", q)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("q=%q not idempotent (-once +twice):\n%s", q, diff)
		}
	}
}

func TestFilter_FeedbackFields(t *testing.T) {
	cat := testutil.Catalog(t)
	tests := []struct {
		name string
		q    string
		want int
	}{
		{"document title", "Patient Safety", 2},
		{"body", "emergency handover", 1},
		{"submitter", "mitchell", 1},
		{"section", "incident reporting", 1},
		{"role is not searchable", "Chief Medical Officer", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Filter(cat.Feedback, Feedback, "", tt.q)); got != tt.want {
				t.Errorf("Filter(%q) returned %d, want %d", tt.q, got, tt.want)
			}
		})
	}
}

func TestFilter_GroupsIgnoreStatus(t *testing.T) {
	cat := testutil.Catalog(t)
	got := Filter(cat.Groups, Groups, "active", "")
	if len(got) != len(cat.Groups) {
		t.Errorf("groups have no status filter: got %d, want %d", len(got), len(cat.Groups))
	}
	got = Filter(cat.Groups, Groups, "", "nursing")
	for _, g := range got {
		if !Matches("nursing", g.Name, g.Description) {
			t.Errorf("group %q does not match", g.Name)
		}
	}
	if len(got) == 0 {
		t.Error("expected at least one nursing group")
	}
}

func TestFilter_DoesNotAlias(t *testing.T) {
	cat := testutil.Catalog(t)
	got := Filter(cat.Consultations, Consultations, "", "")
	got[0].Title = "changed"
	if cat.Consultations[0].Title == "changed" {
		t.Error("Filter result aliases its input")
	}
}

func TestMatches_UnicodeFold(t *testing.T) {
	if !Matches("ÉCOLE", "Une école de santé") {
		t.Error("expected non-ASCII letters to fold")
	}
	if !Matches("", "anything") {
		t.Error("empty query should match")
	}
	if Matches("x") {
		t.Error("no fields should not match a non-empty query")
	}
}

func TestTabs_CountsTrackQuery(t *testing.T) {
	cat := testutil.Catalog(t)
	for _, q := range []string{"", "policy", "protocol", "nothing-here"} {
		tabs := Tabs(cat.Consultations, Consultations, ConsultationTabs, "", q)
		sum := 0
		for _, tab := range tabs {
			want := len(Filter(cat.Consultations, Consultations, TabDef{Value: tab.Value}.Status(), q))
			if tab.Count != want {
				t.Errorf("q=%q tab %q: count %d, want %d", q, tab.Value, tab.Count, want)
			}
			if tab.Value != TabAll {
				sum += tab.Count
			}
		}
		if tabs[0].Count != sum {
			t.Errorf("q=%q: All=%d, sum of status tabs=%d", q, tabs[0].Count, sum)
		}
	}
}

func TestTabs_ActiveAndFallback(t *testing.T) {
	cat := testutil.Catalog(t)
	tabs := Tabs(cat.Feedback, Feedback, FeedbackTabs, "under-review", "")
	for _, tab := range tabs {
		if tab.Active != (tab.Value == "under-review") {
			t.Errorf("tab %q active=%v", tab.Value, tab.Active)
		}
	}

	if got := ResolveTab(FeedbackTabs, "bogus"); got != TabAll {
		t.Errorf("ResolveTab(bogus) = %q, want %q", got, TabAll)
	}
	if got := ResolveTab(FeedbackTabs, ""); got != TabAll {
		t.Errorf("ResolveTab(\"\") = %q, want %q", got, TabAll)
	}
}
