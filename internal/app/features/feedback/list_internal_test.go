package feedback

import (
	"testing"

	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/search"
	"github.com/dalemusser/consulthub/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func rowIDs(rows []feedbackRow) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func statCounts(tiles []statTile) []int {
	out := make([]int, 0, len(tiles))
	for _, s := range tiles {
		out = append(out, s.Count)
	}
	return out
}

func TestBuildList(t *testing.T) {
	all := testutil.Catalog(t).Feedback

	tests := []struct {
		name      string
		status    string
		q         string
		wantIDs   []int
		wantStats []int // total, pending, under review, reviewed
	}{
		{"identity", "", "", []int{1, 2, 3, 4, 5}, []int{5, 2, 1, 2}},
		{"pending tab", "pending", "", []int{1, 3}, []int{5, 2, 1, 2}},
		{"under-review tab", "under-review", "", []int{5}, []int{5, 2, 1, 2}},
		{"document title search", "", "patient safety", []int{3, 5}, []int{2, 1, 1, 0}},
		{"submitter search", "", "mitchell", []int{1}, []int{1, 1, 0, 0}},
		{"section search within tab", "reviewed", "section", []int{2, 4}, []int{5, 2, 1, 2}},
		{"no match", "", "zzz", []int{}, []int{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildList(all, tt.status, tt.q)
			if diff := cmp.Diff(tt.wantIDs, rowIDs(data.Rows)); diff != "" {
				t.Errorf("row ids mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantStats, statCounts(data.Stats)); diff != "" {
				t.Errorf("stat tiles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildList_TabsMatchStats(t *testing.T) {
	all := testutil.Catalog(t).Feedback
	data := buildList(all, "", "")

	counts := map[string]int{}
	for _, tab := range data.Controls.Tabs {
		counts[tab.Value] = tab.Count
	}
	want := map[string]int{search.TabAll: 5, "pending": 2, "under-review": 1, "reviewed": 2}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("tab counts mismatch (-want +got):\n%s", diff)
	}
}

func TestToRow(t *testing.T) {
	all := testutil.Catalog(t).Feedback

	first := toRow(all[0])
	if !first.Pending {
		t.Error("pending feedback should offer review actions")
	}
	if first.Status.Tone != badges.ToneWarning {
		t.Errorf("pending tone = %q", first.Status.Tone)
	}
	if first.Category.Icon != badges.IconMessageSquare {
		t.Errorf("suggestion icon = %q", first.Category.Icon)
	}

	second := toRow(all[1])
	if second.Pending {
		t.Error("reviewed feedback should not offer review actions")
	}
	if second.Priority.Tone != badges.ToneSuccess {
		t.Errorf("feedback low priority tone = %q, want success", second.Priority.Tone)
	}
}
