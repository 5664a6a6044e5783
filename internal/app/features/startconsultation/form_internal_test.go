package startconsultation

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/consulthub/internal/app/system/consultform"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"go.uber.org/zap"
)

var testOptions = []models.GroupOption{
	{ID: "clinical-leads", Name: "Clinical Leads", MemberCount: 12},
	{ID: "quality-champs", Name: "Quality Champs", MemberCount: 8},
}

func TestReadForm_FallsBackToHiddenFileName(t *testing.T) {
	h := &Handler{Log: zap.NewNop(), MaxBytes: DefaultMaxUploadBytes}

	vals := url.Values{
		"file_name":  {`C:\Users\kerry\Policy.docx`},
		"start_date": {" 2025-10-01 "},
		"end_date":   {"2025-10-15"},
		"group":      {" quality-champs "},
		"summary":    {"<script>alert(1)</script>Please review <em>section 2</em>"},
	}
	req := httptest.NewRequest("POST", "/start-consultation", strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got := h.readForm(httptest.NewRecorder(), req)
	want := consultform.Form{
		FileName:  "Policy.docx",
		StartDate: "2025-10-01",
		EndDate:   "2025-10-15",
		GroupID:   "quality-champs",
		Summary:   "Please review section 2",
	}
	if got != want {
		t.Errorf("readForm = %+v\nwant %+v", got, want)
	}
}

func TestNewFormData_EchoesRejectedSubmission(t *testing.T) {
	form := consultform.Form{StartDate: "2025-10-01", EndDate: "2025-10-15", GroupID: "clinical-leads"}
	data := newFormData(form, testOptions, []string{consultform.FieldFile}, DefaultMaxUploadBytes)

	if data.Form != form {
		t.Errorf("form not echoed: %+v", data.Form)
	}
	if !data.Missing[consultform.FieldFile] || data.Missing[consultform.FieldGroup] {
		t.Errorf("missing flags = %v", data.Missing)
	}
	if !data.Groups[0].Selected || data.Groups[1].Selected {
		t.Errorf("selection = %+v", data.Groups)
	}
	if !data.Summary.Selected || data.Summary.Name != "Clinical Leads" || data.Summary.MemberCount != 12 {
		t.Errorf("summary = %+v", data.Summary)
	}
	if data.State != "partially-filled" {
		t.Errorf("state = %q", data.State)
	}
	if data.Accept != ".pdf,.doc,.docx" || data.MaxMB != 10 {
		t.Errorf("accept/max = %q/%d", data.Accept, data.MaxMB)
	}
	if len(data.Steps) != 4 {
		t.Errorf("steps = %d, want 4", len(data.Steps))
	}
}

func TestNewFormData_EmptyForm(t *testing.T) {
	data := newFormData(consultform.Form{}, testOptions, nil, DefaultMaxUploadBytes)
	if data.State != "empty" {
		t.Errorf("state = %q, want empty", data.State)
	}
	if data.Summary.Selected {
		t.Error("no group selected, summary should be empty")
	}
	for _, g := range data.Groups {
		if g.Selected {
			t.Errorf("option %q unexpectedly selected", g.ID)
		}
	}
}

func TestSummarize_UnknownGroup(t *testing.T) {
	if s := summarize(testOptions, "nope"); s.Selected {
		t.Errorf("summary = %+v", s)
	}
}
