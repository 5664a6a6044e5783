package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/search"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWith(t, nil, args...)
}

func runWith(t *testing.T, opt func(*cli), args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	var opts []func(*cli)
	if opt != nil {
		opts = append(opts, opt)
	}
	cmd := newRootCmd(&out, &errOut, opts...)
	cmd.SetArgs(append(args, "--color=false"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestConsultations_JSONByStatus(t *testing.T) {
	out, err := run(t, "consultations", "--status", "active", "--format", "json")
	require.NoError(t, err)

	var got []consultationRecord
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Clinical Handover Policy v2.1", got[0].Title)
	assert.Equal(t, "Patient Safety Protocols", got[1].Title)
	for _, r := range got {
		assert.Equal(t, models.ConsultationActive, r.Status)
		assert.Equal(t, string(badges.ToneConsultationActive), r.StatusTone)
	}
}

func TestConsultations_AllStatusIsUnfiltered(t *testing.T) {
	out, err := run(t, "consultations", "--status", " ALL ", "-o", "json")
	require.NoError(t, err)

	var got []consultationRecord
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 5)
}

func TestConsultations_UnknownStatus(t *testing.T) {
	_, err := run(t, "consultations", "--status", "closed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown status "closed"`)
}

func TestConsultations_TextTable(t *testing.T) {
	out, err := run(t, "consultations", "--q", "safety")
	require.NoError(t, err)
	assert.Contains(t, out, "Patient Safety Protocols")
	assert.NotContains(t, out, "Emergency Response Protocol")
	assert.Contains(t, out, "of 5 consultations")
}

func TestFeedback_YAMLByStatus(t *testing.T) {
	out, err := run(t, "feedback", "--status", "pending", "--format", "yaml")
	require.NoError(t, err)

	var got []feedbackRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, models.FeedbackPending, r.Status)
		assert.Equal(t, string(badges.ToneWarning), r.StatusTone)
	}
}

func TestGroups_Query(t *testing.T) {
	out, err := run(t, "groups", "-q", "quality")
	require.NoError(t, err)
	assert.Contains(t, out, "Quality Champs")
	assert.NotContains(t, out, "Medical Staff")
	assert.Contains(t, out, "1 of 5 groups")
}

func TestRoot_RejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "groups", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown --format")
}

func TestAudit_SeedCatalogPasses(t *testing.T) {
	out, err := run(t, "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "0 failed")
}

func TestAudit_JSONReport(t *testing.T) {
	out, err := run(t, "audit", "-o", "json")
	require.NoError(t, err)

	var rep struct {
		Total int `json:"total"`
		Fail  int `json:"fail"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Positive(t, rep.Total)
	assert.Zero(t, rep.Fail)
}

func TestAudit_CatalogOpenError(t *testing.T) {
	boom := errors.New("store offline")
	_, err := runWith(t, func(c *cli) {
		c.openCatalog = func(context.Context) (catalog.Reader, func(), error) {
			return nil, nil, boom
		}
	}, "audit")
	assert.ErrorIs(t, err, boom)
}

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"all", "", false},
		{" Review ", models.ConsultationReview, false},
		{"archived", models.ConsultationArchived, false},
		{"pending", "", true},
	}
	for _, tt := range tests {
		got, err := resolveStatus(search.ConsultationTabs, tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		assert.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestToneColors_CoverEveryTone(t *testing.T) {
	for _, tone := range badges.Tones {
		_, ok := toneColors[tone]
		assert.True(t, ok, "no colour for tone %q", tone)
	}
}

func TestStyles_DisabledIsPlain(t *testing.T) {
	s := newStyles(&bytes.Buffer{}, false)
	b := badges.ConsultationStatus(models.ConsultationActive)
	assert.Equal(t, models.ConsultationActive, s.badge(b))
	assert.Equal(t, "PASS", s.status("PASS"))
}

func TestShow_ConsultationJSON(t *testing.T) {
	out, err := run(t, "show", "consultation", "3", "-o", "json")
	require.NoError(t, err)

	var got models.Consultation
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3, got.ID)
	assert.Equal(t, "Patient Safety Protocols", got.Title)
}

func TestShow_GroupText(t *testing.T) {
	out, err := run(t, "show", "group", "all-nursing")
	require.NoError(t, err)
	assert.Contains(t, out, "All Nursing Staff")
	assert.Contains(t, out, "Jenny Martinez")
	assert.Contains(t, out, "more")
}

func TestShow_Errors(t *testing.T) {
	_, err := run(t, "show", "consultation", "99")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = run(t, "show", "feedback", "abc")
	assert.ErrorContains(t, err, "must be a number")

	_, err = run(t, "show", "widget", "1")
	assert.ErrorContains(t, err, "unknown record kind")
}
