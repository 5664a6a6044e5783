// internal/app/system/consultform/consultform.go
//
// Package consultform validates the "start consultation" form. Submission
// only checks that the required fields are present; there is no other
// business validation.
package consultform

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/consulthub/internal/app/system/notify"
	"github.com/dalemusser/consulthub/internal/domain/models"
)

// Field names, used both as form keys and in ValidationError.Missing.
const (
	FieldFile      = "file"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldGroup     = "group"
	FieldSummary   = "summary"
)

// RequiredFields lists the fields a submission must carry, in form order.
var RequiredFields = []string{FieldFile, FieldGroup, FieldStartDate, FieldEndDate}

// DateLayout is the calendar-date format produced by HTML date inputs.
const DateLayout = "2006-01-02"

// AllowedExtensions are the document types the form accepts.
var AllowedExtensions = []string{".pdf", ".doc", ".docx"}

// Notification texts.
const (
	MissingTitle       = "Missing Information"
	MissingDescription = "Please fill in all required fields before starting the consultation."
	StartedTitle       = "Consultation Started"
)

// StartedDescription is the success message for a document and group.
func StartedDescription(fileName, groupName string) string {
	return fmt.Sprintf("Consultation for \"%s\" has been initiated successfully. Notifications sent to %s.", fileName, groupName)
}

// Form holds the submitted values. Only the chosen file's name is kept;
// file contents are never read.
type Form struct {
	FileName  string
	StartDate string
	EndDate   string
	GroupID   string
	Summary   string
}

// State is the informal fill state of a form. It is descriptive only;
// readiness is decided at submit time.
type State int

const (
	StateEmpty State = iota
	StatePartiallyFilled
	StateReadyToSubmit
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartiallyFilled:
		return "partially-filled"
	case StateReadyToSubmit:
		return "ready"
	default:
		return "unknown"
	}
}

// ValidationError reports the required fields that were absent.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// AllowedFile reports whether name has an accepted document extension.
func AllowedFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(name)))
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// ParseDate parses a YYYY-MM-DD date. ok is false for blank or malformed input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// LookupGroup returns the option with the given id.
func LookupGroup(groups []models.GroupOption, id string) (models.GroupOption, bool) {
	if id == "" {
		return models.GroupOption{}, false
	}
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return models.GroupOption{}, false
}

// Missing returns the required fields that are absent. A file with a
// disallowed extension, an unparsable date or an unknown group id all
// count as absent. Date order is not checked.
func (f Form) Missing(groups []models.GroupOption) []string {
	var out []string
	if strings.TrimSpace(f.FileName) == "" || !AllowedFile(f.FileName) {
		out = append(out, FieldFile)
	}
	if _, ok := LookupGroup(groups, f.GroupID); !ok {
		out = append(out, FieldGroup)
	}
	if _, ok := ParseDate(f.StartDate); !ok {
		out = append(out, FieldStartDate)
	}
	if _, ok := ParseDate(f.EndDate); !ok {
		out = append(out, FieldEndDate)
	}
	return out
}

// State classifies f for display.
func (f Form) State(groups []models.GroupOption) State {
	missing := len(f.Missing(groups))
	switch {
	case missing == 0:
		return StateReadyToSubmit
	case missing == len(RequiredFields) && strings.TrimSpace(f.Summary) == "":
		return StateEmpty
	default:
		return StatePartiallyFilled
	}
}

// Reset clears every field to its empty initial value.
func (f *Form) Reset() {
	*f = Form{}
}

// Submit validates f against the selectable groups and returns the
// notification to show.
//
// On failure it returns a destructive "Missing Information" notification and
// a *ValidationError, leaving f untouched. On success it returns the
// confirmation naming the file and the group's display name, and resets f.
func Submit(f *Form, groups []models.GroupOption) (notify.Notification, error) {
	if missing := f.Missing(groups); len(missing) > 0 {
		return notify.New(MissingTitle, MissingDescription, notify.SeverityDestructive),
			&ValidationError{Missing: missing}
	}

	g, _ := LookupGroup(groups, f.GroupID)
	n := notify.New(StartedTitle, StartedDescription(strings.TrimSpace(f.FileName), g.Name), notify.SeverityNormal)
	f.Reset()
	return n, nil
}
