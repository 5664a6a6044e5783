// internal/app/features/startconsultation/form.go
package startconsultation

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/consulthub/internal/app/system/consultform"
	"github.com/dalemusser/consulthub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/consulthub/internal/app/system/navigation"
	"github.com/dalemusser/consulthub/internal/app/system/normalize"
	"github.com/dalemusser/consulthub/internal/app/system/notify"
	"github.com/dalemusser/consulthub/internal/app/system/timeouts"
	"github.com/dalemusser/consulthub/internal/app/system/viewdata"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeForm handles GET /start-consultation and renders an empty form.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	opts, ok := h.groupOptions(w, r)
	if !ok {
		return
	}
	h.render(w, r, consultform.Form{}, opts, nil)
}

// HandleSubmit handles POST /start-consultation.
//
// A rejected submission pushes "Missing Information" and re-renders the form
// with every submitted value echoed back. An accepted one pushes the
// confirmation and redirects to the empty form.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	opts, ok := h.groupOptions(w, r)
	if !ok {
		return
	}

	form := h.readForm(w, r)

	n, err := consultform.Submit(&form, opts)
	var verr *consultform.ValidationError
	if errors.As(err, &verr) {
		h.Metrics.ObserveSubmission(verr.Missing)
		h.Log.Info("consultation rejected", zap.Strings("missing", verr.Missing))
		h.push(w, r, n)
		h.render(w, r, form, opts, verr.Missing)
		return
	}

	h.Metrics.ObserveSubmission(nil)
	h.Log.Info("consultation started", zap.String("notification", n.ID))
	h.push(w, r, n)
	http.Redirect(w, r, navigation.PathStartConsultation, http.StatusSeeOther)
}

// ServeGroupSummary handles GET /start-consultation/group?group=<id> and
// returns the sidebar card for the selected group.
func (h *Handler) ServeGroupSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	opts, err := h.Catalog.GroupOptions(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load group options failed", err, "Groups could not be loaded.", navigation.PathStartConsultation)
		return
	}
	templates.RenderSnippet(w, "start_group_summary", summarize(opts, normalize.GroupID(query.Get(r, "group"))))
}

// readForm extracts the submission. Only the file name is used; the body is
// capped at h.MaxBytes and an unreadable or oversize body yields an empty
// form, which the validator then rejects.
func (h *Handler) readForm(w http.ResponseWriter, r *http.Request) consultform.Form {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			h.Log.Warn("consultation upload too large", zap.Int64("limit", tooBig.Limit))
			return consultform.Form{}
		case errors.Is(err, http.ErrNotMultipart):
			if err := r.ParseForm(); err != nil {
				h.Log.Warn("consultation form unreadable", zap.Error(err))
				return consultform.Form{}
			}
		default:
			h.Log.Warn("consultation form unreadable", zap.Error(err))
			return consultform.Form{}
		}
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	return consultform.Form{
		FileName:  fileName(r),
		StartDate: strings.TrimSpace(r.FormValue(consultform.FieldStartDate)),
		EndDate:   strings.TrimSpace(r.FormValue(consultform.FieldEndDate)),
		GroupID:   normalize.GroupID(r.FormValue(consultform.FieldGroup)),
		Summary:   htmlsanitize.Clean(r.FormValue(consultform.FieldSummary)),
	}
}

// fileName prefers the uploaded part's name and falls back to the hidden
// file_name field that carries the choice across a re-render.
func fileName(r *http.Request) string {
	if f, hdr, err := r.FormFile(consultform.FieldFile); err == nil {
		f.Close()
		if name := normalize.FileName(hdr.Filename); name != "" {
			return name
		}
	}
	return normalize.FileName(r.FormValue("file_name"))
}

func (h *Handler) groupOptions(w http.ResponseWriter, r *http.Request) ([]models.GroupOption, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	opts, err := h.Catalog.GroupOptions(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load group options failed", err, "Groups could not be loaded.", navigation.PathDashboard)
		return nil, false
	}
	return opts, true
}

func (h *Handler) push(w http.ResponseWriter, r *http.Request, n notify.Notification) {
	if h.Notify == nil {
		return
	}
	if err := h.Notify.Push(w, r, n); err != nil {
		h.Log.Warn("push notification failed", zap.Error(err))
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, form consultform.Form, opts []models.GroupOption, missing []string) {
	data := newFormData(form, opts, missing, h.MaxBytes)
	data.BaseVM = viewdata.NewBaseVM(w, r, "Start Consultation", navigation.PathDashboard)
	templates.Render(w, r, "start_consultation", data)
}

// newFormData builds the page model without request state.
func newFormData(form consultform.Form, opts []models.GroupOption, missing []string, maxBytes int64) formData {
	flags := make(map[string]bool, len(missing))
	for _, f := range missing {
		flags[f] = true
	}
	return formData{
		Form:    form,
		State:   form.State(opts).String(),
		Missing: flags,
		Groups:  buildOptions(opts, form.GroupID),
		Summary: summarize(opts, form.GroupID),
		Steps:   processSteps,
		Accept:  strings.Join(consultform.AllowedExtensions, ","),
		MaxMB:   maxBytes >> 20,
	}
}
