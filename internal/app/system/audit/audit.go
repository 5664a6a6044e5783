// internal/app/system/audit/audit.go
//
// Package audit runs self-checks against a live router and catalog and
// summarises them per category.
package audit

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/consultform"
	"github.com/dalemusser/consulthub/internal/app/system/navigation"
	"github.com/dalemusser/consulthub/internal/app/system/search"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// Status is the outcome of one check.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusWarning Status = "WARNING"
)

// Category names, in report order.
const (
	CategoryNavigation = "Navigation"
	CategoryData       = "Data"
	CategoryMappings   = "Presentation Mapping"
	CategoryIntegrity  = "Data Integrity"
	CategoryFiltering  = "Filtering"
	CategoryForm       = "Start Consultation"
)

// Result is one check.
type Result struct {
	Category    string `json:"category" yaml:"category"`
	Status      Status `json:"status" yaml:"status"`
	Description string `json:"description" yaml:"description"`
	Details     string `json:"details,omitempty" yaml:"details,omitempty"`
}

// CategorySummary groups the results of one category.
type CategorySummary struct {
	Name    string   `json:"name" yaml:"name"`
	Pass    int      `json:"pass" yaml:"pass"`
	Fail    int      `json:"fail" yaml:"fail"`
	Warning int      `json:"warning" yaml:"warning"`
	Results []Result `json:"results" yaml:"results"`
}

// Report is the full audit outcome.
type Report struct {
	Generated   time.Time         `json:"generated" yaml:"generated"`
	Categories  []CategorySummary `json:"categories" yaml:"categories"`
	Total       int               `json:"total" yaml:"total"`
	Pass        int               `json:"pass" yaml:"pass"`
	Fail        int               `json:"fail" yaml:"fail"`
	Warning     int               `json:"warning" yaml:"warning"`
	SuccessRate int               `json:"success_rate" yaml:"success_rate"`
}

// AllPassed reports whether no check failed. Warnings do not count.
func (r Report) AllPassed() bool {
	return r.Fail == 0
}

// Summarize groups results by category in first-seen order and computes
// totals. SuccessRate is round(100 * pass / total), or 0 with no results.
func Summarize(results []Result, now time.Time) Report {
	rep := Report{Generated: now, Total: len(results)}
	idx := map[string]int{}
	for _, res := range results {
		i, ok := idx[res.Category]
		if !ok {
			i = len(rep.Categories)
			idx[res.Category] = i
			rep.Categories = append(rep.Categories, CategorySummary{Name: res.Category})
		}
		c := &rep.Categories[i]
		c.Results = append(c.Results, res)
		switch res.Status {
		case StatusPass:
			c.Pass++
			rep.Pass++
		case StatusFail:
			c.Fail++
			rep.Fail++
		case StatusWarning:
			c.Warning++
			rep.Warning++
		}
	}
	if rep.Total > 0 {
		rep.SuccessRate = int(math.Round(100 * float64(rep.Pass) / float64(rep.Total)))
	}
	return rep
}

// Run loads the catalog and evaluates every check. routes may be nil, in
// which case navigation checks fail.
func Run(ctx context.Context, reader catalog.Reader, routes chi.Routes, now time.Time) (Report, error) {
	var (
		cons   []models.Consultation
		fb     []models.Feedback
		groups []models.Group
		opts   []models.GroupOption
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { cons, err = reader.Consultations(gctx); return })
	g.Go(func() (err error) { fb, err = reader.Feedback(gctx); return })
	g.Go(func() (err error) { groups, err = reader.Groups(gctx); return })
	g.Go(func() (err error) { opts, err = reader.GroupOptions(gctx); return })
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("audit: load catalog: %w", err)
	}

	var results []Result
	results = append(results, checkRoutes(routes)...)
	results = append(results, checkData(cons, fb, groups)...)
	results = append(results, checkMappings(cons, fb, groups)...)
	results = append(results, checkIntegrity(cons, groups)...)
	results = append(results, checkFiltering(cons, fb)...)
	results = append(results, checkForm(opts)...)
	return Summarize(results, now), nil
}

func pass(cat, desc, details string) Result {
	return Result{Category: cat, Status: StatusPass, Description: desc, Details: details}
}

func fail(cat, desc, details string) Result {
	return Result{Category: cat, Status: StatusFail, Description: desc, Details: details}
}

func warn(cat, desc, details string) Result {
	return Result{Category: cat, Status: StatusWarning, Description: desc, Details: details}
}

// RegisteredGET returns the set of GET patterns routes serves.
func RegisteredGET(routes chi.Routes) map[string]bool {
	out := map[string]bool{}
	if routes == nil {
		return out
	}
	_ = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if method == http.MethodGet {
			r := strings.TrimSuffix(route, "/")
			if r == "" {
				r = "/"
			}
			out[r] = true
		}
		return nil
	})
	return out
}

func checkRoutes(routes chi.Routes) []Result {
	registered := RegisteredGET(routes)
	out := make([]Result, 0, len(navigation.Routes))
	for _, it := range navigation.Routes {
		desc := fmt.Sprintf("%s route is registered", it.Name)
		if registered[it.Path] {
			out = append(out, pass(CategoryNavigation, desc, "GET "+it.Path))
		} else {
			out = append(out, fail(CategoryNavigation, desc, "no GET handler for "+it.Path))
		}
	}
	return out
}

func checkData(cons []models.Consultation, fb []models.Feedback, groups []models.Group) []Result {
	check := func(name string, n int) Result {
		desc := fmt.Sprintf("%s list is populated", name)
		if n == 0 {
			return fail(CategoryData, desc, "no records")
		}
		return pass(CategoryData, desc, fmt.Sprintf("%d records", n))
	}
	return []Result{
		check("Consultations", len(cons)),
		check("Feedback", len(fb)),
		check("Groups", len(groups)),
	}
}

func checkMappings(cons []models.Consultation, fb []models.Feedback, groups []models.Group) []Result {
	type mappingCheck struct {
		desc   string
		domain badges.Domain
		values map[string]string // record label -> value
	}
	consStatus := map[string]string{}
	consPrio := map[string]string{}
	for _, c := range cons {
		label := fmt.Sprintf("consultation %d", c.ID)
		consStatus[label] = c.Status
		consPrio[label] = c.Priority
	}
	fbStatus := map[string]string{}
	fbPrio := map[string]string{}
	fbCat := map[string]string{}
	for _, f := range fb {
		label := fmt.Sprintf("feedback %d", f.ID)
		fbStatus[label] = f.Status
		fbPrio[label] = f.Priority
		fbCat[label] = f.Category
	}
	access := map[string]string{}
	for _, g := range groups {
		access["group "+g.ID] = g.AccessLevel
	}

	checks := []mappingCheck{
		{"Consultation statuses have a display mapping", badges.DomainConsultationStatus, consStatus},
		{"Consultation priorities have a display mapping", badges.DomainConsultationPriority, consPrio},
		{"Feedback statuses have a display mapping", badges.DomainFeedbackStatus, fbStatus},
		{"Feedback priorities have a display mapping", badges.DomainFeedbackPriority, fbPrio},
		{"Feedback categories have a display mapping", badges.DomainFeedbackCategory, fbCat},
		{"Group access levels have a display mapping", badges.DomainAccessLevel, access},
	}

	out := make([]Result, 0, len(checks))
	for _, p := range checks {
		var bad []string
		for label, v := range p.values {
			if !badges.Known(p.domain, v) {
				bad = append(bad, fmt.Sprintf("%s=%q", label, v))
			}
		}
		if len(bad) > 0 {
			slices.Sort(bad)
			out = append(out, fail(CategoryMappings, p.desc, "unmapped: "+strings.Join(bad, ", ")))
			continue
		}
		out = append(out, pass(CategoryMappings, p.desc, fmt.Sprintf("%d values checked", len(p.values))))
	}
	return out
}

func checkIntegrity(cons []models.Consultation, groups []models.Group) []Result {
	var out []Result

	var unresolved []string
	for _, c := range cons {
		if _, ok := catalog.ResolveGroupName(groups, c.Group); !ok {
			unresolved = append(unresolved, fmt.Sprintf("%q (consultation %d)", c.Group, c.ID))
		}
	}
	const groupDesc = "Consultation groups resolve to a known group"
	if len(unresolved) > 0 {
		out = append(out, warn(CategoryIntegrity, groupDesc, "unresolved: "+strings.Join(unresolved, ", ")))
	} else {
		out = append(out, pass(CategoryIntegrity, groupDesc, ""))
	}

	var badProgress []string
	for _, c := range cons {
		if p := c.Progress(); p < 0 || p > 100 {
			badProgress = append(badProgress, fmt.Sprintf("consultation %d: %d%%", c.ID, p))
		}
	}
	const progDesc = "Consultation progress is within 0-100%"
	if len(badProgress) > 0 {
		out = append(out, fail(CategoryIntegrity, progDesc, strings.Join(badProgress, ", ")))
	} else {
		out = append(out, pass(CategoryIntegrity, progDesc, ""))
	}

	var overTarget []string
	for _, c := range cons {
		if c.Responses > c.TargetResponses {
			overTarget = append(overTarget, fmt.Sprintf("consultation %d: %d/%d", c.ID, c.Responses, c.TargetResponses))
		}
	}
	const targetDesc = "Responses do not exceed target"
	if len(overTarget) > 0 {
		out = append(out, warn(CategoryIntegrity, targetDesc, strings.Join(overTarget, ", ")))
	} else {
		out = append(out, pass(CategoryIntegrity, targetDesc, ""))
	}

	var oversized []string
	for _, g := range groups {
		if len(g.Members) > g.MemberCount {
			oversized = append(oversized, fmt.Sprintf("group %s: %d listed, %d counted", g.ID, len(g.Members), g.MemberCount))
		}
	}
	const memberDesc = "Member previews do not exceed member counts"
	if len(oversized) > 0 {
		out = append(out, warn(CategoryIntegrity, memberDesc, strings.Join(oversized, ", ")))
	} else {
		out = append(out, pass(CategoryIntegrity, memberDesc, ""))
	}
	return out
}

func checkFiltering(cons []models.Consultation, fb []models.Feedback) []Result {
	var out []Result

	tabs := search.Tabs(cons, search.Consultations, search.ConsultationTabs, search.TabAll, "")
	sum := 0
	all := 0
	for _, t := range tabs {
		if t.Value == search.TabAll {
			all = t.Count
			continue
		}
		sum += t.Count
	}
	const tabDesc = "Consultation tab counts sum to the All count"
	details := fmt.Sprintf("all=%d, tabs=%d", all, sum)
	if sum == all {
		out = append(out, pass(CategoryFiltering, tabDesc, details))
	} else {
		out = append(out, fail(CategoryFiltering, tabDesc, details))
	}

	const idemDesc = "Feedback search is idempotent"
	once := search.Filter(fb, search.Feedback, "", "policy")
	twice := search.Filter(once, search.Feedback, "", "policy")
	if len(once) == len(twice) {
		out = append(out, pass(CategoryFiltering, idemDesc, fmt.Sprintf("%d matches for %q", len(once), "policy")))
	} else {
		out = append(out, fail(CategoryFiltering, idemDesc, fmt.Sprintf("%d then %d", len(once), len(twice))))
	}
	return out
}

func checkForm(opts []models.GroupOption) []Result {
	var out []Result

	empty := consultform.Form{}
	_, err := consultform.Submit(&empty, opts)
	const emptyDesc = "Empty submission is rejected"
	if err != nil {
		out = append(out, pass(CategoryForm, emptyDesc, err.Error()))
	} else {
		out = append(out, fail(CategoryForm, emptyDesc, "accepted"))
	}

	const fullDesc = "Complete submission is accepted"
	if len(opts) == 0 {
		return append(out, fail(CategoryForm, fullDesc, "no group options"))
	}
	f := consultform.Form{FileName: "Audit.pdf", StartDate: "2025-01-01", EndDate: "2025-01-31", GroupID: opts[0].ID}
	n, err := consultform.Submit(&f, opts)
	switch {
	case err != nil:
		out = append(out, fail(CategoryForm, fullDesc, err.Error()))
	case f != (consultform.Form{}):
		out = append(out, fail(CategoryForm, fullDesc, "form not reset"))
	default:
		out = append(out, pass(CategoryForm, fullDesc, n.Description))
	}
	return out
}
