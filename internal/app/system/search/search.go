// internal/app/system/search/search.go
//
// Package search implements the list-page filter: an optional exact status
// match combined with a case-insensitive substring query over a fixed set
// of text fields. Results keep source order; there is no ranking.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Spec describes how a record type is filtered.
type Spec[T any] struct {
	// Status returns the field compared against the tab filter. Nil means
	// the record type has no status filter and any status is ignored.
	Status func(T) string
	// Fields returns the searchable text fields in a fixed order.
	Fields func(T) []string
}

// Active reports whether q holds anything besides whitespace. It only
// labels a request as a search for metrics and logs; matching always uses
// the raw query, so "patient " does not match "Patient".
func Active(q string) bool {
	return strings.TrimSpace(q) != ""
}

// Filter returns the records of items whose status equals status (when
// status is non-empty) and that match q (when q is non-empty). With neither
// it returns items unchanged. The result never aliases items.
func Filter[T any](items []T, spec Spec[T], status, q string) []T {
	folded := fold(q)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !keep(it, spec, status, folded) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Count is len(Filter(items, spec, status, q)) without building the slice.
func Count[T any](items []T, spec Spec[T], status, q string) int {
	folded := fold(q)
	n := 0
	for _, it := range items {
		if keep(it, spec, status, folded) {
			n++
		}
	}
	return n
}

// Matches reports whether any field contains q, ignoring case.
// An empty q matches everything.
func Matches(q string, fields ...string) bool {
	return matchesFolded(fold(q), fields)
}

func keep[T any](it T, spec Spec[T], status, foldedQ string) bool {
	if status != "" && spec.Status != nil && spec.Status(it) != status {
		return false
	}
	if foldedQ == "" || spec.Fields == nil {
		return true
	}
	return matchesFolded(foldedQ, spec.Fields(it))
}

func matchesFolded(foldedQ string, fields []string) bool {
	if foldedQ == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(fold(f), foldedQ) {
			return true
		}
	}
	return false
}

// fold applies Unicode case folding. A cases.Caser is stateful, so each
// call gets its own.
func fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}
