// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize reduces user-supplied text to plain text before it is
// echoed back into a page.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict drops every element and attribute. Policies are safe for
// concurrent use once built.
var strict = bluemonday.StrictPolicy()

// PlainText strips all markup from s and returns unescaped text, ready for
// html/template to escape exactly once.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strict.Sanitize(s))
}

// IsPlainText reports whether s carries no markup.
func IsPlainText(s string) bool {
	return PlainText(s) == s
}

// Clean is PlainText with surrounding whitespace trimmed.
func Clean(s string) string {
	return strings.TrimSpace(PlainText(s))
}
