// internal/app/system/normalize/normalize.go
//
// Package normalize cleans raw request values before they reach filters
// and validators.
package normalize

import "strings"

// Status trims and lowercases a status or tab value. Record statuses are
// stored lowercase, so this is the only folding a tab value needs.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GroupID trims a selected group id. Ids are compared exactly.
func GroupID(s string) string {
	return strings.TrimSpace(s)
}

// FileName reduces an uploaded file name to its base name. Some browsers
// send a full client path.
func FileName(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	return s
}
