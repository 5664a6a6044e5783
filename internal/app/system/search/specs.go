// internal/app/system/search/specs.go
package search

import "github.com/dalemusser/consulthub/internal/domain/models"

// Consultations filters by status and searches title, description and group.
var Consultations = Spec[models.Consultation]{
	Status: func(c models.Consultation) string { return c.Status },
	Fields: func(c models.Consultation) []string {
		return []string{c.Title, c.Description, c.Group}
	},
}

// Feedback filters by status and searches document title, body, submitter
// and section.
var Feedback = Spec[models.Feedback]{
	Status: func(f models.Feedback) string { return f.Status },
	Fields: func(f models.Feedback) []string {
		return []string{f.DocumentTitle, f.Body, f.SubmittedBy, f.Section}
	},
}

// Groups has no status filter and searches name and description.
var Groups = Spec[models.Group]{
	Fields: func(g models.Group) []string {
		return []string{g.Name, g.Description}
	},
}
