// internal/app/features/consultations/templates.go
package consultations

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "consultations",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
