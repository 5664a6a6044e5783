package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dalemusser/consulthub/internal/app/system/badges"
)

// toneColors mirrors the --tone-* custom properties in public/css/app.css.
var toneColors = map[badges.Tone]lipgloss.Color{
	badges.ToneMuted:                lipgloss.Color("#64748b"),
	badges.ToneSuccess:              lipgloss.Color("#15803d"),
	badges.ToneInfo:                 lipgloss.Color("#0369a1"),
	badges.ToneWarning:              lipgloss.Color("#b45309"),
	badges.ToneDestructive:          lipgloss.Color("#b91c1c"),
	badges.ToneConsultationActive:   lipgloss.Color("#1d4ed8"),
	badges.ToneConsultationReview:   lipgloss.Color("#7c3aed"),
	badges.ToneConsultationDraft:    lipgloss.Color("#475569"),
	badges.ToneConsultationArchived: lipgloss.Color("#047857"),
}

// styles renders badges and headings for one output stream. The renderer
// drops colour on its own when out is not a terminal.
type styles struct {
	r       *lipgloss.Renderer
	enabled bool
	heading lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(out io.Writer, enabled bool) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		r:       r,
		enabled: enabled,
		heading: r.NewStyle().Bold(true),
		dim:     r.NewStyle().Foreground(toneColors[badges.ToneMuted]),
	}
}

func (s styles) badge(b badges.Badge) string {
	if !s.enabled {
		return b.Label
	}
	c, ok := toneColors[b.Tone]
	if !ok {
		c = toneColors[badges.ToneMuted]
	}
	return s.r.NewStyle().Foreground(c).Bold(true).Render(b.Label)
}

func (s styles) title(v string) string {
	if !s.enabled {
		return v
	}
	return s.heading.Render(v)
}

func (s styles) muted(v string) string {
	if !s.enabled {
		return v
	}
	return s.dim.Render(v)
}

func (s styles) status(st string) string {
	switch st {
	case "PASS":
		return s.badge(badges.Badge{Label: st, Tone: badges.ToneSuccess})
	case "FAIL":
		return s.badge(badges.Badge{Label: st, Tone: badges.ToneDestructive})
	default:
		return s.badge(badges.Badge{Label: st, Tone: badges.ToneWarning})
	}
}
