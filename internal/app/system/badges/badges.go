// internal/app/system/badges/badges.go
//
// Package badges maps categorical record fields to display tokens. Every
// mapping is an explicit table; lookups of unknown values fall back to a
// fixed default and never fail.
package badges

import "github.com/dalemusser/consulthub/internal/domain/models"

// Tone is a colour token. Templates render it as the CSS class badge-<tone>.
type Tone string

const (
	ToneMuted       Tone = "muted"
	ToneSuccess     Tone = "success"
	ToneInfo        Tone = "info"
	ToneWarning     Tone = "warning"
	ToneDestructive Tone = "destructive"

	ToneConsultationActive   Tone = "consultation-active"
	ToneConsultationReview   Tone = "consultation-review"
	ToneConsultationDraft    Tone = "consultation-draft"
	ToneConsultationArchived Tone = "consultation-archived"
)

// Tones lists every token the stylesheet defines.
var Tones = []Tone{
	ToneMuted, ToneSuccess, ToneInfo, ToneWarning, ToneDestructive,
	ToneConsultationActive, ToneConsultationReview, ToneConsultationDraft, ToneConsultationArchived,
}

// Icon names an icon in the sprite sheet.
type Icon string

const (
	IconNone          Icon = ""
	IconClock         Icon = "clock"
	IconEye           Icon = "eye"
	IconFileText      Icon = "file-text"
	IconCheckCircle   Icon = "check-circle"
	IconAlertTriangle Icon = "alert-triangle"
	IconThumbsUp      Icon = "thumbs-up"
	IconMessageSquare Icon = "message-square"
	IconFlag          Icon = "flag"
	IconShield        Icon = "shield"
	IconUsers         Icon = "users"
	IconMail          Icon = "mail"
)

// Badge is what a template needs to draw a categorical value.
type Badge struct {
	Label string
	Tone  Tone
	Icon  Icon
}

// Class is the CSS class for the badge tone.
func (b Badge) Class() string {
	return b.Tone.BadgeClass()
}

type toneClass struct {
	badge string
	tile  string
}

// toneClasses spells out every class the stylesheet defines per tone.
var toneClasses = map[Tone]toneClass{
	ToneMuted:                {"badge-muted", "tile-muted"},
	ToneSuccess:              {"badge-success", "tile-success"},
	ToneInfo:                 {"badge-info", "tile-info"},
	ToneWarning:              {"badge-warning", "tile-warning"},
	ToneDestructive:          {"badge-destructive", "tile-destructive"},
	ToneConsultationActive:   {"badge-consultation-active", "tile-consultation-active"},
	ToneConsultationReview:   {"badge-consultation-review", "tile-consultation-review"},
	ToneConsultationDraft:    {"badge-consultation-draft", "tile-consultation-draft"},
	ToneConsultationArchived: {"badge-consultation-archived", "tile-consultation-archived"},
}

func (t Tone) classes() toneClass {
	if c, ok := toneClasses[t]; ok {
		return c
	}
	return toneClasses[ToneMuted]
}

// BadgeClass is the badge CSS class for t. Unknown tones get the muted class.
func (t Tone) BadgeClass() string { return t.classes().badge }

// TileClass is the stat tile CSS class for t. Unknown tones get the muted class.
func (t Tone) TileClass() string { return t.classes().tile }

type entry struct {
	tone Tone
	icon Icon
}

type table struct {
	rows map[string]entry
	def  entry
}

func (t table) lookup(v string) Badge {
	e, ok := t.rows[v]
	if !ok {
		e = t.def
	}
	return Badge{Label: v, Tone: e.tone, Icon: e.icon}
}

func (t table) has(v string) bool {
	_, ok := t.rows[v]
	return ok
}

var consultationStatus = table{
	rows: map[string]entry{
		models.ConsultationActive:   {ToneConsultationActive, IconClock},
		models.ConsultationReview:   {ToneConsultationReview, IconEye},
		models.ConsultationDraft:    {ToneConsultationDraft, IconFileText},
		models.ConsultationArchived: {ToneConsultationArchived, IconCheckCircle},
	},
	def: entry{ToneMuted, IconAlertTriangle},
}

var feedbackStatus = table{
	rows: map[string]entry{
		models.FeedbackPending:     {ToneWarning, IconNone},
		models.FeedbackReviewed:    {ToneSuccess, IconNone},
		models.FeedbackUnderReview: {ToneInfo, IconNone},
		models.FeedbackDismissed:   {ToneMuted, IconNone},
	},
	def: entry{ToneMuted, IconNone},
}

// Consultations show low priority as muted, feedback shows it as success.
// The two tables are kept apart on purpose.
var consultationPriority = table{
	rows: map[string]entry{
		models.PriorityHigh:   {ToneDestructive, IconNone},
		models.PriorityMedium: {ToneWarning, IconNone},
		models.PriorityLow:    {ToneMuted, IconNone},
	},
	def: entry{ToneMuted, IconNone},
}

var feedbackPriority = table{
	rows: map[string]entry{
		models.PriorityHigh:   {ToneDestructive, IconNone},
		models.PriorityMedium: {ToneWarning, IconNone},
		models.PriorityLow:    {ToneSuccess, IconNone},
	},
	def: entry{ToneMuted, IconNone},
}

var feedbackCategory = table{
	rows: map[string]entry{
		models.CategoryPositive:   {ToneSuccess, IconThumbsUp},
		models.CategorySuggestion: {ToneInfo, IconMessageSquare},
		models.CategoryConcern:    {ToneWarning, IconFlag},
		models.CategoryCritical:   {ToneDestructive, IconFlag},
	},
	def: entry{ToneMuted, IconMessageSquare},
}

var accessLevel = table{
	rows: map[string]entry{
		models.AccessFull:     {ToneConsultationActive, IconShield},
		models.AccessStandard: {ToneInfo, IconUsers},
		models.AccessReadOnly: {ToneMuted, IconMail},
	},
	def: entry{ToneMuted, IconUsers},
}

func ConsultationStatus(v string) Badge   { return consultationStatus.lookup(v) }
func FeedbackStatus(v string) Badge       { return feedbackStatus.lookup(v) }
func ConsultationPriority(v string) Badge { return consultationPriority.lookup(v) }
func FeedbackPriority(v string) Badge     { return feedbackPriority.lookup(v) }
func FeedbackCategory(v string) Badge     { return feedbackCategory.lookup(v) }
func AccessLevel(v string) Badge          { return accessLevel.lookup(v) }

// Known reports whether v has an explicit row in the named domain's table.
// The audit report uses it to flag records outside the known enumerations.
func Known(domain Domain, v string) bool {
	t, ok := tables[domain]
	return ok && t.has(v)
}

// Domain names one of the categorical fields.
type Domain string

const (
	DomainConsultationStatus   Domain = "consultation-status"
	DomainFeedbackStatus       Domain = "feedback-status"
	DomainConsultationPriority Domain = "consultation-priority"
	DomainFeedbackPriority     Domain = "feedback-priority"
	DomainFeedbackCategory     Domain = "feedback-category"
	DomainAccessLevel          Domain = "access-level"
)

var tables = map[Domain]table{
	DomainConsultationStatus:   consultationStatus,
	DomainFeedbackStatus:       feedbackStatus,
	DomainConsultationPriority: consultationPriority,
	DomainFeedbackPriority:     feedbackPriority,
	DomainFeedbackCategory:     feedbackCategory,
	DomainAccessLevel:          accessLevel,
}

// Lookup maps v through the named domain's table. An unknown domain yields
// the muted default with no icon.
func Lookup(domain Domain, v string) Badge {
	t, ok := tables[domain]
	if !ok {
		return Badge{Label: v, Tone: ToneMuted}
	}
	return t.lookup(v)
}
