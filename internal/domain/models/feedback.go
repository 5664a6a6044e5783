// internal/domain/models/feedback.go
package models

// Feedback review statuses.
const (
	FeedbackPending     = "pending"
	FeedbackReviewed    = "reviewed"
	FeedbackUnderReview = "under-review"
	FeedbackDismissed   = "dismissed"
)

// FeedbackStatuses lists every known feedback status.
var FeedbackStatuses = []string{
	FeedbackPending,
	FeedbackUnderReview,
	FeedbackReviewed,
	FeedbackDismissed,
}

// Feedback categories.
const (
	CategoryPositive   = "positive"
	CategorySuggestion = "suggestion"
	CategoryConcern    = "concern"
	CategoryCritical   = "critical"
)

// FeedbackCategories lists every known feedback category.
var FeedbackCategories = []string{
	CategoryPositive,
	CategorySuggestion,
	CategoryConcern,
	CategoryCritical,
}

// Feedback is a comment submitted against a section of a consultation
// document.
type Feedback struct {
	ID            int    `bson:"_id" json:"id" yaml:"id"`
	Position      int    `bson:"position" json:"position" yaml:"-"`
	DocumentTitle string `bson:"document_title" json:"document_title" yaml:"document_title"`
	DocumentID    string `bson:"document_id" json:"document_id" yaml:"document_id"`
	Section       string `bson:"section" json:"section" yaml:"section"`
	Body          string `bson:"body" json:"body" yaml:"body"`
	SubmittedBy   string `bson:"submitted_by" json:"submitted_by" yaml:"submitted_by"`
	Role          string `bson:"role" json:"role" yaml:"role"`
	Initials      string `bson:"initials" json:"initials" yaml:"initials"`
	Timestamp     string `bson:"timestamp" json:"timestamp" yaml:"timestamp"`
	Status        string `bson:"status" json:"status" yaml:"status"`
	Priority      string `bson:"priority" json:"priority" yaml:"priority"`
	Category      string `bson:"category" json:"category" yaml:"category"`
	Helpful       int    `bson:"helpful" json:"helpful" yaml:"helpful"`
}
