package models

// OpportunityType defines the kind of posting
type OpportunityType string

const (
	OpportunityJob        OpportunityType = "JOB"
	OpportunityMentorship OpportunityType = "MENTORSHIP"
)

// Valid reports whether the type is one of the known posting kinds.
func (t OpportunityType) Valid() bool {
	return t == OpportunityJob || t == OpportunityMentorship
}

// Opportunity is a job or mentorship posting authored by an alumni or admin.
// Immutable after creation.
//
// UserName duplicates the poster's display name so listings render without a
// roster join; the roster is immutable, so the copy cannot drift.
type Opportunity struct {
	ID                  string          `json:"opportunity_id" yaml:"opportunity_id"`
	UserID              string          `json:"user_id" yaml:"user_id"`
	UserName            string          `json:"user_name" yaml:"user_name"`
	Type                OpportunityType `json:"type" yaml:"type"`
	Title               string          `json:"title" yaml:"title"`
	Description         string          `json:"description" yaml:"description"`
	Company             string          `json:"company" yaml:"company"`
	Location            string          `json:"location" yaml:"location"`
	ApplicationDeadline string          `json:"application_deadline" yaml:"application_deadline"` // YYYY-MM-DD
	PostedDate          string          `json:"posted_date" yaml:"posted_date"`                   // YYYY-MM-DD
}
