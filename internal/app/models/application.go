package models

// ApplicationStatus defines the state of a student application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// Valid reports whether the status is one of the known states.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Decided reports whether the status is a terminal decision.
func (s ApplicationStatus) Decided() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

// Application is a student's request against an opportunity.
//
// StudentName and OpportunityTitle duplicate their source entities for
// display; both sources are immutable after creation, so the copies hold.
type Application struct {
	ID               string            `json:"application_id" yaml:"application_id"`
	StudentID        string            `json:"student_id" yaml:"student_id"`
	StudentName      string            `json:"student_name" yaml:"student_name"`
	OpportunityID    string            `json:"opportunity_id" yaml:"opportunity_id"`
	OpportunityTitle string            `json:"opportunity_title" yaml:"opportunity_title"`
	Status           ApplicationStatus `json:"status" yaml:"status"`
	ApplicationDate  string            `json:"application_date" yaml:"application_date"` // YYYY-MM-DD
}
