package models

// Event is a scheduled gathering with a registration roster.
//
// Invariant: RegistrationsCount equals len(Registrations) plus any seed
// headcount recorded before individual registrants were tracked, and a user
// id appears at most once in Registrations.
type Event struct {
	ID                 string   `json:"event_id" yaml:"event_id"`
	CreatorID          string   `json:"creator_id" yaml:"creator_id"`
	Title              string   `json:"title" yaml:"title"`
	Date               string   `json:"date" yaml:"date"` // YYYY-MM-DD
	Time               string   `json:"time" yaml:"time"`
	Location           string   `json:"location" yaml:"location"`
	Description        string   `json:"description" yaml:"description"`
	RegistrationsCount int      `json:"registrations_count" yaml:"registrations_count"`
	Registrations      []string `json:"registrations" yaml:"registrations"` // Registrant user ids
}

// Registered reports whether the user already appears in the registration set.
func (e *Event) Registered(userID string) bool {
	for _, id := range e.Registrations {
		if id == userID {
			return true
		}
	}
	return false
}
