package models

// Profile carries the extended professional detail attached to a user.
// At most one profile exists per user; upserts are keyed by UserID.
type Profile struct {
	ID       string   `json:"profile_id" yaml:"profile_id"`
	UserID   string   `json:"user_id" yaml:"user_id"`
	Industry string   `json:"industry" yaml:"industry"`
	Company  string   `json:"company" yaml:"company"`
	JobTitle string   `json:"job_title" yaml:"job_title"`
	Bio      string   `json:"bio" yaml:"bio"`
	Skills   []string `json:"skills" yaml:"skills"` // Ordered list of skill names
	Location string   `json:"location" yaml:"location"`
}
