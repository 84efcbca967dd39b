package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleAlumni  RoleType = "ALUMNI"
	RoleStudent RoleType = "STUDENT"
)

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleAlumni, RoleStudent:
		return true
	}
	return false
}

// CanPost reports whether the role may author opportunities and events.
func (r RoleType) CanPost() bool {
	return r == RoleAdmin || r == RoleAlumni
}

// User defines a member of the alumni network roster.
// Users are seeded at startup and immutable afterwards.
type User struct {
	ID        string   `json:"user_id" yaml:"user_id"`                 // Unique identifier within the roster
	Name      string   `json:"name" yaml:"name"`                       // Display name
	Email     string   `json:"email" yaml:"email"`                     // Sign-in email
	Role      RoleType `json:"role" yaml:"role"`                       // ADMIN, ALUMNI or STUDENT
	BatchYear string   `json:"batch_year,omitempty" yaml:"batch_year"` // Graduation batch (empty for admins)
	AvatarURL string   `json:"avatar_url,omitempty" yaml:"avatar_url"` // Optional avatar reference
}
