package auth

import (
	"errors"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
)

// Common errors specific to authorization that aren't in the central apperrors
var (
	ErrNotPoster  = errors.New("only alumni or admins can perform this action")
	ErrNotStudent = errors.New("only students can perform this action")
	ErrNotAdmin   = errors.New("only admins can perform this action")
)

// AuthorizationService answers which mutations a role may invoke. The store
// itself trusts its callers; these checks are the presentation-side gate.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// ValidatePoster validates that the user may author opportunities and events.
func (s *AuthorizationService) ValidatePoster(user *models.User) error {
	if user == nil || !user.Role.CanPost() {
		return ErrNotPoster
	}
	return nil
}

// ValidateStudent validates that the user may submit applications.
func (s *AuthorizationService) ValidateStudent(user *models.User) error {
	if user == nil || user.Role != models.RoleStudent {
		return ErrNotStudent
	}
	return nil
}

// ValidateAdmin validates that the user may view aggregate analytics.
func (s *AuthorizationService) ValidateAdmin(user *models.User) error {
	if user == nil || user.Role != models.RoleAdmin {
		return ErrNotAdmin
	}
	return nil
}

// CanDecideApplication checks whether the user may accept or reject an
// application against the given opportunity: the posting alumni or any admin.
func (s *AuthorizationService) CanDecideApplication(user *models.User, opp *models.Opportunity) bool {
	if user == nil || opp == nil {
		return false
	}
	if user.Role == models.RoleAdmin {
		return true
	}
	return user.Role == models.RoleAlumni && user.ID == opp.UserID
}
