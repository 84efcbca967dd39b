package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/auth"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/store"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/apperrors"
)

// ApplicationService defines the interface for reviewing student applications
type ApplicationService interface {
	Decide(actor *models.User, applicationID string, decision models.ApplicationStatus) error
	ListByStudent(studentID string) []models.Application
	List() []models.Application
}

// applicationServiceImpl implements the ApplicationService interface
type applicationServiceImpl struct {
	domain *store.DomainStore
	authz  *auth.AuthorizationService
	logger zerolog.Logger
}

// NewApplicationService creates a new application service instance
func NewApplicationService(domain *store.DomainStore, authz *auth.AuthorizationService, logger zerolog.Logger) ApplicationService {
	return &applicationServiceImpl{
		domain: domain,
		authz:  authz,
		logger: logger,
	}
}

// Decide moves a pending application to ACCEPTED or REJECTED. Only the
// opportunity's poster or an admin may decide, and decided applications are
// final.
func (s *applicationServiceImpl) Decide(actor *models.User, applicationID string, decision models.ApplicationStatus) error {
	if !decision.Decided() {
		return fmt.Errorf("%w: decision must be ACCEPTED or REJECTED", apperrors.ErrInvalidTransition)
	}

	var target *models.Application
	for _, app := range s.domain.Applications() {
		if app.ID == applicationID {
			a := app
			target = &a
			break
		}
	}
	if target == nil {
		return apperrors.ErrApplicationNotFound
	}
	if target.Status != models.ApplicationPending {
		return fmt.Errorf("%w: application already %s", apperrors.ErrInvalidTransition, target.Status)
	}

	var opp *models.Opportunity
	for _, o := range s.domain.Opportunities() {
		if o.ID == target.OpportunityID {
			v := o
			opp = &v
			break
		}
	}
	if !s.authz.CanDecideApplication(actor, opp) {
		return apperrors.NewForbiddenError("only the posting alumni or an admin may decide an application")
	}

	if err := s.domain.UpdateApplicationStatus(applicationID, decision); err != nil {
		return err
	}
	s.logger.Info().
		Str("applicationID", applicationID).
		Str("decision", string(decision)).
		Str("decidedBy", actor.ID).
		Msg("Application decided")
	return nil
}

// ListByStudent returns the student's applications newest-first.
func (s *applicationServiceImpl) ListByStudent(studentID string) []models.Application {
	apps := s.domain.Applications()
	out := apps[:0]
	for _, app := range apps {
		if app.StudentID == studentID {
			out = append(out, app)
		}
	}
	return out
}

// List returns all applications newest-first.
func (s *applicationServiceImpl) List() []models.Application {
	return s.domain.Applications()
}
