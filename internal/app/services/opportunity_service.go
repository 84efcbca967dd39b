package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/auth"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models/dto"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/store"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/apperrors"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/ids"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/validation"
)

const dateLayout = "2006-01-02"

// OpportunityService defines the interface for posting and applying to
// job/mentorship opportunities
type OpportunityService interface {
	Post(user *models.User, form dto.OpportunityForm) (models.Opportunity, error)
	Apply(user *models.User, opportunityID string) (models.Application, error)
	List(filter models.OpportunityType) []models.Opportunity
	GetByID(opportunityID string) (models.Opportunity, error)
	HasApplied(studentID, opportunityID string) bool
}

// opportunityServiceImpl implements the OpportunityService interface
type opportunityServiceImpl struct {
	domain *store.DomainStore
	authz  *auth.AuthorizationService
	logger zerolog.Logger
}

// NewOpportunityService creates a new opportunity service instance
func NewOpportunityService(domain *store.DomainStore, authz *auth.AuthorizationService, logger zerolog.Logger) OpportunityService {
	return &opportunityServiceImpl{
		domain: domain,
		authz:  authz,
		logger: logger,
	}
}

// Post validates the form, stamps identity and posting date, and adds the
// opportunity to the store. Only alumni and admins may post.
func (s *opportunityServiceImpl) Post(user *models.User, form dto.OpportunityForm) (models.Opportunity, error) {
	if err := s.authz.ValidatePoster(user); err != nil {
		return models.Opportunity{}, fmt.Errorf("%w: %s", apperrors.ErrPermissionDenied, err)
	}
	if err := validation.Struct(form); err != nil {
		return models.Opportunity{}, err
	}

	opp := models.Opportunity{
		ID:                  ids.New(ids.OpportunityPrefix),
		UserID:              user.ID,
		UserName:            user.Name,
		Type:                form.Type,
		Title:               form.Title,
		Description:         form.Description,
		Company:             form.Company,
		Location:            form.Location,
		ApplicationDeadline: form.ApplicationDeadline,
		PostedDate:          time.Now().Format(dateLayout),
	}
	s.domain.AddOpportunity(opp)

	s.logger.Info().
		Str("opportunityID", opp.ID).
		Str("type", string(opp.Type)).
		Str("postedBy", user.ID).
		Msg("Opportunity posted")
	return opp, nil
}

// Apply submits a pending application for the signed-in student. A student
// may apply to a given opportunity at most once; the store accepts
// duplicates, so the uniqueness guard lives here.
func (s *opportunityServiceImpl) Apply(user *models.User, opportunityID string) (models.Application, error) {
	if err := s.authz.ValidateStudent(user); err != nil {
		return models.Application{}, fmt.Errorf("%w: %s", apperrors.ErrPermissionDenied, err)
	}

	opp, err := s.GetByID(opportunityID)
	if err != nil {
		return models.Application{}, err
	}
	if s.HasApplied(user.ID, opportunityID) {
		return models.Application{}, apperrors.ErrAlreadyApplied
	}

	app := models.Application{
		ID:               ids.New(ids.ApplicationPrefix),
		StudentID:        user.ID,
		StudentName:      user.Name,
		OpportunityID:    opp.ID,
		OpportunityTitle: opp.Title,
		Status:           models.ApplicationPending,
		ApplicationDate:  time.Now().Format(dateLayout),
	}
	s.domain.AddApplication(app)

	s.logger.Info().
		Str("applicationID", app.ID).
		Str("opportunityID", opp.ID).
		Str("studentID", user.ID).
		Msg("Application submitted")
	return app, nil
}

// List returns opportunities newest-first, optionally narrowed to one type.
// An empty filter returns everything.
func (s *opportunityServiceImpl) List(filter models.OpportunityType) []models.Opportunity {
	opps := s.domain.Opportunities()
	if filter == "" {
		return opps
	}
	out := opps[:0]
	for _, opp := range opps {
		if opp.Type == filter {
			out = append(out, opp)
		}
	}
	return out
}

// GetByID returns the opportunity with the given id.
func (s *opportunityServiceImpl) GetByID(opportunityID string) (models.Opportunity, error) {
	for _, opp := range s.domain.Opportunities() {
		if opp.ID == opportunityID {
			return opp, nil
		}
	}
	return models.Opportunity{}, apperrors.ErrOpportunityNotFound
}

// HasApplied reports whether the student already has an application against
// the opportunity.
func (s *opportunityServiceImpl) HasApplied(studentID, opportunityID string) bool {
	for _, app := range s.domain.Applications() {
		if app.StudentID == studentID && app.OpportunityID == opportunityID {
			return true
		}
	}
	return false
}
