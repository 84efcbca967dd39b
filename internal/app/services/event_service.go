package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/auth"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models/dto"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/store"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/apperrors"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/ids"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/validation"
)

// EventService defines the interface for event creation and registration
type EventService interface {
	Create(user *models.User, form dto.EventForm) (models.Event, error)
	Register(eventID, userID string) error
	List() []models.Event
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	domain *store.DomainStore
	authz  *auth.AuthorizationService
	logger zerolog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(domain *store.DomainStore, authz *auth.AuthorizationService, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		domain: domain,
		authz:  authz,
		logger: logger,
	}
}

// Create validates the form and adds the event with an empty registration
// roster. Only alumni and admins may create events.
func (s *eventServiceImpl) Create(user *models.User, form dto.EventForm) (models.Event, error) {
	if err := s.authz.ValidatePoster(user); err != nil {
		return models.Event{}, fmt.Errorf("%w: %s", apperrors.ErrPermissionDenied, err)
	}
	if err := validation.Struct(form); err != nil {
		return models.Event{}, err
	}

	evt := models.Event{
		ID:          ids.New(ids.EventPrefix),
		CreatorID:   user.ID,
		Title:       form.Title,
		Date:        form.Date,
		Time:        form.Time,
		Location:    form.Location,
		Description: form.Description,
	}
	s.domain.AddEvent(evt)

	s.logger.Info().
		Str("eventID", evt.ID).
		Str("createdBy", user.ID).
		Msg("Event created")
	return evt, nil
}

// Register adds the user to the event roster. Registering twice is a no-op.
func (s *eventServiceImpl) Register(eventID, userID string) error {
	if err := s.domain.RegisterForEvent(eventID, userID); err != nil {
		return err
	}
	s.logger.Info().Str("eventID", eventID).Str("userID", userID).Msg("Event registration")
	return nil
}

// List returns events newest-first.
func (s *eventServiceImpl) List() []models.Event {
	return s.domain.Events()
}
