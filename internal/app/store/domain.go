// Package store implements the in-memory domain layer: the domain store
// owning the four collections and the session store owning the signed-in
// identity. Both live for the process lifetime only; there is no
// persistence and the seed roster is the only initial state.
package store

import (
	"sync"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/apperrors"
)

// DomainStore is the system of record for opportunities, events,
// applications and profiles. Collections are kept newest-first; list
// accessors return snapshot copies so renderers never observe a mutation
// mid-iteration.
//
// Callers are trusted to pass validated, fully populated entities; the
// store does not re-check forms and deliberately performs no duplicate
// check on applications (that guard belongs to the service layer).
type DomainStore struct {
	mu            sync.Mutex
	opportunities []models.Opportunity
	events        []models.Event
	applications  []models.Application
	profiles      []models.Profile
}

// NewDomainStore creates an empty domain store.
func NewDomainStore() *DomainStore {
	return &DomainStore{}
}

// AddOpportunity prepends the opportunity, keeping newest-first order.
func (s *DomainStore) AddOpportunity(opp models.Opportunity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opportunities = append([]models.Opportunity{opp}, s.opportunities...)
}

// AddEvent prepends the event, keeping newest-first order.
func (s *DomainStore) AddEvent(evt models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append([]models.Event{evt}, s.events...)
}

// AddApplication prepends the application, keeping newest-first order.
// Duplicate (student, opportunity) pairs are accepted; uniqueness is a
// caller-side guarantee.
func (s *DomainStore) AddApplication(app models.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applications = append([]models.Application{app}, s.applications...)
}

// UpsertProfile replaces the profile for the same user, or appends when the
// user has none yet. Exactly one profile per user holds afterwards.
func (s *DomainStore) UpsertProfile(profile models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].UserID == profile.UserID {
			s.profiles[i] = profile
			return
		}
	}
	s.profiles = append(s.profiles, profile)
}

// FindProfileByUser returns the profile attached to the user, or
// apperrors.ErrProfileNotFound when the user has none.
func (s *DomainStore) FindProfileByUser(userID string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].UserID == userID {
			return cloneProfile(s.profiles[i]), nil
		}
	}
	return models.Profile{}, apperrors.ErrProfileNotFound
}

// RegisterForEvent adds the user to the event's registration set and bumps
// the headcount by exactly one. Registering twice is a no-op, so the count
// never drifts from the set.
func (s *DomainStore) RegisterForEvent(eventID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != eventID {
			continue
		}
		if s.events[i].Registered(userID) {
			return nil // already registered
		}
		s.events[i].Registrations = append(s.events[i].Registrations, userID)
		s.events[i].RegistrationsCount++
		return nil
	}
	return apperrors.ErrEventNotFound
}

// UpdateApplicationStatus sets the status of an application. Authorization
// and transition rules are enforced by the application service.
func (s *DomainStore) UpdateApplicationStatus(applicationID string, status models.ApplicationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.applications {
		if s.applications[i].ID == applicationID {
			s.applications[i].Status = status
			return nil
		}
	}
	return apperrors.ErrApplicationNotFound
}

// Opportunities returns a newest-first snapshot of the opportunity collection.
func (s *DomainStore) Opportunities() []models.Opportunity {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Opportunity(nil), s.opportunities...)
}

// Events returns a newest-first snapshot of the event collection.
func (s *DomainStore) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Event, len(s.events))
	for i := range s.events {
		out[i] = cloneEvent(s.events[i])
	}
	return out
}

// Applications returns a newest-first snapshot of the application collection.
func (s *DomainStore) Applications() []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Application(nil), s.applications...)
}

// Profiles returns a snapshot of the profile collection in upsert order.
func (s *DomainStore) Profiles() []models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Profile, len(s.profiles))
	for i := range s.profiles {
		out[i] = cloneProfile(s.profiles[i])
	}
	return out
}

func cloneEvent(e models.Event) models.Event {
	e.Registrations = append([]string(nil), e.Registrations...)
	return e
}

func cloneProfile(p models.Profile) models.Profile {
	p.Skills = append([]string(nil), p.Skills...)
	return p
}
