package services

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models/dto"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/store"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/apperrors"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/ids"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/validation"
)

// ProfileService defines the interface for profile lookup and editing
type ProfileService interface {
	GetOrInit(user *models.User) models.Profile
	Save(user *models.User, form dto.ProfileForm) (models.Profile, error)
	List() []models.Profile
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	domain *store.DomainStore
	logger zerolog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(domain *store.DomainStore, logger zerolog.Logger) ProfileService {
	return &profileServiceImpl{
		domain: domain,
		logger: logger,
	}
}

// GetOrInit returns the user's profile, or a blank profile carrying a fresh
// id when none exists yet. A lookup miss is normal here, not a fault.
func (s *profileServiceImpl) GetOrInit(user *models.User) models.Profile {
	profile, err := s.domain.FindProfileByUser(user.ID)
	if err == nil {
		return profile
	}
	if !errors.Is(err, apperrors.ErrProfileNotFound) {
		s.logger.Error().Err(err).Str("userID", user.ID).Msg("Profile lookup failed")
	}
	return models.Profile{
		ID:     ids.New(ids.ProfilePrefix),
		UserID: user.ID,
	}
}

// Save validates the form and upserts the user's profile. The existing
// profile id is kept when the user already has one; otherwise a fresh id is
// minted. Last write wins.
func (s *profileServiceImpl) Save(user *models.User, form dto.ProfileForm) (models.Profile, error) {
	if err := validation.Struct(form); err != nil {
		return models.Profile{}, err
	}

	profile := s.GetOrInit(user)
	profile.Industry = form.Industry
	profile.Company = form.Company
	profile.JobTitle = form.JobTitle
	profile.Bio = form.Bio
	profile.Skills = append([]string(nil), form.Skills...)
	profile.Location = form.Location

	s.domain.UpsertProfile(profile)
	s.logger.Info().Str("profileID", profile.ID).Str("userID", user.ID).Msg("Profile saved")
	return profile, nil
}

// List returns all profiles in upsert order.
func (s *profileServiceImpl) List() []models.Profile {
	return s.domain.Profiles()
}
