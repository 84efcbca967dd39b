package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/apperrors"
)

func testOpportunity(id string) models.Opportunity {
	return models.Opportunity{
		ID:       id,
		UserID:   "u2",
		UserName: "Muhammad Suhail Patil",
		Type:     models.OpportunityJob,
		Title:    "Opportunity " + id,
		Company:  "Acme",
		Location: "Remote",
	}
}

func TestAddOpportunityNewestFirst(t *testing.T) {
	s := NewDomainStore()

	for i := 0; i < 5; i++ {
		s.AddOpportunity(testOpportunity(fmt.Sprintf("o%d", i)))
	}

	opps := s.Opportunities()
	require.Len(t, opps, 5)
	for i, opp := range opps {
		assert.Equal(t, fmt.Sprintf("o%d", 4-i), opp.ID, "collection must be reverse-chronological")
	}
}

func TestAddEventNewestFirst(t *testing.T) {
	s := NewDomainStore()
	s.AddEvent(models.Event{ID: "e1", Title: "first"})
	s.AddEvent(models.Event{ID: "e2", Title: "second"})

	events := s.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "e2", events[0].ID)
	assert.Equal(t, "e1", events[1].ID)
}

func TestRegisterForEvent(t *testing.T) {
	s := NewDomainStore()
	s.AddEvent(models.Event{ID: "e1", Title: "Alumni Meetup 2025", RegistrationsCount: 120})
	s.AddEvent(models.Event{ID: "e2", Title: "Tech Talk", RegistrationsCount: 45})

	require.NoError(t, s.RegisterForEvent("e1", "uX"))

	events := s.Events()
	var e1 models.Event
	for _, e := range events {
		if e.ID == "e1" {
			e1 = e
		}
	}
	assert.Equal(t, 121, e1.RegistrationsCount)
	assert.True(t, e1.Registered("uX"))

	// Registering twice is a no-op
	require.NoError(t, s.RegisterForEvent("e1", "uX"))
	for _, e := range s.Events() {
		if e.ID == "e1" {
			assert.Equal(t, 121, e.RegistrationsCount)
			assert.Len(t, e.Registrations, 1)
		}
		if e.ID == "e2" {
			assert.Equal(t, 45, e.RegistrationsCount, "other events untouched")
		}
	}
}

func TestRegisterForEventCountTracksSet(t *testing.T) {
	s := NewDomainStore()
	s.AddEvent(models.Event{ID: "e1"})

	users := []string{"u1", "u2", "u3", "u2", "u1", "u4"}
	for _, u := range users {
		require.NoError(t, s.RegisterForEvent("e1", u))
	}

	evt := s.Events()[0]
	assert.Equal(t, len(evt.Registrations), evt.RegistrationsCount)
	assert.Equal(t, 4, evt.RegistrationsCount)
}

func TestRegisterForEventUnknownEvent(t *testing.T) {
	s := NewDomainStore()
	err := s.RegisterForEvent("missing", "u1")
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestUpsertProfileLastWriteWins(t *testing.T) {
	s := NewDomainStore()

	s.UpsertProfile(models.Profile{ID: "p1", UserID: "u2", Industry: "Software Engineering", Company: "Google"})
	s.UpsertProfile(models.Profile{ID: "p2", UserID: "u4", Industry: "Data Science"})
	before := len(s.Profiles())

	// Same user again, different values
	s.UpsertProfile(models.Profile{ID: "p1", UserID: "u2", Industry: "Fintech", Company: "Stripe"})

	profiles := s.Profiles()
	assert.Len(t, profiles, before, "repeat upsert must not grow the collection")

	got, err := s.FindProfileByUser("u2")
	require.NoError(t, err)
	assert.Equal(t, "Fintech", got.Industry)
	assert.Equal(t, "Stripe", got.Company)
}

func TestUpsertProfileOnePerUser(t *testing.T) {
	s := NewDomainStore()

	// A fresh profile id for an existing user must still replace, not duplicate
	s.UpsertProfile(models.Profile{ID: "p1", UserID: "u2", Industry: "Software Engineering"})
	s.UpsertProfile(models.Profile{ID: "p9", UserID: "u2", Industry: "Consulting"})

	require.Len(t, s.Profiles(), 1)
	got, err := s.FindProfileByUser("u2")
	require.NoError(t, err)
	assert.Equal(t, "p9", got.ID)
	assert.Equal(t, "Consulting", got.Industry)
}

func TestFindProfileByUserMiss(t *testing.T) {
	s := NewDomainStore()
	_, err := s.FindProfileByUser("nobody")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestAddApplicationAllowsDuplicates(t *testing.T) {
	s := NewDomainStore()
	app := models.Application{
		ID:            "a1",
		StudentID:     "u3",
		OpportunityID: "o1",
		Status:        models.ApplicationPending,
	}
	s.AddApplication(app)

	// The store performs no duplicate check; uniqueness belongs to the
	// service layer.
	dup := app
	dup.ID = "a2"
	s.AddApplication(dup)

	apps := s.Applications()
	require.Len(t, apps, 2)
	assert.Equal(t, "a2", apps[0].ID, "newest first")
}

func TestUpdateApplicationStatus(t *testing.T) {
	s := NewDomainStore()
	s.AddApplication(models.Application{ID: "a1", Status: models.ApplicationPending})

	require.NoError(t, s.UpdateApplicationStatus("a1", models.ApplicationAccepted))
	assert.Equal(t, models.ApplicationAccepted, s.Applications()[0].Status)

	err := s.UpdateApplicationStatus("missing", models.ApplicationRejected)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s := NewDomainStore()
	s.AddEvent(models.Event{ID: "e1"})
	require.NoError(t, s.RegisterForEvent("e1", "u1"))

	snapshot := s.Events()
	snapshot[0].Registrations = append(snapshot[0].Registrations, "intruder")
	snapshot[0].RegistrationsCount = 99

	fresh := s.Events()[0]
	assert.Equal(t, 1, fresh.RegistrationsCount)
	assert.Equal(t, []string{"u1"}, fresh.Registrations)
}
