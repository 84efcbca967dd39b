package seed

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/store"
)

func TestDefaultDataset(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	assert.Len(t, ds.Users, 4)
	assert.Len(t, ds.Profiles, 2)
	assert.Len(t, ds.Opportunities, 2)
	assert.Len(t, ds.Events, 2)
	assert.Len(t, ds.Applications, 1)

	admin := ds.Users[0]
	assert.Equal(t, "admin@sdm.edu", admin.Email)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	assert.Equal(t, 120, ds.Events[0].RegistrationsCount)
	assert.Equal(t, 45, ds.Events[1].RegistrationsCount)
	assert.Equal(t, models.ApplicationPending, ds.Applications[0].Status)
}

func TestLoadPreservesDisplayOrder(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	domain := store.NewDomainStore()
	Load(ds, domain, zerolog.Nop())

	opps := domain.Opportunities()
	require.Len(t, opps, 2)
	assert.Equal(t, "o1", opps[0].ID)
	assert.Equal(t, "o2", opps[1].ID)

	events := domain.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "e1", events[0].ID)

	profiles := domain.Profiles()
	require.Len(t, profiles, 2)
	assert.Equal(t, "p1", profiles[0].ID)
}

func TestParseRejectsUnknownRole(t *testing.T) {
	raw := []byte(`
users:
  - user_id: u1
    name: Someone
    email: someone@sdm.edu
    role: WIZARD
`)
	_, err := parse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestParseRejectsDuplicateUserIDs(t *testing.T) {
	raw := []byte(`
users:
  - user_id: u1
    email: a@sdm.edu
    role: ADMIN
  - user_id: u1
    email: b@sdm.edu
    role: STUDENT
`)
	_, err := parse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate user id")
}

func TestParseRejectsUnknownStatus(t *testing.T) {
	raw := []byte(`
applications:
  - application_id: a1
    student_id: u3
    opportunity_id: o1
    status: WAITLISTED
`)
	_, err := parse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}
