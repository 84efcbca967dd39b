package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/apperrors"
)

// submitApplication posts an opportunity as the alumni and applies as the
// student, returning the pending application.
func submitApplication(t *testing.T, svcs *Services) models.Application {
	t.Helper()
	opp, err := svcs.Opportunity.Post(alumniUser, validOpportunityForm())
	require.NoError(t, err)
	app, err := svcs.Opportunity.Apply(studentUser, opp.ID)
	require.NoError(t, err)
	return app
}

func TestDecideByPoster(t *testing.T) {
	svcs, domain := newTestServices()
	app := submitApplication(t, svcs)

	require.NoError(t, svcs.Application.Decide(alumniUser, app.ID, models.ApplicationAccepted))
	assert.Equal(t, models.ApplicationAccepted, domain.Applications()[0].Status)
}

func TestDecideByAdmin(t *testing.T) {
	svcs, domain := newTestServices()
	app := submitApplication(t, svcs)

	require.NoError(t, svcs.Application.Decide(adminUser, app.ID, models.ApplicationRejected))
	assert.Equal(t, models.ApplicationRejected, domain.Applications()[0].Status)
}

func TestDecideByOtherAlumniDenied(t *testing.T) {
	svcs, domain := newTestServices()
	app := submitApplication(t, svcs)

	other := &models.User{ID: "u4", Name: "Priya Sharma", Role: models.RoleAlumni}
	err := svcs.Application.Decide(other, app.ID, models.ApplicationAccepted)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Equal(t, models.ApplicationPending, domain.Applications()[0].Status)
}

func TestDecideByStudentDenied(t *testing.T) {
	svcs, _ := newTestServices()
	app := submitApplication(t, svcs)

	err := svcs.Application.Decide(studentUser, app.ID, models.ApplicationAccepted)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDecideIsFinal(t *testing.T) {
	svcs, _ := newTestServices()
	app := submitApplication(t, svcs)

	require.NoError(t, svcs.Application.Decide(alumniUser, app.ID, models.ApplicationAccepted))

	err := svcs.Application.Decide(alumniUser, app.ID, models.ApplicationRejected)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestDecideRequiresTerminalStatus(t *testing.T) {
	svcs, _ := newTestServices()
	app := submitApplication(t, svcs)

	err := svcs.Application.Decide(alumniUser, app.ID, models.ApplicationPending)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestDecideUnknownApplication(t *testing.T) {
	svcs, _ := newTestServices()
	err := svcs.Application.Decide(adminUser, "a-missing", models.ApplicationAccepted)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestListByStudent(t *testing.T) {
	svcs, domain := newTestServices()
	submitApplication(t, svcs)

	domain.AddApplication(models.Application{ID: "a-other", StudentID: "u9", Status: models.ApplicationPending})

	mine := svcs.Application.ListByStudent(studentUser.ID)
	require.Len(t, mine, 1)
	assert.Equal(t, studentUser.ID, mine[0].StudentID)
	assert.Len(t, svcs.Application.List(), 2)
}
