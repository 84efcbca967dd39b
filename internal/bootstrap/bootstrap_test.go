package bootstrap

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/config"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/apperrors"
)

func testDeps(t *testing.T) *Dependencies {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Auth.SignInDelay = "0s" // no simulated latency in tests

	deps, err := BuildDependencies(cfg, zerolog.Nop())
	require.NoError(t, err)
	return deps
}

func TestBuildDependenciesSeedsStores(t *testing.T) {
	deps := testDeps(t)

	assert.Len(t, deps.Session.Roster(), 4)
	assert.Len(t, deps.Domain.Opportunities(), 2)
	assert.Len(t, deps.Domain.Events(), 2)
	assert.Len(t, deps.Domain.Applications(), 1)
	assert.Len(t, deps.Domain.Profiles(), 2)
	require.NotNil(t, deps.Services)
}

func TestSignInScenario(t *testing.T) {
	deps := testDeps(t)

	user, err := deps.Session.SignIn("admin@sdm.edu", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sachidanand S Joshi", user.Name)

	deps.Session.SignOut()

	_, err = deps.Session.SignIn("wrong@x.com", models.RoleAdmin)
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.False(t, deps.Session.IsAuthenticated())

	user, err = deps.Session.SignIn("demo", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "samarth@student.sdm.edu", user.Email)
}

func TestRosterOverrideMissingFile(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Seed.RosterPath = filepath.Join(t.TempDir(), "nope.yaml")

	_, err = BuildDependencies(cfg, zerolog.Nop())
	require.Error(t, err)
}
