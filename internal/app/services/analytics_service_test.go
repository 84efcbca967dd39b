package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/store"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/seed"
)

// newSeededServices builds the service layer over the embedded demo roster.
func newSeededServices(t *testing.T) *Services {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)

	domain := store.NewDomainStore()
	seed.Load(ds, domain, zerolog.Nop())
	session := store.NewSessionStore(ds.Users, 0, zerolog.Nop())
	return NewServices(domain, session, zerolog.Nop())
}

func TestOverviewFromSeed(t *testing.T) {
	svcs := newSeededServices(t)

	overview := svcs.Analytics.Overview()
	assert.Equal(t, 4, overview.TotalUsers)
	assert.Equal(t, 2, overview.ActiveEvents)
	assert.Equal(t, 2, overview.Opportunities)
	assert.Equal(t, 1, overview.Applications)
	assert.Equal(t, 165, overview.TotalRegistrations)
}

func TestOpportunitiesByType(t *testing.T) {
	svcs := newSeededServices(t)

	points := svcs.Analytics.OpportunitiesByType()
	require.Len(t, points, 2)
	assert.Equal(t, models.AnalyticsPoint{Name: "JOB", Value: 1}, points[0])
	assert.Equal(t, models.AnalyticsPoint{Name: "MENTORSHIP", Value: 1}, points[1])
}

func TestPlacementsByIndustry(t *testing.T) {
	svcs := newSeededServices(t)

	points := svcs.Analytics.PlacementsByIndustry()
	require.Len(t, points, 2)
	// Equal counts sort alphabetically for a stable series
	assert.Equal(t, "Data Science", points[0].Name)
	assert.Equal(t, "Software Engineering", points[1].Name)
	assert.Equal(t, 1, points[0].Value)
}

func TestPerUserCounters(t *testing.T) {
	svcs := newSeededServices(t)

	assert.Equal(t, 1, svcs.Analytics.PostCountByUser("u2"))
	assert.Equal(t, 1, svcs.Analytics.PostCountByUser("u4"))
	assert.Equal(t, 0, svcs.Analytics.PostCountByUser("u1"))
	assert.Equal(t, 1, svcs.Analytics.ApplicationCountByStudent("u3"))
	assert.Equal(t, 0, svcs.Analytics.ApplicationCountByStudent("u9"))
}
