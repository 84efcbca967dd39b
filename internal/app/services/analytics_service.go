package services

import (
	"sort"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/store"
)

// Overview holds the headline counters shown on the dashboards.
type Overview struct {
	TotalUsers         int
	ActiveEvents       int
	Opportunities      int
	Applications       int
	TotalRegistrations int
}

// AnalyticsService defines the interface for aggregate engagement and
// placement figures
type AnalyticsService interface {
	Overview() Overview
	OpportunitiesByType() []models.AnalyticsPoint
	PlacementsByIndustry() []models.AnalyticsPoint
	PostCountByUser(userID string) int
	ApplicationCountByStudent(studentID string) int
}

// analyticsServiceImpl implements the AnalyticsService interface
type analyticsServiceImpl struct {
	domain  *store.DomainStore
	session *store.SessionStore
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(domain *store.DomainStore, session *store.SessionStore) AnalyticsService {
	return &analyticsServiceImpl{
		domain:  domain,
		session: session,
	}
}

// Overview returns the headline counters across all collections.
func (s *analyticsServiceImpl) Overview() Overview {
	events := s.domain.Events()
	registrations := 0
	for _, evt := range events {
		registrations += evt.RegistrationsCount
	}
	return Overview{
		TotalUsers:         len(s.session.Roster()),
		ActiveEvents:       len(events),
		Opportunities:      len(s.domain.Opportunities()),
		Applications:       len(s.domain.Applications()),
		TotalRegistrations: registrations,
	}
}

// OpportunitiesByType groups postings into job and mentorship counts.
func (s *analyticsServiceImpl) OpportunitiesByType() []models.AnalyticsPoint {
	jobs, mentorships := 0, 0
	for _, opp := range s.domain.Opportunities() {
		switch opp.Type {
		case models.OpportunityJob:
			jobs++
		case models.OpportunityMentorship:
			mentorships++
		}
	}
	return []models.AnalyticsPoint{
		{Name: string(models.OpportunityJob), Value: jobs},
		{Name: string(models.OpportunityMentorship), Value: mentorships},
	}
}

// PlacementsByIndustry groups alumni profiles by industry, largest first,
// ties broken alphabetically so the series is stable.
func (s *analyticsServiceImpl) PlacementsByIndustry() []models.AnalyticsPoint {
	counts := make(map[string]int)
	for _, profile := range s.domain.Profiles() {
		if profile.Industry != "" {
			counts[profile.Industry]++
		}
	}

	points := make([]models.AnalyticsPoint, 0, len(counts))
	for industry, n := range counts {
		points = append(points, models.AnalyticsPoint{Name: industry, Value: n})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Name < points[j].Name
	})
	return points
}

// PostCountByUser counts the opportunities a user has posted.
func (s *analyticsServiceImpl) PostCountByUser(userID string) int {
	n := 0
	for _, opp := range s.domain.Opportunities() {
		if opp.UserID == userID {
			n++
		}
	}
	return n
}

// ApplicationCountByStudent counts a student's submitted applications.
func (s *analyticsServiceImpl) ApplicationCountByStudent(studentID string) int {
	n := 0
	for _, app := range s.domain.Applications() {
		if app.StudentID == studentID {
			n++
		}
	}
	return n
}
