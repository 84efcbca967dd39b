package services

import (
	"github.com/rs/zerolog"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/auth"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/store"
)

// Services holds all the service instances
type Services struct {
	Opportunity OpportunityService
	Event       EventService
	Profile     ProfileService
	Application ApplicationService
	Analytics   AnalyticsService
}

// NewServices initializes all services over the two stores
func NewServices(domain *store.DomainStore, session *store.SessionStore, logger zerolog.Logger) *Services {
	authz := auth.NewAuthorizationService()
	return &Services{
		Opportunity: NewOpportunityService(domain, authz, logger),
		Event:       NewEventService(domain, authz, logger),
		Profile:     NewProfileService(domain, logger),
		Application: NewApplicationService(domain, authz, logger),
		Analytics:   NewAnalyticsService(domain, session),
	}
}
