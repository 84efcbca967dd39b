// Package dto holds the submission forms the presentation layer fills in
// before invoking a service. Validator tags describe the caller contract;
// the domain store itself never re-checks them.
package dto

import "github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/models"

// OpportunityForm is the posting form for a job or mentorship.
type OpportunityForm struct {
	Type                models.OpportunityType `json:"type" validate:"required,oneof=JOB MENTORSHIP"`
	Title               string                 `json:"title" validate:"required,max=200"`
	Description         string                 `json:"description" validate:"required"`
	Company             string                 `json:"company" validate:"required,max=100"`
	Location            string                 `json:"location" validate:"required,max=100"`
	ApplicationDeadline string                 `json:"application_deadline" validate:"required,datetime=2006-01-02"`
}

// EventForm is the creation form for an event.
type EventForm struct {
	Title       string `json:"title" validate:"required,max=200"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
}

// ProfileForm is the profile edit form.
type ProfileForm struct {
	Industry string   `json:"industry" validate:"required,max=100"`
	Company  string   `json:"company" validate:"max=100"`
	JobTitle string   `json:"job_title" validate:"max=100"`
	Bio      string   `json:"bio"`
	Skills   []string `json:"skills" validate:"dive,required"`
	Location string   `json:"location" validate:"max=100"`
}
