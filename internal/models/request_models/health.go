package request_models

import (
	"time"

	"github.com/google/uuid"
)

type CreateAllergyRequest struct {
	ChildID  uuid.UUID `json:"childId" binding:"required"`
	Name     string    `json:"name" binding:"required"`
	Severity string    `json:"severity"`
	Note     string    `json:"note"`
	Date     time.Time `json:"date" binding:"required"`
}

type UpdateAllergyRequest struct {
	Name      *string    `json:"name"`
	Severity  *string    `json:"severity"`
	Note      *string    `json:"note"`
	Date      *time.Time `json:"date"`
	IsDeleted *bool      `json:"isDeleted"`
}

func (r UpdateAllergyRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Severity != nil {
		patch["severity"] = *r.Severity
	}
	if r.Note != nil {
		patch["note"] = *r.Note
	}
	if r.Date != nil {
		patch["date"] = *r.Date
	}
	if r.IsDeleted != nil {
		patch["is_deleted"] = *r.IsDeleted
	}
	return patch
}

type CreateAppointmentRequest struct {
	ChildID           uuid.UUID `json:"childId" binding:"required"`
	Doctor            string    `json:"doctor" binding:"required"`
	Date              time.Time `json:"date" binding:"required"`
	Venue             string    `json:"venue" binding:"required"`
	Note              string    `json:"note"`
	AppointmentNumber int       `json:"appointmentNumber"`
}

type UpdateAppointmentRequest struct {
	Doctor            *string    `json:"doctor"`
	Date              *time.Time `json:"date"`
	Venue             *string    `json:"venue"`
	Note              *string    `json:"note"`
	AppointmentNumber *int       `json:"appointmentNumber"`
	IsDeleted         *bool      `json:"isDeleted"`
}

func (r UpdateAppointmentRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Doctor != nil {
		patch["doctor"] = *r.Doctor
	}
	if r.Date != nil {
		patch["date"] = *r.Date
	}
	if r.Venue != nil {
		patch["venue"] = *r.Venue
	}
	if r.Note != nil {
		patch["note"] = *r.Note
	}
	if r.AppointmentNumber != nil {
		patch["appointment_number"] = *r.AppointmentNumber
	}
	if r.IsDeleted != nil {
		patch["is_deleted"] = *r.IsDeleted
	}
	return patch
}

type CreateHealthRecordRequest struct {
	ChildID uuid.UUID `json:"childId" binding:"required"`
	Title   string    `json:"title" binding:"required"`
	File    string    `json:"file"`
	Date    time.Time `json:"date"`
	Notes   string    `json:"notes"`
}

type UpdateHealthRecordRequest struct {
	Title     *string    `json:"title"`
	File      *string    `json:"file"`
	Date      *time.Time `json:"date"`
	Notes     *string    `json:"notes"`
	IsDeleted *bool      `json:"isDeleted"`
}

func (r UpdateHealthRecordRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Title != nil {
		patch["title"] = *r.Title
	}
	if r.File != nil {
		patch["file"] = *r.File
	}
	if r.Date != nil {
		patch["date"] = *r.Date
	}
	if r.Notes != nil {
		patch["notes"] = *r.Notes
	}
	if r.IsDeleted != nil {
		patch["is_deleted"] = *r.IsDeleted
	}
	return patch
}

type CreateFeedbackRequest struct {
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
}
