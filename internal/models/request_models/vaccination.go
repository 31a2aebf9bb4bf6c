package request_models

import (
	"time"

	"github.com/google/uuid"
)

type CreateVaccinationRequest struct {
	ChildID    uuid.UUID   `json:"childId" binding:"required"`
	VaccineID  uuid.UUID   `json:"vaccineId" binding:"required"`
	Date       time.Time   `json:"date" binding:"required"`
	Venue      string      `json:"venue"`
	Notes      string      `json:"notes"`
	SymptomIDs []uuid.UUID `json:"symptomIds"`
	Images     []string    `json:"images"`
}

type UpdateVaccinationRequest struct {
	Date       *time.Time   `json:"date"`
	Venue      *string      `json:"venue"`
	Notes      *string      `json:"notes"`
	SymptomIDs *[]uuid.UUID `json:"symptomIds"`
	IsDeleted  *bool        `json:"isDeleted"`
}

func (r UpdateVaccinationRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Date != nil {
		patch["date"] = *r.Date
	}
	if r.Venue != nil {
		patch["venue"] = *r.Venue
	}
	if r.Notes != nil {
		patch["notes"] = *r.Notes
	}
	if r.IsDeleted != nil {
		patch["is_deleted"] = *r.IsDeleted
	}
	return patch
}

type CreateVaccineRequest struct {
	Name        string `json:"name" binding:"required"`
	Region      string `json:"region" binding:"required"`
	AgeInMonths int    `json:"ageInMonths" binding:"min=0"`
	Description string `json:"description"`
}

type UpdateVaccineRequest struct {
	Name        *string `json:"name"`
	Region      *string `json:"region"`
	AgeInMonths *int    `json:"ageInMonths"`
	Description *string `json:"description"`
}

func (r UpdateVaccineRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Region != nil {
		patch["region"] = *r.Region
	}
	if r.AgeInMonths != nil {
		patch["age_in_months"] = *r.AgeInMonths
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	return patch
}

type CreateSymptomRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateSymptomRequest struct {
	Name *string `json:"name"`
}

func (r UpdateSymptomRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	return patch
}
