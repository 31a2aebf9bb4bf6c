package request_models

import (
	"time"

	"github.com/google/uuid"
)

type CreateMedicationRequest struct {
	ChildID    uuid.UUID `json:"childId" binding:"required"`
	MedicineID uuid.UUID `json:"medicineId" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
	Frequency  string    `json:"frequency" binding:"required"`
	Note       string    `json:"note"`
}

type UpdateMedicationRequest struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Frequency *string    `json:"frequency"`
	Note      *string    `json:"note"`
	IsDeleted *bool      `json:"isDeleted"`
}

func (r UpdateMedicationRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.StartDate != nil {
		patch["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		patch["end_date"] = *r.EndDate
	}
	if r.Frequency != nil {
		patch["frequency"] = *r.Frequency
	}
	if r.Note != nil {
		patch["note"] = *r.Note
	}
	if r.IsDeleted != nil {
		patch["is_deleted"] = *r.IsDeleted
	}
	return patch
}

type CreateMedicationSlotRequest struct {
	MedicationID uuid.UUID `json:"medicationId" binding:"required"`
	Date         time.Time `json:"date" binding:"required"`
	TimeOfDay    string    `json:"timeOfDay"`
	Status       string    `json:"status" binding:"required"`
	Amount       float64   `json:"amount" binding:"required"`
}

type UpdateMedicationSlotRequest struct {
	Date      *time.Time `json:"date"`
	TimeOfDay *string    `json:"timeOfDay"`
	Status    *string    `json:"status"`
	Amount    *float64   `json:"amount"`
	IsDeleted *bool      `json:"isDeleted"`
}

func (r UpdateMedicationSlotRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Date != nil {
		patch["date"] = *r.Date
	}
	if r.TimeOfDay != nil {
		patch["time_of_day"] = *r.TimeOfDay
	}
	if r.Status != nil {
		patch["status"] = *r.Status
	}
	if r.Amount != nil {
		patch["amount"] = *r.Amount
	}
	if r.IsDeleted != nil {
		patch["is_deleted"] = *r.IsDeleted
	}
	return patch
}

type CreateMedicineRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateMedicineRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r UpdateMedicineRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	return patch
}
