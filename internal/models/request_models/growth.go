package request_models

import (
	"time"

	"github.com/google/uuid"
)

type CreateGrowthRequest struct {
	ChildID uuid.UUID `json:"childId" binding:"required"`
	Date    time.Time `json:"date" binding:"required"`
	Weight  float64   `json:"weight"`
	Height  float64   `json:"height"`
	Note    string    `json:"note"`
}

type UpdateGrowthRequest struct {
	Date      *time.Time `json:"date"`
	Weight    *float64   `json:"weight"`
	Height    *float64   `json:"height"`
	Note      *string    `json:"note"`
	IsDeleted *bool      `json:"isDeleted"`
}

func (r UpdateGrowthRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Date != nil {
		patch["date"] = *r.Date
	}
	if r.Weight != nil {
		patch["weight"] = *r.Weight
	}
	if r.Height != nil {
		patch["height"] = *r.Height
	}
	if r.Note != nil {
		patch["note"] = *r.Note
	}
	if r.IsDeleted != nil {
		patch["is_deleted"] = *r.IsDeleted
	}
	return patch
}
