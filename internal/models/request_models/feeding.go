package request_models

import (
	"time"

	"github.com/google/uuid"
)

type CreateBottleRequest struct {
	ChildID    uuid.UUID `json:"childId" binding:"required"`
	MilkTypeID uuid.UUID `json:"milkTypeId" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	Time       time.Time `json:"time" binding:"required"`
	Volume     float64   `json:"volume"`
	Stash      string    `json:"stash"`
	Notes      string    `json:"notes"`
}

type UpdateBottleRequest struct {
	MilkTypeID *uuid.UUID `json:"milkTypeId"`
	Date       *time.Time `json:"date"`
	Time       *time.Time `json:"time"`
	Volume     *float64   `json:"volume"`
	Stash      *string    `json:"stash"`
	Notes      *string    `json:"notes"`
	IsDeleted  *bool      `json:"isDeleted"`
}

func (r UpdateBottleRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.MilkTypeID != nil {
		patch["milk_type_id"] = *r.MilkTypeID
	}
	if r.Date != nil {
		patch["date"] = *r.Date
	}
	if r.Time != nil {
		patch["time"] = *r.Time
	}
	if r.Volume != nil {
		patch["volume"] = *r.Volume
	}
	if r.Stash != nil {
		patch["stash"] = *r.Stash
	}
	if r.Notes != nil {
		patch["notes"] = *r.Notes
	}
	if r.IsDeleted != nil {
		patch["is_deleted"] = *r.IsDeleted
	}
	return patch
}

type CreateNursingRequest struct {
	ChildID       uuid.UUID `json:"childId" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
	Time          time.Time `json:"time" binding:"required"`
	LeftDuration  int       `json:"leftDuration"`
	RightDuration int       `json:"rightDuration"`
	Notes         string    `json:"notes"`
}

type UpdateNursingRequest struct {
	Date          *time.Time `json:"date"`
	Time          *time.Time `json:"time"`
	LeftDuration  *int       `json:"leftDuration"`
	RightDuration *int       `json:"rightDuration"`
	Notes         *string    `json:"notes"`
	IsDeleted     *bool      `json:"isDeleted"`
}

func (r UpdateNursingRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Date != nil {
		patch["date"] = *r.Date
	}
	if r.Time != nil {
		patch["time"] = *r.Time
	}
	if r.LeftDuration != nil {
		patch["left_duration"] = *r.LeftDuration
	}
	if r.RightDuration != nil {
		patch["right_duration"] = *r.RightDuration
	}
	if r.Notes != nil {
		patch["notes"] = *r.Notes
	}
	if r.IsDeleted != nil {
		patch["is_deleted"] = *r.IsDeleted
	}
	return patch
}

type SolidLineRequest struct {
	CategoryItemID uuid.UUID `json:"categoryItemId" binding:"required"`
	Amount         float64   `json:"amount"`
}

type CreateSolidsRequest struct {
	ChildID uuid.UUID          `json:"childId" binding:"required"`
	Date    time.Time          `json:"date" binding:"required"`
	Note    string             `json:"note"`
	Lines   []SolidLineRequest `json:"lines" binding:"required,min=1"`
}

type UpdateSolidsRequest struct {
	Date      *time.Time `json:"date"`
	Note      *string    `json:"note"`
	IsDeleted *bool      `json:"isDeleted"`
}

func (r UpdateSolidsRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Date != nil {
		patch["date"] = *r.Date
	}
	if r.Note != nil {
		patch["note"] = *r.Note
	}
	if r.IsDeleted != nil {
		patch["is_deleted"] = *r.IsDeleted
	}
	return patch
}

type CreateMilkTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateMilkTypeRequest struct {
	Name *string `json:"name"`
}

func (r UpdateMilkTypeRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	return patch
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

func (r UpdateCategoryRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	return patch
}

type CreateCategoryItemRequest struct {
	CategoryID uuid.UUID `json:"categoryId" binding:"required"`
	Name       string    `json:"name" binding:"required"`
}

type UpdateCategoryItemRequest struct {
	Name *string `json:"name"`
}

func (r UpdateCategoryItemRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	return patch
}
