package request_models

import (
	"time"

	"github.com/google/uuid"
)

type CreateSleepRequest struct {
	ChildID    uuid.UUID `json:"childId" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	Duration   int       `json:"duration" binding:"required,min=1"`
	Note       string    `json:"note"`
	SleepStyle string    `json:"sleepStyle"`
}

type UpdateSleepRequest struct {
	Date       *time.Time `json:"date"`
	StartTime  *time.Time `json:"startTime"`
	Duration   *int       `json:"duration"`
	Note       *string    `json:"note"`
	SleepStyle *string    `json:"sleepStyle"`
	IsDeleted  *bool      `json:"isDeleted"`
}

func (r UpdateSleepRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Date != nil {
		patch["date"] = *r.Date
	}
	if r.StartTime != nil {
		patch["start_time"] = *r.StartTime
	}
	if r.Duration != nil {
		patch["duration"] = *r.Duration
	}
	if r.Note != nil {
		patch["note"] = *r.Note
	}
	if r.SleepStyle != nil {
		patch["sleep_style"] = *r.SleepStyle
	}
	if r.IsDeleted != nil {
		patch["is_deleted"] = *r.IsDeleted
	}
	return patch
}
