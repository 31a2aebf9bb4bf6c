package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Sleep struct {
	BaseModel
	SoftDelete
	ChildID    uuid.UUID `gorm:"type:uuid;index" json:"childId"`
	Date       time.Time `json:"date"`
	StartTime  time.Time `json:"startTime"`
	Duration   int       `json:"duration"` // minutes
	Note       string    `json:"note,omitempty"`
	SleepStyle string    `json:"sleepStyle,omitempty"`
}
