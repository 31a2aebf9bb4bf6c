package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Growth struct {
	BaseModel
	SoftDelete
	ChildID uuid.UUID `gorm:"type:uuid;index" json:"childId"`
	Date    time.Time `json:"date"`
	Weight  float64   `json:"weight,omitempty"`
	Height  float64   `json:"height,omitempty"`
	Note    string    `json:"note,omitempty"`
}
