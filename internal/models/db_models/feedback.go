package db_models

import "github.com/google/uuid"

type Feedback struct {
	BaseModel
	ParentID uuid.UUID `gorm:"type:uuid;index" json:"parentId"`
	Comment  string    `json:"comment"`
	Rating   int       `json:"rating"`
}
