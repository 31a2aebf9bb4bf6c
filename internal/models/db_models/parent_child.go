package db_models

import (
	"time"

	"github.com/google/uuid"
)

// RelationStatus is the authorization source of truth. A (parent, child)
// pair grants access only while its status is Active; Deleted is terminal
// and the row is kept for history.
type RelationStatus string

const (
	RelationActive  RelationStatus = "Active"
	RelationDeleted RelationStatus = "Deleted"
)

type ParentChild struct {
	BaseModel
	ParentID      uuid.UUID      `gorm:"type:uuid;index:idx_parent_child,priority:1" json:"parentId"`
	ChildID       uuid.UUID      `gorm:"type:uuid;index:idx_parent_child,priority:2" json:"childId"`
	Relation      string         `json:"relation"`
	Status        RelationStatus `gorm:"type:varchar(16)" json:"status"`
	RequestedDate time.Time      `json:"requestedDate"`

	Child Child `json:"child,omitempty"`
}
