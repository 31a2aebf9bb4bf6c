package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Medicine is a medicine definition. Rows with a nil OwnerParentID form the
// shared catalog; rows with an owner are that parent's custom medicines.
type Medicine struct {
	BaseModel
	SoftDelete
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	OwnerParentID *uuid.UUID `gorm:"type:uuid;index" json:"ownerParentId,omitempty"`
}

type Medication struct {
	BaseModel
	SoftDelete
	ChildID    uuid.UUID `gorm:"type:uuid;index" json:"childId"`
	MedicineID uuid.UUID `gorm:"type:uuid" json:"medicineId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Frequency  string    `json:"frequency"`
	Note       string    `json:"note,omitempty"`

	Medicine Medicine         `json:"medicine,omitempty"`
	Slots    []MedicationSlot `gorm:"foreignKey:MedicationID" json:"slots,omitempty"`
}

type SlotStatus string

const (
	SlotTaken    SlotStatus = "taken"
	SlotMissed   SlotStatus = "missed"
	SlotNotTaken SlotStatus = "not_taken"
)

// MedicationSlot reaches its root child through the owning Medication.
type MedicationSlot struct {
	BaseModel
	SoftDelete
	MedicationID uuid.UUID  `gorm:"type:uuid;index" json:"medicationId"`
	Date         time.Time  `json:"date"`
	TimeOfDay    string     `json:"timeOfDay"`
	Status       SlotStatus `gorm:"type:varchar(16)" json:"status"`
	Amount       float64    `json:"amount"`
}
