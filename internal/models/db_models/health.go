package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Allergy struct {
	BaseModel
	SoftDelete
	ChildID  uuid.UUID `gorm:"type:uuid;index" json:"childId"`
	Name     string    `json:"name"`
	Severity string    `json:"severity,omitempty"`
	Note     string    `json:"note,omitempty"`
	Date     time.Time `json:"date"`
}

type Appointment struct {
	BaseModel
	SoftDelete
	ChildID           uuid.UUID `gorm:"type:uuid;index" json:"childId"`
	Doctor            string    `json:"doctor"`
	Date              time.Time `json:"date"`
	Venue             string    `json:"venue"`
	Note              string    `json:"note,omitempty"`
	AppointmentNumber int       `json:"appointmentNumber,omitempty"`
}

type HealthRecord struct {
	BaseModel
	SoftDelete
	ChildID uuid.UUID `gorm:"type:uuid;index" json:"childId"`
	Title   string    `json:"title"`
	File    string    `json:"file,omitempty"`
	Date    time.Time `json:"date"`
	Notes   string    `json:"notes,omitempty"`
}
