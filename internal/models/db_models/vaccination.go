package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Vaccine is a region-scoped vaccine definition; AgeInMonths offsets the
// child's birthday when the schedule is generated.
type Vaccine struct {
	BaseModel
	SoftDelete
	Name        string `json:"name"`
	Region      string `gorm:"index" json:"region"`
	AgeInMonths int    `json:"ageInMonths"`
	Description string `json:"description,omitempty"`
}

type Symptom struct {
	BaseModel
	SoftDelete
	Name string `gorm:"unique" json:"name"`
}

type Vaccination struct {
	BaseModel
	SoftDelete
	ChildID   uuid.UUID `gorm:"type:uuid;index" json:"childId"`
	VaccineID uuid.UUID `gorm:"type:uuid" json:"vaccineId"`
	Date      time.Time `json:"date"`
	Venue     string    `json:"venue,omitempty"`
	Notes     string    `json:"notes,omitempty"`

	Vaccine  Vaccine              `json:"vaccine,omitempty"`
	Symptoms []VaccinationSymptom `gorm:"foreignKey:VaccinationID" json:"symptoms,omitempty"`
	Images   []VaccinationImage   `gorm:"foreignKey:VaccinationID" json:"images,omitempty"`
}

// VaccinationSymptom links a vaccination to an observed post-vaccination
// symptom; soft-deleted together with its vaccination.
type VaccinationSymptom struct {
	BaseModel
	SoftDelete
	VaccinationID uuid.UUID `gorm:"type:uuid;index" json:"vaccinationId"`
	SymptomID     uuid.UUID `gorm:"type:uuid" json:"symptomId"`

	Symptom Symptom `json:"symptom,omitempty"`
}

type VaccinationImage struct {
	BaseModel
	SoftDelete
	VaccinationID uuid.UUID `gorm:"type:uuid;index" json:"vaccinationId"`
	Path          string    `json:"path"`
}
