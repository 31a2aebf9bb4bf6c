package db_models

import (
	"time"

	"github.com/google/uuid"
)

type MilkType struct {
	BaseModel
	SoftDelete
	Name string `gorm:"unique" json:"name"`
}

type Bottle struct {
	BaseModel
	SoftDelete
	ChildID    uuid.UUID `gorm:"type:uuid;index" json:"childId"`
	MilkTypeID uuid.UUID `gorm:"type:uuid" json:"milkTypeId"`
	Date       time.Time `json:"date"`
	Time       time.Time `json:"time"`
	Volume     float64   `json:"volume,omitempty"`
	Stash      string    `json:"stash,omitempty"`
	Notes      string    `json:"notes,omitempty"`

	MilkType MilkType `json:"milkType,omitempty"`
}

type Nursing struct {
	BaseModel
	SoftDelete
	ChildID       uuid.UUID `gorm:"type:uuid;index" json:"childId"`
	Date          time.Time `json:"date"`
	Time          time.Time `json:"time"`
	LeftDuration  int       `json:"leftDuration,omitempty"`
	RightDuration int       `json:"rightDuration,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

type Category struct {
	BaseModel
	SoftDelete
	Name string `gorm:"unique" json:"name"`

	Items []CategoryItem `json:"items,omitempty"`
}

// CategoryItem is an ingredient definition. Default items are shared and
// immutable; custom items belong to the parent who created them.
type CategoryItem struct {
	BaseModel
	SoftDelete
	CategoryID    uuid.UUID  `gorm:"type:uuid;index" json:"categoryId"`
	Name          string     `json:"name"`
	IsDefault     bool       `json:"isDefault"`
	OwnerParentID *uuid.UUID `gorm:"type:uuid" json:"ownerParentId,omitempty"`

	Category Category `json:"category,omitempty"`
}

// Solids is a solid-food feeding entry owning its ingredient lines.
type Solids struct {
	BaseModel
	SoftDelete
	ChildID uuid.UUID `gorm:"type:uuid;index" json:"childId"`
	Date    time.Time `json:"date"`
	Note    string    `json:"note,omitempty"`

	Lines []SolidLine `gorm:"foreignKey:SolidsID" json:"lines,omitempty"`
}

// SolidLine reaches its root child through the owning Solids entry.
type SolidLine struct {
	BaseModel
	SoftDelete
	SolidsID       uuid.UUID `gorm:"type:uuid;index" json:"solidsId"`
	CategoryItemID uuid.UUID `gorm:"type:uuid" json:"categoryItemId"`
	Amount         float64   `json:"amount,omitempty"`

	CategoryItem CategoryItem `json:"categoryItem,omitempty"`
}
