package db_models

import "time"

type Child struct {
	BaseModel
	FirstName  string    `json:"firstName"`
	MiddleName string    `json:"middleName,omitempty"`
	LastName   string    `json:"lastName"`
	Birthday   time.Time `json:"birthday"`
	Region     string    `json:"region"`
	Gender     string    `json:"gender"`
	BloodGroup string    `json:"bloodGroup,omitempty"`
	Image      string    `json:"image,omitempty"`

	Relations []ParentChild `json:"-"`
}
