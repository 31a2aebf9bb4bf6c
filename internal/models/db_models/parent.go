package db_models

type Parent struct {
	BaseModel
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `gorm:"unique" json:"email"`
	Password         string `json:"-"`
	PhoneNumber      string `gorm:"unique" json:"phoneNumber"`
	Image            string `json:"image,omitempty"`
	BloodGroup       string `json:"bloodGroup,omitempty"`
	Address          string `json:"address,omitempty"`
	RefreshTokenHash string `json:"-"`

	Relations []ParentChild `json:"-"`
}
