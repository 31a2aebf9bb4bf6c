package response_models

type ParentProfileResponse struct {
	ParentID    string `json:"parentId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Image       string `json:"image,omitempty"`
	BloodGroup  string `json:"bloodGroup,omitempty"`
	Address     string `json:"address,omitempty"`
}
