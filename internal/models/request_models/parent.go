package request_models

type UpdateParentRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
	Image       *string `json:"image"`
	BloodGroup  *string `json:"bloodGroup"`
	Address     *string `json:"address"`
}

func (r UpdateParentRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.FirstName != nil {
		patch["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		patch["last_name"] = *r.LastName
	}
	if r.PhoneNumber != nil {
		patch["phone_number"] = *r.PhoneNumber
	}
	if r.Image != nil {
		patch["image"] = *r.Image
	}
	if r.BloodGroup != nil {
		patch["blood_group"] = *r.BloodGroup
	}
	if r.Address != nil {
		patch["address"] = *r.Address
	}
	return patch
}
