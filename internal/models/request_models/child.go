package request_models

import "time"

type CreateChildRequest struct {
	FirstName  string    `json:"firstName" binding:"required"`
	MiddleName string    `json:"middleName"`
	LastName   string    `json:"lastName" binding:"required"`
	Birthday   time.Time `json:"birthday" binding:"required"`
	Region     string    `json:"region" binding:"required"`
	Gender     string    `json:"gender" binding:"required"`
	BloodGroup string    `json:"bloodGroup"`
	Image      string    `json:"image"`
}

type UpdateChildRequest struct {
	FirstName  *string    `json:"firstName"`
	MiddleName *string    `json:"middleName"`
	LastName   *string    `json:"lastName"`
	Birthday   *time.Time `json:"birthday"`
	Region     *string    `json:"region"`
	Gender     *string    `json:"gender"`
	BloodGroup *string    `json:"bloodGroup"`
	Image      *string    `json:"image"`
}

func (r UpdateChildRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.FirstName != nil {
		patch["first_name"] = *r.FirstName
	}
	if r.MiddleName != nil {
		patch["middle_name"] = *r.MiddleName
	}
	if r.LastName != nil {
		patch["last_name"] = *r.LastName
	}
	if r.Birthday != nil {
		patch["birthday"] = *r.Birthday
	}
	if r.Region != nil {
		patch["region"] = *r.Region
	}
	if r.Gender != nil {
		patch["gender"] = *r.Gender
	}
	if r.BloodGroup != nil {
		patch["blood_group"] = *r.BloodGroup
	}
	if r.Image != nil {
		patch["image"] = *r.Image
	}
	return patch
}
