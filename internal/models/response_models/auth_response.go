package response_models

type ChildSummary struct {
	ChildID   string `json:"childId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginResponse struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	Children     []ChildSummary `json:"children"`
}

type SignUpResponse struct {
	ParentID string `json:"parentId"`
	Email    string `json:"email"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
