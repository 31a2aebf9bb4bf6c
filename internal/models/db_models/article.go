package db_models

// Article is editorial content published to all parents. Not child-scoped
// and readable by every authenticated caller.
type Article struct {
	BaseModel
	SoftDelete
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `gorm:"index" json:"author"`
	Image   string `json:"image"`
}
