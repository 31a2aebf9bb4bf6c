package request_models

type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Author  string `json:"author"`
	Image   string `json:"image"`
}

type UpdateArticleRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Author  *string `json:"author"`
	Image   *string `json:"image"`
}

func (r UpdateArticleRequest) ToPatch() map[string]any {
	patch := map[string]any{}
	if r.Title != nil {
		patch["title"] = *r.Title
	}
	if r.Content != nil {
		patch["content"] = *r.Content
	}
	if r.Author != nil {
		patch["author"] = *r.Author
	}
	if r.Image != nil {
		patch["image"] = *r.Image
	}
	return patch
}
