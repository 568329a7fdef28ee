package dto

import "time"

// CreateArticleRequest article creation input. Image is the public path
// returned by the upload endpoint.
type CreateArticleRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=300"`
	Content    string `json:"content" validate:"required"`
	CategoryID string `json:"categoryId" validate:"required,uuid"`
	Image      string `json:"image" validate:"omitempty,max=500"`
}

// UpdateArticleRequest partial article update; nil fields are untouched.
type UpdateArticleRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	CategoryID *string `json:"categoryId"`
	Image      *string `json:"image"`
}

// ArticleResponse article output with its category embedded.
type ArticleResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Slug      string            `json:"slug"`
	Content   string            `json:"content"`
	Image     string            `json:"image,omitempty"`
	Category  *CategoryResponse `json:"category,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ArticleListResponse paginated article list.
type ArticleListResponse struct {
	Items []ArticleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
