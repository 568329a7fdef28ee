package dto

// CreateCategoryRequest category creation input.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// CategoryResponse category output.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
