package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mrsetia1/flowmint/internal/application/dto"
	"github.com/mrsetia1/flowmint/internal/domain"
	"github.com/mrsetia1/flowmint/internal/domain/entity"
	"github.com/mrsetia1/flowmint/internal/domain/repository"
)

// CategoryUseCase CRUD orchestration for categories.
type CategoryUseCase struct {
	categories repository.CategoryRepository
}

// NewCategoryUseCase builds the use case.
func NewCategoryUseCase(categories repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// Create stores a new category. Duplicate names surface as
// domain.ErrDuplicate from the store's unique constraint.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// List returns all categories.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return items, nil
}

// Delete removes a category by ID.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categories.Delete(ctx, id)
}
