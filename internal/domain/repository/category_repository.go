package repository

import (
	"context"

	"github.com/mrsetia1/flowmint/internal/domain/entity"
)

// CategoryRepository is the persistence port for Category. Duplicate names
// surface as domain.ErrDuplicate from Create.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
