package repository

import (
	"context"

	"github.com/mrsetia1/flowmint/internal/domain/entity"
)

// UserRepository is the persistence port for User. Finders return
// (nil, nil) when no row matches; duplicate emails surface as
// domain.ErrEmailAlreadyExists from Create.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
