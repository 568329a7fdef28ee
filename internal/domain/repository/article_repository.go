package repository

import (
	"context"

	"github.com/mrsetia1/flowmint/internal/domain/entity"
)

// ArticleRepository is the persistence port for Article. Reads join the
// category row so list/detail responses can embed it. Finders return
// (nil, nil) when no row matches.
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id string) (*entity.Article, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error
}
