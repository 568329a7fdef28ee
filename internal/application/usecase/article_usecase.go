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

// ArticleUseCase CRUD orchestration for articles.
type ArticleUseCase struct {
	articles   repository.ArticleRepository
	categories repository.CategoryRepository
}

// NewArticleUseCase builds the use case.
func NewArticleUseCase(articles repository.ArticleRepository, categories repository.CategoryRepository) *ArticleUseCase {
	return &ArticleUseCase{articles: articles, categories: categories}
}

// Create stores a new article. The category must exist; the slug is derived
// from the title and de-duplicated with a short random suffix on collision.
func (uc *ArticleUseCase) Create(ctx context.Context, in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	category, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	slug, err := uc.uniqueSlug(ctx, in.Title)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	article := &entity.Article{
		ID:         uuid.New().String(),
		Title:      in.Title,
		Slug:       slug,
		Content:    in.Content,
		CategoryID: in.CategoryID,
		Image:      in.Image,
		CreatedAt:  now,
		UpdatedAt:  now,
		Category:   category,
	}
	if err := uc.articles.Create(ctx, article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// GetByID returns an article with its category, or nil when absent.
func (uc *ArticleUseCase) GetByID(ctx context.Context, id string) (*dto.ArticleResponse, error) {
	article, err := uc.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// GetBySlug returns an article by its slug, or nil when absent.
func (uc *ArticleUseCase) GetBySlug(ctx context.Context, slug string) (*dto.ArticleResponse, error) {
	article, err := uc.articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// List returns a page of articles, newest first, categories embedded.
func (uc *ArticleUseCase) List(ctx context.Context, limit, offset int) (*dto.ArticleListResponse, error) {
	list, err := uc.articles.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticleResponse(a))
	}
	return &dto.ArticleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update applies the non-nil fields. A title change regenerates the slug.
// Returns nil when the article does not exist.
func (uc *ArticleUseCase) Update(ctx context.Context, id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	article, err := uc.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}
	if in.Title != nil && *in.Title != article.Title {
		article.Title = *in.Title
		slug, err := uc.uniqueSlug(ctx, *in.Title)
		if err != nil {
			return nil, err
		}
		article.Slug = slug
	}
	if in.Content != nil {
		article.Content = *in.Content
	}
	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		article.CategoryID = *in.CategoryID
		article.Category = category
	}
	if in.Image != nil {
		article.Image = *in.Image
	}
	article.UpdatedAt = time.Now()
	if err := uc.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// Delete removes an article by ID.
func (uc *ArticleUseCase) Delete(ctx context.Context, id string) error {
	article, err := uc.articles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return domain.ErrNotFound
	}
	return uc.articles.Delete(ctx, id)
}

func (uc *ArticleUseCase) uniqueSlug(ctx context.Context, title string) (string, error) {
	slug := slugify(title)
	if slug == "" {
		slug = "article"
	}
	existing, err := uc.articles.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return slug, nil
	}
	// Collision: suffix with a short random fragment.
	return slug + "-" + uuid.New().String()[:8], nil
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	if a == nil {
		return nil
	}
	resp := &dto.ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Content:   a.Content,
		Image:     a.Image,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Category != nil {
		resp.Category = &dto.CategoryResponse{ID: a.Category.ID, Name: a.Category.Name}
	}
	return resp
}
