package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrsetia1/flowmint/internal/domain"
	"github.com/mrsetia1/flowmint/internal/domain/entity"
	"github.com/mrsetia1/flowmint/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implements the ArticleRepository port on PostgreSQL. Reads
// join the category row so responses can embed it.
type ArticleRepo struct {
	pool *pgxpool.Pool
}

// NewArticleRepository builds the article persistence adapter.
func NewArticleRepository(pool *pgxpool.Pool) *ArticleRepo {
	return &ArticleRepo{pool: pool}
}

const articleColumns = `
	a.id, a.title, a.slug, a.content, a.category_id, a.image, a.created_at, a.updated_at,
	c.id, c.name, c.created_at`

// Create persists a new article.
func (r *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	query := `
		INSERT INTO articles (id, title, slug, content, category_id, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		article.ID, article.Title, article.Slug, article.Content,
		article.CategoryID, article.Image, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID returns one article with its category, or nil when absent.
func (r *ArticleRepo) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles a JOIN categories c ON c.id = a.category_id
		WHERE a.id = $1`
	return r.scanOne(ctx, query, id)
}

// GetBySlug returns one article by slug, or nil when absent.
func (r *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles a JOIN categories c ON c.id = a.category_id
		WHERE a.slug = $1`
	return r.scanOne(ctx, query, slug)
}

// List returns a page of articles, newest first.
func (r *ArticleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles a JOIN categories c ON c.id = a.category_id
		ORDER BY a.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update rewrites the mutable article columns.
func (r *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	query := `
		UPDATE articles
		SET title = $2, slug = $3, content = $4, category_id = $5, image = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		article.ID, article.Title, article.Slug, article.Content,
		article.CategoryID, article.Image, article.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article by ID.
func (r *ArticleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func (r *ArticleRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Article, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

func scanArticle(row pgx.Row) (*entity.Article, error) {
	var a entity.Article
	var c entity.Category
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Content, &a.CategoryID, &a.Image, &a.CreatedAt, &a.UpdatedAt,
		&c.ID, &c.Name, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Category = &c
	return &a, nil
}
