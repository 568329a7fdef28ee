package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mrsetia1/flowmint/internal/application/auth"
	"github.com/mrsetia1/flowmint/internal/application/usecase"
	"github.com/mrsetia1/flowmint/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ArticleUC  *usecase.ArticleUseCase
	CategoryUC *usecase.CategoryUseCase
	UploadUC   *usecase.UploadUseCase
	JWTSecret  string
}

// Router registers the API routes. Reads are public; every mutation sits
// behind the auth middleware, and destructive operations require admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public). Login is rate-limited per client IP against
	// credential brute-forcing.
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", RateLimitByIP(LoginLimit), authHandler.Login)

	// Public reads.
	articleHandler := NewArticleHandler(deps.ArticleUC)
	api.Get("/articles", articleHandler.List)
	api.Get("/articles/slug/:slug", articleHandler.GetBySlug)
	api.Get("/articles/:id", articleHandler.GetByID)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories", categoryHandler.List)

	// Protected mutations (Bearer token).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/articles", articleHandler.Create)
	protected.Put("/articles/:id", articleHandler.Update)
	protected.Delete("/articles/:id", RequireRole(entity.RoleAdmin), articleHandler.Delete)

	protected.Post("/categories", categoryHandler.Create)
	protected.Delete("/categories/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	uploadHandler := NewUploadHandler(deps.UploadUC)
	protected.Post("/upload", uploadHandler.Upload)
}
