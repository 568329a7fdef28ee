package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mrsetia1/flowmint/internal/application/dto"
	"github.com/mrsetia1/flowmint/internal/application/usecase"
	"github.com/mrsetia1/flowmint/internal/domain"
)

// ArticleHandler handles article CRUD. Reads are public; writes sit behind
// AuthMiddleware and delete behind RequireRole(admin).
type ArticleHandler struct {
	uc *usecase.ArticleUseCase
}

// NewArticleHandler builds the handler.
func NewArticleHandler(uc *usecase.ArticleUseCase) *ArticleHandler {
	return &ArticleHandler{uc: uc}
}

// List godoc
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.ArticleListResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Param        id  path  string  true  "Article ID"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Article not found"})
	}
	return c.JSON(out)
}

// GetBySlug godoc
// @Summary      Get an article by slug
// @Tags         articles
// @Produce      json
// @Param        slug  path  string  true  "Article slug"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/slug/{slug} [get]
func (h *ArticleHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Article not found"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create an article
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticleRequest  true  "Article data"
// @Success      201   {object}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if in.Title == "" || in.Content == "" || in.CategoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Title, content and categoryId are required"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update an article
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Article ID"
// @Param        body  body  dto.UpdateArticleRequest  true  "Fields to update"
// @Success      200   {object}  dto.ArticleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Article not found"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete an article
// @Tags         articles
// @Security     Bearer
// @Param        id  path  string  true  "Article ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Article not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
