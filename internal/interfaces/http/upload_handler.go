package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mrsetia1/flowmint/internal/application/dto"
	"github.com/mrsetia1/flowmint/internal/application/usecase"
)

// UploadHandler handles multipart file uploads.
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

// NewUploadHandler builds the handler.
func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Upload a file
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No file provided"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Unreadable file"})
	}
	defer f.Close()

	out, err := h.uc.Save(c.Context(), fh.Filename, f, fh.Size, fh.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
	return c.JSON(out)
}
