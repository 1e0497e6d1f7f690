package uploads

import (
	"io"

	uploadsvc "nvp-welfare-backend/internal/application/uploads"
	"nvp-welfare-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handlers bundles upload handlers with the service.
type Handlers struct {
	Service *uploadsvc.Service
}

// UploadImage POST /api/upload-image (multipart field "file")
func (h *Handlers) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return response.FromError(c, uploadsvc.ErrFileRequired)
	}
	if fh.Size > uploadsvc.MaxBytes {
		return response.FromError(c, uploadsvc.ErrFileTooLarge)
	}
	f, err := fh.Open()
	if err != nil {
		return response.FromError(c, uploadsvc.ErrFileRequired)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, uploadsvc.MaxBytes+1))
	if err != nil {
		log.Error().Err(err).Msg("upload: failed to read multipart file")
		return response.Internal(c)
	}
	res, err := h.Service.Upload(c.Context(), data)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Image uploaded successfully", res, nil)
}

// Serve GET /api/uploads/:filename
func (h *Handlers) Serve(c *fiber.Ctx) error {
	obj, err := h.Service.Open(c.Context(), c.Params("filename"))
	if err != nil {
		return response.FromError(c, err)
	}
	if obj.RedirectURL != "" {
		return c.Redirect(obj.RedirectURL, fiber.StatusFound)
	}
	c.Set(fiber.HeaderContentType, obj.ContentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.SendStream(obj.Body)
}
