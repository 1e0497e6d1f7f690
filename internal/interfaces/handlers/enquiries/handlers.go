package enquiries

import (
	enquirysvc "nvp-welfare-backend/internal/application/enquiries"
	"nvp-welfare-backend/internal/pkg/response"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *enquirysvc.Service
}

// Create POST /api/enquiries (public)
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req enquirysvc.CreateInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	id, err := h.Service.Create(c.Context(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "Enquiry submitted successfully", fiber.Map{"id": id}, nil)
}

// List GET /api/enquiries
func (h *Handlers) List(c *fiber.Ctx) error {
	out, err := h.Service.List(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Enquiries retrieved", out, nil)
}
