package beneficiaries

import (
	beneficiarysvc "nvp-welfare-backend/internal/application/beneficiaries"
	"nvp-welfare-backend/internal/pkg/response"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *beneficiarysvc.Service
}

// Create POST /api/beneficiaries
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req beneficiarysvc.CreateInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	id, err := h.Service.Create(c.Context(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "Beneficiary created successfully", fiber.Map{"id": id}, nil)
}

func (h *Handlers) List(c *fiber.Ctx) error {
	out, err := h.Service.List(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Beneficiaries retrieved", out, nil)
}

// Get GET /api/beneficiaries/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	b, err := h.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Beneficiary retrieved", b, nil)
}

func (h *Handlers) Delete(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Beneficiary deleted successfully", nil, nil)
}
