package members

import (
	membersvc "nvp-welfare-backend/internal/application/members"
	"nvp-welfare-backend/internal/middleware"
	"nvp-welfare-backend/internal/pkg/response"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *membersvc.Service
}

// Create POST /api/members
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req membersvc.CreateInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.Create(c.Context(), req, middleware.Actor(c))
	if err != nil {
		return response.FromError(c, err)
	}
	log.Info().Str("member_number", res.MemberNumber).Msg("members: created")
	return response.SuccessCreated(c, "Member created successfully", res, nil)
}

// List GET /api/members
func (h *Handlers) List(c *fiber.Ctx) error {
	members, err := h.Service.List(c.Context(), middleware.Actor(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Members retrieved", members, nil)
}

// UpdateStatus PATCH /api/members/:id/status?status=approved; a JSON body is accepted when the query is absent.
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	req := membersvc.StatusInput{Status: c.Query("status")}
	if req.Status == "" {
		if err := validation.ParseBody(c, &req); err != nil {
			return response.FromError(c, err)
		}
	}
	if err := h.Service.UpdateStatus(c.Context(), c.Params("id"), req); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Member status updated", nil, nil)
}

// Delete DELETE /api/members/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Member deleted successfully", nil, nil)
}
