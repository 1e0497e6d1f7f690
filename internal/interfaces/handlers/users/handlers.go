package users

import (
	usersvc "nvp-welfare-backend/internal/application/users"
	"nvp-welfare-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *usersvc.Service
}

// ListMembers GET /api/users/members
func (h *Handlers) ListMembers(c *fiber.Ctx) error {
	users, err := h.Service.ListMembers(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Member users retrieved", users, nil)
}

// Approve PATCH /api/users/:id/approve
func (h *Handlers) Approve(c *fiber.Ctx) error {
	if err := h.Service.Approve(c.Context(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "User approved successfully", nil, nil)
}

// Reject PATCH /api/users/:id/reject
func (h *Handlers) Reject(c *fiber.Ctx) error {
	if err := h.Service.Reject(c.Context(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "User rejected successfully", nil, nil)
}
