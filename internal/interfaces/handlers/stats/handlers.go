package stats

import (
	statssvc "nvp-welfare-backend/internal/application/stats"
	"nvp-welfare-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *statssvc.Service
}

// Get GET /api/stats (public)
func (h *Handlers) Get(c *fiber.Ctx) error {
	s, err := h.Service.Collect(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Stats retrieved", s, nil)
}
