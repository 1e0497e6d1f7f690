package auth

import (
	authsvc "nvp-welfare-backend/internal/application/auth"
	"nvp-welfare-backend/internal/middleware"
	"nvp-welfare-backend/internal/pkg/response"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handlers holds dependencies for auth endpoints.
type Handlers struct {
	Service *authsvc.Service
}

// Register POST /api/auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req authsvc.RegisterInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.Register(c.Context(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	log.Info().Str("user_id", res.User.ID).Msg("auth/register: account created, awaiting approval")
	return response.SuccessCreated(c, "Registration successful, awaiting admin approval", res, nil)
}

// Login POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req authsvc.LoginInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.Login(c.Context(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Login successful", res, nil)
}

// Me GET /api/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor.UserID == "" {
		return response.Unauthorized(c, "Not authenticated")
	}
	user, err := h.Service.Me(c.Context(), actor.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Authenticated", fiber.Map{"user": user}, nil)
}
