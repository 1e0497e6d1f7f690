package response

import (
	"errors"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// FromError maps a service error to the standard error response.
func FromError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return BadRequest(c, "Validation failed", verr.Fields)
	}
	message := "Internal Server Error"
	var derr *domain.Error
	if errors.As(err, &derr) {
		message = derr.Message
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicateEntry):
		return BadRequest(c, message, nil)
	case errors.Is(err, domain.ErrUnauthorized):
		return Unauthorized(c, message)
	case errors.Is(err, domain.ErrForbidden):
		return Forbidden(c, message)
	case errors.Is(err, domain.ErrNotFound):
		return NotFound(c, message)
	case errors.Is(err, domain.ErrUnavailable):
		log.Error().Err(err).Str("path", c.Path()).Msg("dependency unavailable")
		return Error(c, message, fiber.StatusInternalServerError, nil)
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return Internal(c)
}
