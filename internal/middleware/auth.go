package middleware

import (
	"errors"
	"strings"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/pkg/response"
	"nvp-welfare-backend/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// TokenVerifier is satisfied by *token.Issuer.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// RequireAuth verifies the bearer token and stores its claims in Locals. Returns 401 if missing, expired or invalid.
func RequireAuth(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return response.Unauthorized(c, "Not authenticated")
		}
		claims, err := v.Verify(raw)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				return response.Unauthorized(c, "Token expired")
			}
			return response.Unauthorized(c, "Invalid token")
		}
		c.Locals(userLocal, claims)
		return c.Next()
	}
}

// OptionalAuth populates claims when a valid token is present and never rejects.
func OptionalAuth(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := bearerToken(c); raw != "" {
			if claims, err := v.Verify(raw); err == nil {
				c.Locals(userLocal, claims)
			}
		}
		return c.Next()
	}
}

// GetUser returns the authenticated claims from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals(userLocal).(*token.Claims)
	return claims
}

// Actor converts the token claims into a service-level caller (zero value if anonymous).
func Actor(c *fiber.Ctx) domain.Actor {
	claims := GetUser(c)
	if claims == nil {
		return domain.Actor{}
	}
	return domain.Actor{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
}

// SetUser stores claims in Locals; used by tests and internal callers.
func SetUser(c *fiber.Ctx, claims *token.Claims) {
	c.Locals(userLocal, claims)
}

func bearerToken(c *fiber.Ctx) string {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
