package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig holds the allowed origin list. "*" allows any origin without credentials.
type CORSConfig struct {
	AllowedOrigins []string
	AllowLocalhost bool
}

// CORS allows listed origins (and localhost when enabled). Other cross-origin requests get 403.
func CORS(cfg CORSConfig) fiber.Handler {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	wildcard := false
	for _, o := range cfg.AllowedOrigins {
		o = strings.TrimRight(strings.ToLower(o), "/")
		if o == "*" {
			wildcard = true
		}
		allowed[o] = true
	}
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		// No origin (same-origin or tools): allow
		if origin == "" {
			return c.Next()
		}
		key := strings.TrimRight(strings.ToLower(origin), "/")
		ok := wildcard || allowed[key] ||
			(cfg.AllowLocalhost && (strings.HasPrefix(key, "http://localhost:") || strings.HasPrefix(key, "http://127.0.0.1:")))
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status": "error",
				"error": fiber.Map{
					"message":    "Not allowed by CORS",
					"statusCode": 403,
					"details":    fiber.Map{},
				},
			})
		}
		setCORSHeaders(c, origin, !wildcard)
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}

func setCORSHeaders(c *fiber.Ctx, origin string, credentials bool) {
	c.Set("Access-Control-Allow-Origin", origin)
	c.Set("Vary", "Origin")
	if credentials {
		c.Set("Access-Control-Allow-Credentials", "true")
	}
	c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	c.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
}
