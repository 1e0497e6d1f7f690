package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	app := fiber.New()
	app.Use(CORS(CORSConfig{AllowedOrigins: []string{"https://nvpwelfare.in/"}, AllowLocalhost: true}))
	app.Get("/x", func(c *fiber.Ctx) error { return c.SendString("ok") })

	cases := []struct {
		origin string
		want   int
	}{
		{"", fiber.StatusOK},
		{"https://nvpwelfare.in", fiber.StatusOK},
		{"http://localhost:3000", fiber.StatusOK},
		{"https://evil.example", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/x", nil)
		if tc.origin != "" {
			req.Header.Set("Origin", tc.origin)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, tc.origin)
		if tc.want == fiber.StatusOK && tc.origin != "" {
			assert.Equal(t, tc.origin, resp.Header.Get("Access-Control-Allow-Origin"))
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	app := fiber.New()
	app.Use(CORS(CORSConfig{AllowedOrigins: []string{"https://nvpwelfare.in"}}))
	req := httptest.NewRequest("OPTIONS", "/anything", nil)
	req.Header.Set("Origin", "https://nvpwelfare.in")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}
