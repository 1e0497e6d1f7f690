package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"nvp-welfare-backend/internal/pkg/constants"
	"nvp-welfare-backend/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(iss *token.Issuer, perm string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{RequireAuth(iss)}
	if perm != "" {
		handlers = append(handlers, AuthorizePermission(perm))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString(GetUser(c).Role)
	})
	app.Get("/p", handlers...)
	return app
}

func doGet(t *testing.T, app *fiber.App, authHeader string) int {
	req := httptest.NewRequest("GET", "/p", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequireAuth(t *testing.T) {
	iss := token.NewIssuer("secret", time.Hour)
	app := newProtectedApp(iss, "")

	assert.Equal(t, fiber.StatusUnauthorized, doGet(t, app, ""))
	assert.Equal(t, fiber.StatusUnauthorized, doGet(t, app, "Basic abc"))
	assert.Equal(t, fiber.StatusUnauthorized, doGet(t, app, "Bearer garbage"))

	other, err := token.NewIssuer("other", time.Hour).Issue("u", "a@b.in", constants.Admin)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, doGet(t, app, "Bearer "+other))

	good, err := iss.Issue("u", "a@b.in", constants.Member)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, doGet(t, app, "Bearer "+good))
	assert.Equal(t, fiber.StatusOK, doGet(t, app, "bearer "+good))
}

func TestAuthorizePermission(t *testing.T) {
	iss := token.NewIssuer("secret", time.Hour)
	app := newProtectedApp(iss, constants.ManageContent)

	member, _ := iss.Issue("u1", "m@b.in", constants.Member)
	public, _ := iss.Issue("u2", "p@b.in", constants.Public)
	admin, _ := iss.Issue("u3", "a@b.in", constants.Admin)

	assert.Equal(t, fiber.StatusForbidden, doGet(t, app, "Bearer "+member))
	assert.Equal(t, fiber.StatusForbidden, doGet(t, app, "Bearer "+public))
	assert.Equal(t, fiber.StatusOK, doGet(t, app, "Bearer "+admin))
}

func TestAuthorizePermission_Unconfigured(t *testing.T) {
	iss := token.NewIssuer("secret", time.Hour)
	app := newProtectedApp(iss, "no_such_permission")
	admin, _ := iss.Issue("u3", "a@b.in", constants.Admin)
	assert.Equal(t, fiber.StatusInternalServerError, doGet(t, app, "Bearer "+admin))
}

func TestOptionalAuth(t *testing.T) {
	iss := token.NewIssuer("secret", time.Hour)
	app := fiber.New()
	app.Get("/p", OptionalAuth(iss), func(c *fiber.Ctx) error {
		if u := GetUser(c); u != nil {
			return c.SendString(u.UserID)
		}
		return c.SendString("anonymous")
	})
	assert.Equal(t, fiber.StatusOK, doGet(t, app, ""))
	assert.Equal(t, fiber.StatusOK, doGet(t, app, "Bearer garbage"))
}
