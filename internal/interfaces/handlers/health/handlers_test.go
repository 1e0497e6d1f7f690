package health

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	healthsvc "nvp-welfare-backend/internal/application/health"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealthHandlers(t *testing.T) *Handlers {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return &Handlers{
		Rdb:            rdb,
		Collector:      &healthsvc.Collector{Rdb: rdb},
		HealthAdminKey: "test-admin-key",
	}
}

func decode(t *testing.T, body io.Reader, out interface{}) {
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestReset_Unauthorized(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health/reset", h.Reset)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	var out map[string]interface{}
	decode(t, resp.Body, &out)
	assert.Equal(t, "error", out["status"])
	assert.Equal(t, "Unauthorized", out["error"].(map[string]interface{})["message"])

	resp2, err := app.Test(httptest.NewRequest("GET", "/health/reset?key=wrong", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp2.StatusCode)
}

func TestReset_EmptyConfiguredKeyNeverMatches(t *testing.T) {
	h := setupHealthHandlers(t)
	h.HealthAdminKey = ""
	app := fiber.New()
	app.Get("/health/reset", h.Reset)
	resp, err := app.Test(httptest.NewRequest("GET", "/health/reset?key=", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestReset_Success(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health/reset", h.Reset)

	ctx := context.Background()
	require.NoError(t, h.Rdb.Set(ctx, "health:global:req_total", "5", 0).Err())
	resp, err := app.Test(httptest.NewRequest("GET", "/health/reset?key=test-admin-key", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out map[string]interface{}
	decode(t, resp.Body, &out)
	assert.Equal(t, "Stats reset successfully", out["message"])

	_, err = h.Rdb.Get(ctx, "health:global:req_total").Result()
	assert.Error(t, err)
	_, err = h.Rdb.Get(ctx, "health:global:start_time").Result()
	assert.NoError(t, err)
}

func TestJSON_ReturnsStructure(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health/json", h.JSON)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out map[string]interface{}
	decode(t, resp.Body, &out)
	assert.Equal(t, "nvp-welfare-api", out["service"])
	for _, k := range []string{"status", "runtime", "traffic", "dependencies"} {
		assert.Contains(t, out, k)
	}
}

func TestErrors_ReturnsArray(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health/errors", h.Errors)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/errors", nil))
	require.NoError(t, err)
	var empty []interface{}
	decode(t, resp.Body, &empty)
	assert.Empty(t, empty)

	h.Rdb.LPush(context.Background(), "health:global:error_log", `{"path":"/api/stats","method":"GET","message":"boom"}`)
	resp2, err := app.Test(httptest.NewRequest("GET", "/health/errors", nil))
	require.NoError(t, err)
	var entries []map[string]interface{}
	decode(t, resp2.Body, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0]["message"])
}
