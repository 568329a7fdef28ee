package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/mrsetia1/flowmint/internal/interfaces/http"
)

func buildLimitedApp(cfg apphttp.RateLimitConfig) *fiber.App {
	app := fiber.New()
	app.Post("/login", apphttp.RateLimitByIP(cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func fireLogin(t *testing.T, app *fiber.App, ip string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("X-Forwarded-For", ip)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestRateLimitByIP_BlocksAfterBurst(t *testing.T) {
	app := buildLimitedApp(apphttp.RateLimitConfig{
		RequestsPerWindow: 3,
		Window:            time.Minute,
		Burst:             3,
	})

	for i := 0; i < 3; i++ {
		resp := fireLogin(t, app, "10.0.0.1")
		assert.Equal(t, http.StatusOK, resp.StatusCode, "request %d within burst", i+1)
	}

	resp := fireLogin(t, app, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}

func TestRateLimitByIP_IsolatesClients(t *testing.T) {
	app := buildLimitedApp(apphttp.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	})

	resp := fireLogin(t, app, "10.0.0.1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = fireLogin(t, app, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	// A different client IP still has a full bucket.
	resp = fireLogin(t, app, "10.0.0.2")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
