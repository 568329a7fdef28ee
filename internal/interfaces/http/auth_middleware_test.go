package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/mrsetia1/flowmint/internal/interfaces/http"
	"github.com/mrsetia1/flowmint/pkg/token"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "flowmint-test"
)

// buildProtectedApp builds a minimal Fiber app with AuthMiddleware (and
// optionally RequireRole) in front of a dummy handler that echoes the
// identity from locals.
func buildProtectedApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.UserID(c),
			"role":    apphttp.Role(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func bearerForRole(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	tok, err := token.Generate(testJWTSecret, testUserID, role, testIssuer, ttl)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["error"]
}

// No Authorization header: 401 before the handler runs.
func TestAuthMiddleware_NoHeader_Returns401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No token provided", decodeError(t, resp))
}

// Garbage token: 403.
func TestAuthMiddleware_MalformedToken_Returns403(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Invalid token", decodeError(t, resp))
}

// Expired token: same 403 as malformed.
func TestAuthMiddleware_ExpiredToken_Returns403(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, bearerForRole(t, "editor", -time.Minute))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Invalid token", decodeError(t, resp))
}

// Header without the Bearer scheme: 403.
func TestAuthMiddleware_BadScheme_Returns403(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Basic dXNlcjpwdw==")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Valid token: the request reaches the handler with the identity attached.
func TestAuthMiddleware_ValidToken_AttachesIdentity(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, bearerForRole(t, "editor", time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "editor", body["role"])
}

// Admin passes an admin-only gate.
func TestRequireRole_AdminAllowed(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := doProtected(t, app, bearerForRole(t, "admin", time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Editor is blocked on an admin-only gate.
func TestRequireRole_EditorBlockedOnAdminRoute(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := doProtected(t, app, bearerForRole(t, "editor", time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Insufficient role", decodeError(t, resp))
}

// Multi-role allow-list admits any listed role.
func TestRequireRole_MultiRoleAllowList(t *testing.T) {
	app := buildProtectedApp("admin", "editor")
	resp := doProtected(t, app, bearerForRole(t, "editor", time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// A token with an empty role claim cannot pass any role gate.
func TestRequireRole_EmptyRole_Returns401(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := doProtected(t, app, bearerForRole(t, "", time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Missing role", decodeError(t, resp))
}
