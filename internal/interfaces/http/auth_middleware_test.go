package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/textil-api/internal/interfaces/http"
	"github.com/jhoicas/textil-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba-muy-largo"

// buildTestApp app mínima con una ruta protegida y una solo-admin.
func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testSecret))
	protected.Get("/perfil", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})
	admin := protected.Group("/admin", apphttp.RequireRole("admin"))
	admin.Get("/panel", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-123", role, "textil-api", 15)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_TokenValidoPueblaLocals(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/perfil", "Bearer "+tokenForRole(t, "manager"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "user-123", payload["user_id"])
	assert.Equal(t, "manager", payload["role"])
}

func TestAuthMiddleware_SinHeaderRechazado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/perfil", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatosInvalidos(t *testing.T) {
	app := buildTestApp()
	token := tokenForRole(t, "manager")

	casos := []string{
		token,            // sin esquema Bearer
		"Basic " + token, // esquema equivocado
		"Bearer ",        // token vacío
		"Bearer no-es-un-jwt",
	}
	for _, header := range casos {
		resp := doRequest(t, app, "/perfil", header)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp()
	ajeno, err := jwt.Generate("otro-secreto-distinto", "user-123", "admin", "textil-api", 15)
	require.NoError(t, err)
	resp := doRequest(t, app, "/perfil", "Bearer "+ajeno)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp()
	expirado, err := jwt.Generate(testSecret, "user-123", "admin", "textil-api", -5)
	require.NoError(t, err)
	resp := doRequest(t, app, "/perfil", "Bearer "+expirado)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// El esquema Bearer no distingue mayúsculas.
func TestAuthMiddleware_BearerCaseInsensitive(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/perfil", "bearer "+tokenForRole(t, "admin"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin/panel", "Bearer "+tokenForRole(t, "admin"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_ManagerProhibido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin/panel", "Bearer "+tokenForRole(t, "manager"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
