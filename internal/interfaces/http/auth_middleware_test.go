package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcondori/api-saltenas/pkg/jwt"
)

const testSecret = "secreto-de-test"

func doAuthed(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(fiber.MethodGet, path, nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_SinHeaderDevuelve401(t *testing.T) {
	app := newTestApp(t, testSecret)

	resp := doAuthed(t, app, "/admin/reportes/diario", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalidoDevuelve401(t *testing.T) {
	app := newTestApp(t, testSecret)

	resp := doAuthed(t, app, "/admin/reportes/diario", "Basic abc123")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrectaDevuelve401(t *testing.T) {
	app := newTestApp(t, testSecret)

	token, err := jwt.Generate("otro-secreto", "user-1", "admin", time.Hour)
	require.NoError(t, err)

	resp := doAuthed(t, app, "/admin/reportes/diario", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpiradoDevuelve401(t *testing.T) {
	app := newTestApp(t, testSecret)

	token, err := jwt.Generate(testSecret, "user-1", "admin", -time.Minute)
	require.NoError(t, err)

	resp := doAuthed(t, app, "/admin/reportes/diario", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoPasa(t *testing.T) {
	app := newTestApp(t, testSecret)

	token, err := jwt.Generate(testSecret, "user-1", "admin", time.Hour)
	require.NoError(t, err)

	resp := doAuthed(t, app, "/admin/reportes/diario", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SecretVacioEsNoOp(t *testing.T) {
	// Despliegue detrás de un proxy que ya autentica: sin AUTH_JWT_SECRET las
	// rutas de admin quedan abiertas.
	app := newTestApp(t, "")

	resp := doAuthed(t, app, "/admin/reportes/diario", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_RutasDelEscanerSiemprePublicas(t *testing.T) {
	app := newTestApp(t, testSecret)

	resp := doAuthed(t, app, "/inventario", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
