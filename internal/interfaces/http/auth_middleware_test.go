package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/catalogo-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testEmail     = "admin@gmail.com"
	testSessionID = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "catalogo-api-test"
)

// buildProtectedApp construye una aplicación Fiber mínima con el AuthMiddleware
// y un handler que refleja los locals cargados del token.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"email":      apphttp.GetEmail(c),
				"session_id": apphttp.GetSessionID(c),
			})
		},
	)
	return app
}

func sessionToken(t *testing.T, expMinutes int) string {
	t.Helper()
	tok, _, err := pkgjwt.Generate(testJWTSecret, testEmail, testSessionID, testIssuer, expMinutes)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
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

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token vigente → pasa y los claims quedan en locals.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer "+sessionToken(t, 60))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, testSessionID, body["session_id"])
}

// Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Header sin el esquema Bearer → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token malformado → HTTP 401.
func TestAuthMiddleware_TokenMalformado(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token expirado → HTTP 401 (la compuerta es binaria: vigente o nada).
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer "+sessionToken(t, -1))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secret → HTTP 401.
func TestAuthMiddleware_SecretIncorrecto(t *testing.T) {
	tok, _, err := pkgjwt.Generate("otro-secret", testEmail, testSessionID, testIssuer, 60)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
