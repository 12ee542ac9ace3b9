package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-api/internal/application/auth"
	"github.com/tu-usuario/inventario-api/internal/application/inventory"
	"github.com/tu-usuario/inventario-api/internal/infrastructure/memory"
	apphttp "github.com/tu-usuario/inventario-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/inventario-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "inventario-api-test"
	testExpMin    = 60
)

// newTestApp construye la aplicación completa sobre los stores en memoria.
func newTestApp(t *testing.T) (*fiber.App, *memory.UserRepo, *memory.InventoryRepo) {
	t.Helper()
	userRepo := memory.NewUserRepository()
	invRepo := memory.NewInventoryRepository()
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventory.NewUseCase(invRepo),
		JWTSecret:   testJWTSecret,
	})
	return app, userRepo, invRepo
}

// bearerToken genera un header Authorization válido para el usuario dado.
func bearerToken(t *testing.T, username string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, username, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doJSON lanza una petición con body JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path, body, authHeader string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el body JSON de la respuesta en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
