package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/inventario-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/auth/register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_UsuarioNuevo_Retorna201(t *testing.T) {
	app, userRepo, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"mario","password":"secreto123"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User successfully registered", decodeBody(t, resp)["message"])
	assert.Equal(t, 1, userRepo.Len())
}

func TestRegister_UsuarioDuplicado_Retorna400YNoCambiaElStore(t *testing.T) {
	app, userRepo, _ := newTestApp(t)

	first := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"mario","password":"secreto123"}`, "")
	first.Body.Close()
	require.Equal(t, http.StatusCreated, first.StatusCode)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"mario","password":"otro-password"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "The user already exists", decodeBody(t, resp)["error"])
	assert.Equal(t, 1, userRepo.Len(), "el registro duplicado no debe alterar el store")
}

func TestRegister_PasswordCorto_Retorna400(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"mario","password":"corto"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["errors"], "debe reportar errores de validación por campo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/auth/login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_Retorna200ConToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	reg := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"mario","password":"secreto123"}`, "")
	reg.Body.Close()
	require.Equal(t, http.StatusCreated, reg.StatusCode)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"mario","password":"secreto123"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "The user is valid", body["message"])

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// El token emitido se verifica y conserva el username original
	username, err := pkgjwt.Parse(testJWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "mario", username)
}

// Mismo mensaje para usuario inexistente y password incorrecto:
// no se puede enumerar usernames por diferencia de respuesta.
func TestLogin_UsuarioOPasswordIncorrecto_MismaRespuesta(t *testing.T) {
	app, _, _ := newTestApp(t)

	reg := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"username":"mario","password":"secreto123"}`, "")
	reg.Body.Close()

	noUser := doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"luigi","password":"secreto123"}`, "")
	defer noUser.Body.Close()
	badPass := doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"mario","password":"incorrecto"}`, "")
	defer badPass.Body.Close()

	assert.Equal(t, http.StatusBadRequest, noUser.StatusCode)
	assert.Equal(t, http.StatusBadRequest, badPass.StatusCode)
	assert.Equal(t, "Incorrect username or password", decodeBody(t, noUser)["error"])
	assert.Equal(t, "Incorrect username or password", decodeBody(t, badPass)["error"])
}

func TestLogin_CamposVacios_Retorna400ConErrores(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", `{}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	errs, _ := body["errors"].([]interface{})
	assert.Len(t, errs, 2, "username y password vacíos se reportan juntos")
}
