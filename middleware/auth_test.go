package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func appProtegida() *fiber.App {
	app := fiber.New()
	app.Get("/protegida", JWTMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"enfermero_id":     c.Locals("enfermero_id"),
			"enfermero_codigo": c.Locals("enfermero_codigo"),
			"enfermero_nombre": c.Locals("enfermero_nombre"),
		})
	})
	return app
}

func TestJWTMiddlewareSinToken(t *testing.T) {
	app := appProtegida()

	req := httptest.NewRequest("GET", "/protegida", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJWTMiddlewareFormatoInvalido(t *testing.T) {
	app := appProtegida()

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Token abc123")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJWTMiddlewareTokenInvalido(t *testing.T) {
	app := appProtegida()

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer no.es.un.token")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJWTMiddlewareTokenValido(t *testing.T) {
	app := appProtegida()

	token, err := GenerateJWT(7, "ENF007", "Ana Pérez")
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var datos map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &datos))
	assert.Equal(t, float64(7), datos["enfermero_id"])
	assert.Equal(t, "ENF007", datos["enfermero_codigo"])
	assert.Equal(t, "Ana Pérez", datos["enfermero_nombre"])
}
