package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func appAdmin() *fiber.App {
	app := fiber.New()
	app.Get("/admin", JWTMiddleware(), AdminMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"mensaje": "ok"})
	})
	return app
}

func TestAdminMiddlewareSinAutenticar(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", AdminMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"mensaje": "ok"})
	})

	req := httptest.NewRequest("GET", "/admin", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAdminMiddlewareEnfermeroNormal(t *testing.T) {
	app := appAdmin()

	token, err := GenerateJWT(7, "ENF007", "Ana Pérez")
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestAdminMiddlewareAdministrador(t *testing.T) {
	app := appAdmin()

	token, err := GenerateJWT(1, "admin", "Administrador")
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
