package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRequireSesionRedirigeALogin(t *testing.T) {
	InitSessions()

	app := fiber.New()
	app.Use(RequireSesion)
	app.Get("/pacientes", func(c *fiber.Ctx) error {
		return c.SendString("listado")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/pacientes", nil))
	assert.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestFlashEsDeUnSoloUso(t *testing.T) {
	InitSessions()

	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		setFlash(c, "success", "Paciente registrado exitosamente")
		return c.SendString("ok")
	})
	app.Get("/get", func(c *fiber.Ctx) error {
		categoria, mensaje := getFlash(c)
		return c.JSON(fiber.Map{"categoria": categoria, "mensaje": mensaje})
	})

	// Primera petición: deja el mensaje en la sesión
	resp, err := app.Test(httptest.NewRequest("GET", "/set", nil))
	assert.NoError(t, err)
	cookies := resp.Cookies()
	assert.NotEmpty(t, cookies)

	leerFlash := func() map[string]string {
		req := httptest.NewRequest("GET", "/get", nil)
		for _, cookie := range cookies {
			req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
		}
		resp, err := app.Test(req)
		assert.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		var datos map[string]string
		assert.NoError(t, json.Unmarshal(body, &datos))
		return datos
	}

	// Segunda petición: el mensaje aparece una vez
	datos := leerFlash()
	assert.Equal(t, "success", datos["categoria"])
	assert.Equal(t, "Paciente registrado exitosamente", datos["mensaje"])

	// Tercera petición: el mensaje ya se consumió
	datos = leerFlash()
	assert.Equal(t, "", datos["mensaje"])
}

func TestSesionGuardaEnfermero(t *testing.T) {
	InitSessions()

	app := fiber.New()
	app.Get("/entrar", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		sess.Set("enfermero_id", 3)
		sess.Set("enfermero_nombre", "Enfermero De Prueba")
		return sess.Save()
	})
	app.Use(RequireSesion)
	app.Get("/quien", func(c *fiber.Ctx) error {
		id, nombre := enfermeroEnSesion(c)
		return c.JSON(fiber.Map{"id": id, "nombre": nombre})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/entrar", nil))
	assert.NoError(t, err)
	cookies := resp.Cookies()
	assert.NotEmpty(t, cookies)

	req := httptest.NewRequest("GET", "/quien", nil)
	for _, cookie := range cookies {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var datos map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &datos))
	assert.Equal(t, float64(3), datos["id"])
	assert.Equal(t, "Enfermero De Prueba", datos["nombre"])
}
