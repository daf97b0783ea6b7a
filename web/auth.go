package web

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/models"
	"golang.org/x/crypto/bcrypt"
)

// Index muestra el tablero principal
func Index(c *fiber.Ctx) error {
	_, nombre := enfermeroEnSesion(c)
	categoria, mensaje := getFlash(c)
	return c.Render("dashboard", fiber.Map{
		"EnfermeroNombre": nombre,
		"FlashCategoria":  categoria,
		"FlashMensaje":    mensaje,
	})
}

// LoginPage muestra el formulario de inicio de sesión
func LoginPage(c *fiber.Ctx) error {
	categoria, mensaje := getFlash(c)
	return c.Render("login", fiber.Map{
		"FlashCategoria": categoria,
		"FlashMensaje":   mensaje,
	})
}

// LoginSubmit valida las credenciales del formulario. En éxito guarda el
// identificador y nombre del enfermero en la sesión y redirige al tablero.
func LoginSubmit(c *fiber.Ctx) error {
	codigo := c.FormValue("codigo")
	clave := c.FormValue("clave")

	var enfermero models.Enfermero
	err := database.GetDB().QueryRow(context.Background(),
		`SELECT id, codigo, clave, nombre, apellidos
		 FROM enfermeros WHERE codigo = $1 AND activo = true`, codigo).Scan(
		&enfermero.ID, &enfermero.Codigo, &enfermero.Clave,
		&enfermero.Nombre, &enfermero.Apellidos)

	if err != nil || bcrypt.CompareHashAndPassword([]byte(enfermero.Clave), []byte(clave)) != nil {
		setFlash(c, "error", "Código o clave incorrectos")
		return c.Redirect("/login")
	}

	sess, err := store.Get(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	sess.Set("enfermero_id", enfermero.ID)
	sess.Set("enfermero_nombre", enfermero.Nombre+" "+enfermero.Apellidos)
	if err := sess.Save(); err != nil {
		return fiber.ErrInternalServerError
	}

	setFlash(c, "success", "Inicio de sesión exitoso")
	return c.Redirect("/")
}

// Logout destruye la sesión sin condiciones y regresa al login
func Logout(c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.Redirect("/login")
}
