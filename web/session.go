package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// store guarda las sesiones de la variante de páginas. La cookie solo lleva
// el identificador de sesión; los datos viven del lado del servidor.
var store *session.Store

// InitSessions inicializa el almacén de sesiones
func InitSessions() {
	store = session.New(session.Config{
		Expiration:     30 * 24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// RequireSesion redirige a /login cuando no hay un enfermero en sesión.
// Ninguna ruta protegida toca datos sin pasar por aquí.
func RequireSesion(c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return c.Redirect("/login")
	}
	if sess.Get("enfermero_id") == nil {
		return c.Redirect("/login")
	}
	return c.Next()
}

// enfermeroEnSesion devuelve el id y nombre del enfermero autenticado
func enfermeroEnSesion(c *fiber.Ctx) (int, string) {
	sess, err := store.Get(c)
	if err != nil {
		return 0, ""
	}
	id, _ := sess.Get("enfermero_id").(int)
	nombre, _ := sess.Get("enfermero_nombre").(string)
	return id, nombre
}

// setFlash guarda un mensaje de un solo uso para la siguiente página
func setFlash(c *fiber.Ctx, categoria, mensaje string) {
	sess, err := store.Get(c)
	if err != nil {
		return
	}
	sess.Set("flash_categoria", categoria)
	sess.Set("flash_mensaje", mensaje)
	_ = sess.Save()
}

// getFlash lee y borra el mensaje flash pendiente
func getFlash(c *fiber.Ctx) (categoria, mensaje string) {
	sess, err := store.Get(c)
	if err != nil {
		return "", ""
	}
	categoria, _ = sess.Get("flash_categoria").(string)
	mensaje, _ = sess.Get("flash_mensaje").(string)
	if mensaje != "" {
		sess.Delete("flash_categoria")
		sess.Delete("flash_mensaje")
		_ = sess.Save()
	}
	return categoria, mensaje
}
