package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware restringe la ruta al enfermero administrador. Debe
// ejecutarse después de JWTMiddleware, que deja el código del enfermero
// en el contexto.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		codigo, ok := c.Locals("enfermero_codigo").(string)
		if !ok {
			return c.Status(401).JSON(fiber.Map{
				"error": "No autenticado",
			})
		}

		if codigo != "admin" {
			return c.Status(403).JSON(fiber.Map{
				"error": "Acceso denegado. Solo administradores.",
			})
		}

		return c.Next()
	}
}
