package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/middleware"
	"github.com/santarosa/enfermeria-backend/models"
	"golang.org/x/crypto/bcrypt"
)

// Login autentica a un enfermero por código y clave y devuelve un token JWT.
// Solo enfermeros activos pueden iniciar sesión.
func Login(c *fiber.Ctx) error {
	var loginReq models.LoginRequest
	if err := c.BodyParser(&loginReq); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if loginReq.Codigo == "" || loginReq.Clave == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Código y clave son requeridos",
		})
	}

	var enfermero models.Enfermero
	err := database.GetDB().QueryRow(context.Background(),
		`SELECT id, codigo, clave, nombre, apellidos, turno, activo
		 FROM enfermeros WHERE codigo = $1 AND activo = true`,
		loginReq.Codigo).Scan(
		&enfermero.ID, &enfermero.Codigo, &enfermero.Clave,
		&enfermero.Nombre, &enfermero.Apellidos, &enfermero.Turno, &enfermero.Activo)

	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"message": "Código o clave incorrectos",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(enfermero.Clave), []byte(loginReq.Clave)); err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"message": "Código o clave incorrectos",
		})
	}

	token, err := middleware.GenerateJWT(enfermero.ID, enfermero.Codigo, enfermero.Nombre+" "+enfermero.Apellidos)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al generar token",
		})
	}

	return c.JSON(models.LoginResponse{
		Success: true,
		Token:   token,
		Enfermero: models.EnfermeroResponse{
			ID:        enfermero.ID,
			Codigo:    enfermero.Codigo,
			Nombre:    enfermero.Nombre,
			Apellidos: enfermero.Apellidos,
			Turno:     enfermero.Turno,
			Activo:    enfermero.Activo,
		},
	})
}

// Logout cierra la sesión. El token es sin estado: el cliente simplemente
// lo descarta.
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
	})
}

// ObtenerPerfil obtiene el perfil del enfermero autenticado
func ObtenerPerfil(c *fiber.Ctx) error {
	enfermeroID := c.Locals("enfermero_id").(int)

	var enfermero models.EnfermeroResponse
	err := database.GetDB().QueryRow(context.Background(),
		`SELECT id, codigo, nombre, apellidos, turno, activo
		 FROM enfermeros WHERE id = $1`, enfermeroID).Scan(
		&enfermero.ID, &enfermero.Codigo, &enfermero.Nombre,
		&enfermero.Apellidos, &enfermero.Turno, &enfermero.Activo)

	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Enfermero no encontrado",
		})
	}

	return c.JSON(enfermero)
}
