package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/models"
	"golang.org/x/crypto/bcrypt"
)

// ObtenerEnfermeros obtiene todos los enfermeros (solo admin)
func ObtenerEnfermeros(c *fiber.Ctx) error {
	rows, err := database.GetDB().Query(context.Background(),
		`SELECT id, codigo, nombre, apellidos, turno, activo
		 FROM enfermeros ORDER BY nombre`)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener enfermeros",
		})
	}
	defer rows.Close()

	var enfermeros []models.EnfermeroResponse
	for rows.Next() {
		var enfermero models.EnfermeroResponse
		err := rows.Scan(&enfermero.ID, &enfermero.Codigo, &enfermero.Nombre,
			&enfermero.Apellidos, &enfermero.Turno, &enfermero.Activo)
		if err != nil {
			continue
		}
		enfermeros = append(enfermeros, enfermero)
	}
	if err := rows.Err(); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener enfermeros",
		})
	}

	return c.JSON(fiber.Map{
		"enfermeros": enfermeros,
		"total":      len(enfermeros),
	})
}

// CrearEnfermero registra un nuevo enfermero con la clave cifrada (solo admin)
func CrearEnfermero(c *fiber.Ctx) error {
	var enfermero models.Enfermero
	if err := c.BodyParser(&enfermero); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if enfermero.Codigo == "" || enfermero.Clave == "" || enfermero.Nombre == "" ||
		enfermero.Apellidos == "" || enfermero.Turno == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Código, clave, nombre, apellidos y turno son requeridos",
		})
	}

	// Verificar que el código no esté repetido
	var existe int
	err := database.GetDB().QueryRow(context.Background(),
		"SELECT COUNT(*) FROM enfermeros WHERE codigo = $1", enfermero.Codigo).Scan(&existe)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error interno del servidor",
		})
	}
	if existe > 0 {
		return c.Status(409).JSON(fiber.Map{
			"error": "El código de enfermero ya existe",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(enfermero.Clave), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al procesar la clave",
		})
	}

	var respuesta models.EnfermeroResponse
	err = database.GetDB().QueryRow(context.Background(),
		`INSERT INTO enfermeros (codigo, clave, nombre, apellidos, turno)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, codigo, nombre, apellidos, turno, activo`,
		enfermero.Codigo, string(hash), enfermero.Nombre, enfermero.Apellidos,
		enfermero.Turno).Scan(
		&respuesta.ID, &respuesta.Codigo, &respuesta.Nombre,
		&respuesta.Apellidos, &respuesta.Turno, &respuesta.Activo)

	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al crear el enfermero",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"enfermero": respuesta,
		"mensaje":   "Enfermero creado exitosamente",
	})
}

// ActualizarEnfermero actualiza los datos de un enfermero. La clave solo se
// reemplaza cuando viene en la petición; vacía conserva la anterior.
func ActualizarEnfermero(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	var enfermero models.Enfermero
	if err := c.BodyParser(&enfermero); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if enfermero.Codigo == "" || enfermero.Nombre == "" ||
		enfermero.Apellidos == "" || enfermero.Turno == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Código, nombre, apellidos y turno son requeridos",
		})
	}

	var respuesta models.EnfermeroResponse
	if enfermero.Clave != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(enfermero.Clave), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error": "Error al procesar la clave",
			})
		}
		err = database.GetDB().QueryRow(context.Background(),
			`UPDATE enfermeros
			 SET codigo = $1, clave = $2, nombre = $3, apellidos = $4, turno = $5, activo = $6
			 WHERE id = $7
			 RETURNING id, codigo, nombre, apellidos, turno, activo`,
			enfermero.Codigo, string(hash), enfermero.Nombre, enfermero.Apellidos,
			enfermero.Turno, enfermero.Activo, id).Scan(
			&respuesta.ID, &respuesta.Codigo, &respuesta.Nombre,
			&respuesta.Apellidos, &respuesta.Turno, &respuesta.Activo)
		if err != nil {
			return c.Status(404).JSON(fiber.Map{
				"error": "Enfermero no encontrado",
			})
		}
	} else {
		err = database.GetDB().QueryRow(context.Background(),
			`UPDATE enfermeros
			 SET codigo = $1, nombre = $2, apellidos = $3, turno = $4, activo = $5
			 WHERE id = $6
			 RETURNING id, codigo, nombre, apellidos, turno, activo`,
			enfermero.Codigo, enfermero.Nombre, enfermero.Apellidos,
			enfermero.Turno, enfermero.Activo, id).Scan(
			&respuesta.ID, &respuesta.Codigo, &respuesta.Nombre,
			&respuesta.Apellidos, &respuesta.Turno, &respuesta.Activo)
		if err != nil {
			return c.Status(404).JSON(fiber.Map{
				"error": "Enfermero no encontrado",
			})
		}
	}

	return c.JSON(fiber.Map{
		"enfermero": respuesta,
		"mensaje":   "Enfermero actualizado exitosamente",
	})
}

// DesactivarEnfermero marca un enfermero como inactivo. Nunca se borra la
// fila; un enfermero inactivo ya no puede iniciar sesión.
func DesactivarEnfermero(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	// El administrador no puede desactivarse a sí mismo
	var codigo string
	err = database.GetDB().QueryRow(context.Background(),
		"SELECT codigo FROM enfermeros WHERE id = $1", id).Scan(&codigo)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Enfermero no encontrado",
		})
	}
	if codigo == "admin" {
		return c.Status(400).JSON(fiber.Map{
			"error": "No se puede desactivar el usuario administrador",
		})
	}

	result, err := database.GetDB().Exec(context.Background(),
		"UPDATE enfermeros SET activo = false WHERE id = $1", id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al desactivar el enfermero",
		})
	}
	if result.RowsAffected() == 0 {
		return c.Status(404).JSON(fiber.Map{
			"error": "Enfermero no encontrado",
		})
	}

	return c.JSON(fiber.Map{
		"mensaje": "Enfermero desactivado correctamente",
	})
}
