package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/models"
)

// ObtenerBitacora consulta los registros de auditoría más recientes
// (solo admin). Acepta filtro por nivel y límite de filas.
func ObtenerBitacora(c *fiber.Ctx) error {
	limit := 100
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 || parsed > 1000 {
			return c.Status(400).JSON(fiber.Map{
				"error": "Límite inválido, debe estar entre 1 y 1000",
			})
		}
		limit = parsed
	}

	query := `SELECT id, method, path, status_code, response_time, ip,
				user_agent, codigo_enfermero, body, COALESCE(log_level, 'info'), timestamp
			  FROM bitacora`
	var args []interface{}

	if level := c.Query("level"); level != "" {
		query += " WHERE log_level = $1 ORDER BY timestamp DESC LIMIT $2"
		args = append(args, level, limit)
	} else {
		query += " ORDER BY timestamp DESC LIMIT $1"
		args = append(args, limit)
	}

	rows, err := database.GetDB().Query(context.Background(), query, args...)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener la bitácora",
		})
	}
	defer rows.Close()

	var registros []models.Bitacora
	for rows.Next() {
		var registro models.Bitacora
		err := rows.Scan(
			&registro.ID, &registro.Method, &registro.Path,
			&registro.StatusCode, &registro.ResponseTime, &registro.IP,
			&registro.UserAgent, &registro.CodigoEnfermero, &registro.Body,
			&registro.LogLevel, &registro.Timestamp,
		)
		if err != nil {
			continue
		}
		registros = append(registros, registro)
	}
	if err := rows.Err(); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener la bitácora",
		})
	}

	return c.JSON(fiber.Map{
		"registros": registros,
		"total":     len(registros),
	})
}
