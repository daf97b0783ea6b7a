package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/models"
)

// ObtenerNotas obtiene todas las notas de enfermería del sistema ordenadas
// por fecha descendente y, dentro del mismo día, por hora descendente.
func ObtenerNotas(c *fiber.Ctx) error {
	rows, err := database.GetDB().Query(context.Background(),
		`SELECT n.id, to_char(n.fecha, 'YYYY-MM-DD'), to_char(n.hora, 'HH24:MI'),
				n.paciente_id, n.enfermero_id, n.observaciones,
				COALESCE(n.medicamentos_administrados, ''), COALESCE(n.tratamientos, ''),
				n.fecha_registro,
				p.nombre, p.apellidos, p.numero_expediente,
				e.nombre, e.apellidos
		 FROM notas_enfermeria n
		 JOIN pacientes p ON n.paciente_id = p.id
		 JOIN enfermeros e ON n.enfermero_id = e.id
		 ORDER BY n.fecha DESC, n.hora DESC`)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener notas",
		})
	}
	defer rows.Close()

	var notas []models.NotaDetalle
	for rows.Next() {
		var nota models.NotaDetalle
		err := rows.Scan(
			&nota.ID, &nota.Fecha, &nota.Hora,
			&nota.PacienteID, &nota.EnfermeroID, &nota.Observaciones,
			&nota.MedicamentosAdministrados, &nota.Tratamientos,
			&nota.FechaRegistro,
			&nota.PacienteNombre, &nota.PacienteApellidos, &nota.NumeroExpediente,
			&nota.EnfermeroNombre, &nota.EnfermeroApellidos,
		)
		if err != nil {
			continue
		}
		notas = append(notas, nota)
	}
	if err := rows.Err(); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener notas",
		})
	}

	return c.JSON(fiber.Map{
		"notas": notas,
		"total": len(notas),
	})
}

// CrearNota registra una nueva nota de enfermería. El enfermero_id se toma
// siempre de la sesión autenticada, nunca del cuerpo de la petición.
func CrearNota(c *fiber.Ctx) error {
	enfermeroID := c.Locals("enfermero_id").(int)

	var nota models.NotaEnfermeria
	if err := c.BodyParser(&nota); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if nota.Fecha == "" || nota.Hora == "" || nota.PacienteID == 0 || nota.Observaciones == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Fecha, hora, paciente y observaciones son requeridos",
		})
	}

	if _, err := ParseFecha(nota.Fecha); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Fecha inválida, formato esperado YYYY-MM-DD",
		})
	}
	if _, err := ParseHora(nota.Hora); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Hora inválida, formato esperado HH:MM",
		})
	}

	// Verificar que el paciente existe
	var existe bool
	err := database.GetDB().QueryRow(context.Background(),
		"SELECT EXISTS(SELECT 1 FROM pacientes WHERE id = $1)", nota.PacienteID).Scan(&existe)
	if err != nil || !existe {
		return c.Status(404).JSON(fiber.Map{
			"error": "Paciente no encontrado",
		})
	}

	query := `INSERT INTO notas_enfermeria
			(fecha, hora, paciente_id, enfermero_id, observaciones, medicamentos_administrados, tratamientos)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, fecha_registro`

	err = database.GetDB().QueryRow(context.Background(), query,
		nota.Fecha, nota.Hora, nota.PacienteID, enfermeroID,
		nota.Observaciones, nota.MedicamentosAdministrados, nota.Tratamientos).Scan(
		&nota.ID, &nota.FechaRegistro)

	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al registrar la nota",
		})
	}

	nota.EnfermeroID = enfermeroID

	return c.Status(201).JSON(fiber.Map{
		"nota":    nota,
		"mensaje": "Nota de enfermería registrada exitosamente",
	})
}

// consultarNotasPorPaciente devuelve las notas de un paciente con el nombre
// del enfermero que las escribió, mismas reglas de orden que el listado global.
func consultarNotasPorPaciente(ctx context.Context, pacienteID int) ([]models.NotaDetalle, error) {
	rows, err := database.GetDB().Query(ctx,
		`SELECT n.id, to_char(n.fecha, 'YYYY-MM-DD'), to_char(n.hora, 'HH24:MI'),
				n.paciente_id, n.enfermero_id, n.observaciones,
				COALESCE(n.medicamentos_administrados, ''), COALESCE(n.tratamientos, ''),
				n.fecha_registro,
				e.nombre, e.apellidos
		 FROM notas_enfermeria n
		 JOIN enfermeros e ON n.enfermero_id = e.id
		 WHERE n.paciente_id = $1
		 ORDER BY n.fecha DESC, n.hora DESC`, pacienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notas []models.NotaDetalle
	for rows.Next() {
		var nota models.NotaDetalle
		err := rows.Scan(
			&nota.ID, &nota.Fecha, &nota.Hora,
			&nota.PacienteID, &nota.EnfermeroID, &nota.Observaciones,
			&nota.MedicamentosAdministrados, &nota.Tratamientos,
			&nota.FechaRegistro,
			&nota.EnfermeroNombre, &nota.EnfermeroApellidos,
		)
		if err != nil {
			continue
		}
		notas = append(notas, nota)
	}

	return notas, rows.Err()
}
