package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/models"
)

// ObtenerMedicamentos obtiene el catálogo de medicamentos activos
func ObtenerMedicamentos(c *fiber.Ctx) error {
	rows, err := database.GetDB().Query(context.Background(),
		`SELECT id, nombre, COALESCE(descripcion, ''), COALESCE(unidad_medida, ''), activo
		 FROM medicamentos WHERE activo = true ORDER BY nombre`)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener medicamentos",
		})
	}
	defer rows.Close()

	var medicamentos []models.Medicamento
	for rows.Next() {
		var medicamento models.Medicamento
		err := rows.Scan(&medicamento.ID, &medicamento.Nombre,
			&medicamento.Descripcion, &medicamento.UnidadMedida, &medicamento.Activo)
		if err != nil {
			continue
		}
		medicamentos = append(medicamentos, medicamento)
	}
	if err := rows.Err(); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener medicamentos",
		})
	}

	return c.JSON(fiber.Map{
		"medicamentos": medicamentos,
		"total":        len(medicamentos),
	})
}

// CrearMedicamento registra una nueva entrada en el catálogo
func CrearMedicamento(c *fiber.Ctx) error {
	var medicamento models.Medicamento
	if err := c.BodyParser(&medicamento); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if medicamento.Nombre == "" || medicamento.UnidadMedida == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Nombre y unidad de medida son requeridos",
		})
	}

	err := database.GetDB().QueryRow(context.Background(),
		`INSERT INTO medicamentos (nombre, descripcion, unidad_medida)
		 VALUES ($1, $2, $3) RETURNING id, activo`,
		medicamento.Nombre, medicamento.Descripcion, medicamento.UnidadMedida).Scan(
		&medicamento.ID, &medicamento.Activo)

	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al registrar el medicamento",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"medicamento": medicamento,
		"mensaje":     "Medicamento registrado exitosamente",
	})
}

// AsignarMedicamento asigna un medicamento del catálogo a un paciente.
// Sin fecha_fin la asignación queda abierta (tratamiento en curso).
func AsignarMedicamento(c *fiber.Ctx) error {
	pacienteID, err := strconv.Atoi(c.Params("paciente_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID de paciente inválido",
		})
	}

	var asignacion models.MedicamentoPaciente
	if err := c.BodyParser(&asignacion); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if asignacion.MedicamentoID == 0 || asignacion.Dosis == "" ||
		asignacion.Frecuencia == "" || asignacion.FechaInicio == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Medicamento, dosis, frecuencia y fecha de inicio son requeridos",
		})
	}

	if _, err := ParseFecha(asignacion.FechaInicio); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Fecha de inicio inválida, formato esperado YYYY-MM-DD",
		})
	}
	if asignacion.FechaFin != nil {
		if _, err := ParseFecha(*asignacion.FechaFin); err != nil {
			return c.Status(400).JSON(fiber.Map{
				"error": "Fecha de fin inválida, formato esperado YYYY-MM-DD",
			})
		}
	}

	// Verificar que el paciente existe
	var existePaciente bool
	err = database.GetDB().QueryRow(context.Background(),
		"SELECT EXISTS(SELECT 1 FROM pacientes WHERE id = $1)", pacienteID).Scan(&existePaciente)
	if err != nil || !existePaciente {
		return c.Status(404).JSON(fiber.Map{
			"error": "Paciente no encontrado",
		})
	}

	// Verificar que el medicamento existe en el catálogo
	var existeMedicamento bool
	err = database.GetDB().QueryRow(context.Background(),
		"SELECT EXISTS(SELECT 1 FROM medicamentos WHERE id = $1)", asignacion.MedicamentoID).Scan(&existeMedicamento)
	if err != nil || !existeMedicamento {
		return c.Status(404).JSON(fiber.Map{
			"error": "Medicamento no encontrado",
		})
	}

	query := `INSERT INTO medicamentos_paciente
			(paciente_id, medicamento_id, dosis, frecuencia, horarios, indicaciones, fecha_inicio, fecha_fin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, activo`

	err = database.GetDB().QueryRow(context.Background(), query,
		pacienteID, asignacion.MedicamentoID, asignacion.Dosis, asignacion.Frecuencia,
		asignacion.Horarios, asignacion.Indicaciones,
		asignacion.FechaInicio, asignacion.FechaFin).Scan(
		&asignacion.ID, &asignacion.Activo)

	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al asignar el medicamento",
		})
	}

	asignacion.PacienteID = pacienteID

	return c.Status(201).JSON(fiber.Map{
		"asignacion": asignacion,
		"mensaje":    "Medicamento asignado exitosamente",
	})
}

// consultarMedicamentosActivos devuelve las asignaciones activas de un
// paciente con nombre y unidad del medicamento del catálogo.
func consultarMedicamentosActivos(ctx context.Context, pacienteID int) ([]models.MedicamentoPacienteDetalle, error) {
	rows, err := database.GetDB().Query(ctx,
		`SELECT mp.id, mp.paciente_id, mp.medicamento_id, mp.dosis, mp.frecuencia,
				COALESCE(mp.horarios, ''), COALESCE(mp.indicaciones, ''),
				to_char(mp.fecha_inicio, 'YYYY-MM-DD'), to_char(mp.fecha_fin, 'YYYY-MM-DD'),
				mp.activo, m.nombre, COALESCE(m.unidad_medida, '')
		 FROM medicamentos_paciente mp
		 JOIN medicamentos m ON mp.medicamento_id = m.id
		 WHERE mp.paciente_id = $1 AND mp.activo = true`, pacienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var medicamentos []models.MedicamentoPacienteDetalle
	for rows.Next() {
		var detalle models.MedicamentoPacienteDetalle
		err := rows.Scan(
			&detalle.ID, &detalle.PacienteID, &detalle.MedicamentoID,
			&detalle.Dosis, &detalle.Frecuencia,
			&detalle.Horarios, &detalle.Indicaciones,
			&detalle.FechaInicio, &detalle.FechaFin,
			&detalle.Activo, &detalle.MedicamentoNombre, &detalle.UnidadMedida,
		)
		if err != nil {
			continue
		}
		medicamentos = append(medicamentos, detalle)
	}

	return medicamentos, rows.Err()
}
