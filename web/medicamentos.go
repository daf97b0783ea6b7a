package web

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/handlers"
	"github.com/santarosa/enfermeria-backend/models"
)

// listarMedicamentosActivos carga el catálogo activo ordenado por nombre
func listarMedicamentosActivos(ctx context.Context) ([]models.Medicamento, error) {
	rows, err := database.GetDB().Query(ctx,
		`SELECT id, nombre, COALESCE(descripcion, ''), COALESCE(unidad_medida, ''), activo
		 FROM medicamentos WHERE activo = true ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var medicamentos []models.Medicamento
	for rows.Next() {
		var m models.Medicamento
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Descripcion, &m.UnidadMedida, &m.Activo); err != nil {
			continue
		}
		medicamentos = append(medicamentos, m)
	}
	return medicamentos, rows.Err()
}

// listarMedicamentosActivosDePaciente carga las asignaciones activas de un paciente
func listarMedicamentosActivosDePaciente(ctx context.Context, pacienteID int) ([]models.MedicamentoPacienteDetalle, error) {
	rows, err := database.GetDB().Query(ctx,
		`SELECT mp.id, mp.dosis, mp.frecuencia, COALESCE(mp.horarios, ''),
				COALESCE(mp.indicaciones, ''), to_char(mp.fecha_inicio, 'YYYY-MM-DD'),
				to_char(mp.fecha_fin, 'YYYY-MM-DD'), m.nombre, COALESCE(m.unidad_medida, '')
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
		err := rows.Scan(&detalle.ID, &detalle.Dosis, &detalle.Frecuencia,
			&detalle.Horarios, &detalle.Indicaciones,
			&detalle.FechaInicio, &detalle.FechaFin,
			&detalle.MedicamentoNombre, &detalle.UnidadMedida)
		if err != nil {
			continue
		}
		medicamentos = append(medicamentos, detalle)
	}
	return medicamentos, rows.Err()
}

// Medicamentos muestra el catálogo de medicamentos activos
func Medicamentos(c *fiber.Ctx) error {
	medicamentos, err := listarMedicamentosActivos(context.Background())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	_, nombre := enfermeroEnSesion(c)
	categoria, mensaje := getFlash(c)
	return c.Render("medicamentos", fiber.Map{
		"Medicamentos":    medicamentos,
		"EnfermeroNombre": nombre,
		"FlashCategoria":  categoria,
		"FlashMensaje":    mensaje,
	})
}

// NuevoMedicamentoPage muestra el formulario de alta en el catálogo
func NuevoMedicamentoPage(c *fiber.Ctx) error {
	_, nombre := enfermeroEnSesion(c)
	return c.Render("nuevo_medicamento", fiber.Map{
		"EnfermeroNombre": nombre,
	})
}

// NuevoMedicamentoSubmit registra un medicamento en el catálogo
func NuevoMedicamentoSubmit(c *fiber.Ctx) error {
	nombre := c.FormValue("nombre")
	unidad := c.FormValue("unidad_medida")

	if nombre == "" || unidad == "" {
		setFlash(c, "error", "Nombre y unidad de medida son requeridos")
		return c.Redirect("/medicamento/nuevo")
	}

	_, err := database.GetDB().Exec(context.Background(),
		`INSERT INTO medicamentos (nombre, descripcion, unidad_medida)
		 VALUES ($1, $2, $3)`,
		nombre, c.FormValue("descripcion"), unidad)

	if err != nil {
		setFlash(c, "error", "No se pudo registrar el medicamento")
		return c.Redirect("/medicamento/nuevo")
	}

	setFlash(c, "success", "Medicamento registrado exitosamente")
	return c.Redirect("/medicamentos")
}

// AsignarMedicamentoPage muestra el formulario de asignación para un paciente
func AsignarMedicamentoPage(c *fiber.Ctx) error {
	pacienteID, err := strconv.Atoi(c.Params("paciente_id"))
	if err != nil {
		return fiber.ErrNotFound
	}

	var paciente models.Paciente
	err = database.GetDB().QueryRow(context.Background(),
		"SELECT id, nombre, apellidos, numero_expediente FROM pacientes WHERE id = $1",
		pacienteID).Scan(&paciente.ID, &paciente.Nombre, &paciente.Apellidos, &paciente.NumeroExpediente)
	if err != nil {
		return fiber.ErrNotFound
	}

	medicamentos, err := listarMedicamentosActivos(context.Background())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	_, nombre := enfermeroEnSesion(c)
	return c.Render("asignar_medicamento", fiber.Map{
		"Paciente":        paciente,
		"Medicamentos":    medicamentos,
		"EnfermeroNombre": nombre,
	})
}

// AsignarMedicamentoSubmit asigna un medicamento al paciente. Sin fecha de
// fin el tratamiento queda abierto.
func AsignarMedicamentoSubmit(c *fiber.Ctx) error {
	pacienteID, err := strconv.Atoi(c.Params("paciente_id"))
	if err != nil {
		return fiber.ErrNotFound
	}

	medicamentoID, err := strconv.Atoi(c.FormValue("medicamento_id"))
	dosis := c.FormValue("dosis")
	frecuencia := c.FormValue("frecuencia")
	fechaInicio := c.FormValue("fecha_inicio")

	if err != nil || dosis == "" || frecuencia == "" || fechaInicio == "" {
		setFlash(c, "error", "Faltan campos requeridos")
		return c.Redirect("/paciente/" + c.Params("paciente_id") + "/medicamento/nuevo")
	}

	if _, err := handlers.ParseFecha(fechaInicio); err != nil {
		setFlash(c, "error", "Fecha de inicio inválida")
		return c.Redirect("/paciente/" + c.Params("paciente_id") + "/medicamento/nuevo")
	}

	var fechaFin *string
	if valor := c.FormValue("fecha_fin"); valor != "" {
		if _, err := handlers.ParseFecha(valor); err != nil {
			setFlash(c, "error", "Fecha de fin inválida")
			return c.Redirect("/paciente/" + c.Params("paciente_id") + "/medicamento/nuevo")
		}
		fechaFin = &valor
	}

	_, err = database.GetDB().Exec(context.Background(),
		`INSERT INTO medicamentos_paciente
			(paciente_id, medicamento_id, dosis, frecuencia, horarios, indicaciones, fecha_inicio, fecha_fin)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		pacienteID, medicamentoID, dosis, frecuencia,
		c.FormValue("horarios"), c.FormValue("indicaciones"), fechaInicio, fechaFin)

	if err != nil {
		setFlash(c, "error", "No se pudo asignar el medicamento")
		return c.Redirect("/paciente/" + c.Params("paciente_id") + "/medicamento/nuevo")
	}

	setFlash(c, "success", "Medicamento asignado exitosamente")
	return c.Redirect("/paciente/" + c.Params("paciente_id"))
}
