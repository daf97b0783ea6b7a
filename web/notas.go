package web

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/handlers"
	"github.com/santarosa/enfermeria-backend/models"
)

// listarNotasDePaciente carga las notas de un paciente en el orden del
// sistema: fecha descendente y hora descendente dentro del mismo día
func listarNotasDePaciente(ctx context.Context, pacienteID int) ([]models.NotaDetalle, error) {
	rows, err := database.GetDB().Query(ctx,
		`SELECT n.id, to_char(n.fecha, 'YYYY-MM-DD'), to_char(n.hora, 'HH24:MI'),
				n.observaciones, COALESCE(n.medicamentos_administrados, ''),
				COALESCE(n.tratamientos, ''), e.nombre, e.apellidos
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
		err := rows.Scan(&nota.ID, &nota.Fecha, &nota.Hora, &nota.Observaciones,
			&nota.MedicamentosAdministrados, &nota.Tratamientos,
			&nota.EnfermeroNombre, &nota.EnfermeroApellidos)
		if err != nil {
			continue
		}
		notas = append(notas, nota)
	}
	return notas, rows.Err()
}

// Notas muestra todas las notas de enfermería del sistema
func Notas(c *fiber.Ctx) error {
	rows, err := database.GetDB().Query(context.Background(),
		`SELECT n.id, to_char(n.fecha, 'YYYY-MM-DD'), to_char(n.hora, 'HH24:MI'),
				n.observaciones, COALESCE(n.medicamentos_administrados, ''),
				COALESCE(n.tratamientos, ''),
				p.nombre, p.apellidos, p.numero_expediente,
				e.nombre, e.apellidos
		 FROM notas_enfermeria n
		 JOIN pacientes p ON n.paciente_id = p.id
		 JOIN enfermeros e ON n.enfermero_id = e.id
		 ORDER BY n.fecha DESC, n.hora DESC`)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	defer rows.Close()

	var notas []models.NotaDetalle
	for rows.Next() {
		var nota models.NotaDetalle
		err := rows.Scan(&nota.ID, &nota.Fecha, &nota.Hora, &nota.Observaciones,
			&nota.MedicamentosAdministrados, &nota.Tratamientos,
			&nota.PacienteNombre, &nota.PacienteApellidos, &nota.NumeroExpediente,
			&nota.EnfermeroNombre, &nota.EnfermeroApellidos)
		if err != nil {
			continue
		}
		notas = append(notas, nota)
	}

	_, nombre := enfermeroEnSesion(c)
	categoria, mensaje := getFlash(c)
	return c.Render("notas_enfermeria", fiber.Map{
		"Notas":           notas,
		"EnfermeroNombre": nombre,
		"FlashCategoria":  categoria,
		"FlashMensaje":    mensaje,
	})
}

// NuevaNotaPage muestra el formulario de registro de nota
func NuevaNotaPage(c *fiber.Ctx) error {
	pacientes, err := listarPacientesActivos(context.Background())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	_, nombre := enfermeroEnSesion(c)
	return c.Render("nueva_nota", fiber.Map{
		"Pacientes":       pacientes,
		"EnfermeroNombre": nombre,
	})
}

// NuevaNotaSubmit registra una nota de enfermería desde el formulario.
// El enfermero que firma la nota es siempre el de la sesión.
func NuevaNotaSubmit(c *fiber.Ctx) error {
	enfermeroID, _ := enfermeroEnSesion(c)

	fecha := c.FormValue("fecha")
	hora := c.FormValue("hora")
	observaciones := c.FormValue("observaciones")
	pacienteID, err := strconv.Atoi(c.FormValue("paciente_id"))

	if err != nil || fecha == "" || hora == "" || observaciones == "" {
		setFlash(c, "error", "Faltan campos requeridos")
		return c.Redirect("/nota/nueva")
	}

	if _, err := handlers.ParseFecha(fecha); err != nil {
		setFlash(c, "error", "Fecha inválida")
		return c.Redirect("/nota/nueva")
	}
	if _, err := handlers.ParseHora(hora); err != nil {
		setFlash(c, "error", "Hora inválida")
		return c.Redirect("/nota/nueva")
	}

	_, err = database.GetDB().Exec(context.Background(),
		`INSERT INTO notas_enfermeria
			(fecha, hora, paciente_id, enfermero_id, observaciones, medicamentos_administrados, tratamientos)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		fecha, hora, pacienteID, enfermeroID, observaciones,
		c.FormValue("medicamentos_administrados"), c.FormValue("tratamientos"))

	if err != nil {
		setFlash(c, "error", "No se pudo registrar la nota")
		return c.Redirect("/nota/nueva")
	}

	setFlash(c, "success", "Nota de enfermería registrada exitosamente")
	return c.Redirect("/notas")
}
