package web

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/handlers"
	"github.com/santarosa/enfermeria-backend/models"
)

// listarPacientesActivos carga los pacientes activos para listados y formularios
func listarPacientesActivos(ctx context.Context) ([]models.Paciente, error) {
	rows, err := database.GetDB().Query(ctx,
		`SELECT id, numero_expediente, nombre, apellidos,
				to_char(fecha_nacimiento, 'YYYY-MM-DD'), tipo_sangre,
				tipo_paciente, cuarto_asignado
		 FROM pacientes WHERE activo = true ORDER BY fecha_registro DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pacientes []models.Paciente
	for rows.Next() {
		var p models.Paciente
		err := rows.Scan(&p.ID, &p.NumeroExpediente, &p.Nombre, &p.Apellidos,
			&p.FechaNacimiento, &p.TipoSangre, &p.TipoPaciente, &p.CuartoAsignado)
		if err != nil {
			continue
		}
		pacientes = append(pacientes, p)
	}
	return pacientes, rows.Err()
}

// Pacientes muestra el listado de pacientes activos
func Pacientes(c *fiber.Ctx) error {
	pacientes, err := listarPacientesActivos(context.Background())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	_, nombre := enfermeroEnSesion(c)
	categoria, mensaje := getFlash(c)
	return c.Render("pacientes", fiber.Map{
		"Pacientes":       pacientes,
		"EnfermeroNombre": nombre,
		"FlashCategoria":  categoria,
		"FlashMensaje":    mensaje,
	})
}

// NuevoPacientePage muestra el formulario de registro de paciente
func NuevoPacientePage(c *fiber.Ctx) error {
	_, nombre := enfermeroEnSesion(c)
	return c.Render("nuevo_paciente", fiber.Map{
		"EnfermeroNombre": nombre,
	})
}

// NuevoPacienteSubmit registra un paciente desde el formulario. La misma
// regla del cuarto aplica aquí: solo internos conservan cuarto asignado.
func NuevoPacienteSubmit(c *fiber.Ctx) error {
	tipoPaciente := c.FormValue("tipo_paciente")

	if c.FormValue("numero_expediente") == "" || c.FormValue("nombre") == "" ||
		c.FormValue("apellidos") == "" || c.FormValue("fecha_nacimiento") == "" ||
		c.FormValue("documento_identidad") == "" || c.FormValue("nacionalidad") == "" ||
		c.FormValue("tipo_sangre") == "" || tipoPaciente == "" {
		setFlash(c, "error", "Faltan campos requeridos")
		return c.Redirect("/paciente/nuevo")
	}

	if _, err := handlers.ParseFecha(c.FormValue("fecha_nacimiento")); err != nil {
		setFlash(c, "error", "Fecha de nacimiento inválida")
		return c.Redirect("/paciente/nuevo")
	}

	var cuarto *string
	if valor := c.FormValue("cuarto_asignado"); valor != "" {
		cuarto = &valor
	}
	cuarto = handlers.CuartoAsignado(tipoPaciente, cuarto)

	_, err := database.GetDB().Exec(context.Background(),
		`INSERT INTO pacientes (
			numero_expediente, nombre, apellidos, fecha_nacimiento, documento_identidad,
			nacionalidad, contacto_emergencia_nombre, contacto_emergencia_telefono,
			telefono_principal, telefono_secundario, tipo_sangre,
			padecimientos, informacion_general, tipo_paciente, cuarto_asignado
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		c.FormValue("numero_expediente"), c.FormValue("nombre"), c.FormValue("apellidos"),
		c.FormValue("fecha_nacimiento"), c.FormValue("documento_identidad"),
		c.FormValue("nacionalidad"), c.FormValue("contacto_emergencia_nombre"),
		c.FormValue("contacto_emergencia_telefono"), c.FormValue("telefono_principal"),
		c.FormValue("telefono_secundario"), c.FormValue("tipo_sangre"),
		c.FormValue("padecimientos"), c.FormValue("informacion_general"),
		tipoPaciente, cuarto)

	if err != nil {
		setFlash(c, "error", "No se pudo registrar el paciente")
		return c.Redirect("/paciente/nuevo")
	}

	setFlash(c, "success", "Paciente registrado exitosamente")
	return c.Redirect("/pacientes")
}

// VerPaciente muestra la ficha de un paciente con sus notas y medicamentos
func VerPaciente(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.ErrNotFound
	}

	var p models.Paciente
	err = database.GetDB().QueryRow(context.Background(),
		`SELECT id, numero_expediente, nombre, apellidos,
				to_char(fecha_nacimiento, 'YYYY-MM-DD'), documento_identidad, nacionalidad,
				COALESCE(contacto_emergencia_nombre, ''), COALESCE(contacto_emergencia_telefono, ''),
				COALESCE(telefono_principal, ''), COALESCE(telefono_secundario, ''),
				tipo_sangre, COALESCE(padecimientos, ''), COALESCE(informacion_general, ''),
				tipo_paciente, cuarto_asignado
		 FROM pacientes WHERE id = $1`, id).Scan(
		&p.ID, &p.NumeroExpediente, &p.Nombre, &p.Apellidos,
		&p.FechaNacimiento, &p.DocumentoIdentidad, &p.Nacionalidad,
		&p.ContactoEmergenciaNombre, &p.ContactoEmergenciaTelefono,
		&p.TelefonoPrincipal, &p.TelefonoSecundario,
		&p.TipoSangre, &p.Padecimientos, &p.InformacionGeneral,
		&p.TipoPaciente, &p.CuartoAsignado)
	if err != nil {
		return fiber.ErrNotFound
	}

	notas, err := listarNotasDePaciente(context.Background(), id)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	medicamentos, err := listarMedicamentosActivosDePaciente(context.Background(), id)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	_, nombre := enfermeroEnSesion(c)
	categoria, mensaje := getFlash(c)
	return c.Render("ver_paciente", fiber.Map{
		"Paciente":        p,
		"Notas":           notas,
		"Medicamentos":    medicamentos,
		"EnfermeroNombre": nombre,
		"FlashCategoria":  categoria,
		"FlashMensaje":    mensaje,
	})
}
