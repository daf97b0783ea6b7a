package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/models"
)

const pacienteColumns = `id, numero_expediente, nombre, apellidos,
	to_char(fecha_nacimiento, 'YYYY-MM-DD'), documento_identidad, nacionalidad,
	COALESCE(contacto_emergencia_nombre, ''), COALESCE(contacto_emergencia_telefono, ''),
	COALESCE(telefono_principal, ''), COALESCE(telefono_secundario, ''),
	tipo_sangre, peso, estatura,
	COALESCE(padecimientos, ''), COALESCE(informacion_general, ''),
	tipo_paciente, cuarto_asignado, fecha_registro, activo`

func scanPaciente(row pgxRow, p *models.Paciente) error {
	return row.Scan(
		&p.ID, &p.NumeroExpediente, &p.Nombre, &p.Apellidos,
		&p.FechaNacimiento, &p.DocumentoIdentidad, &p.Nacionalidad,
		&p.ContactoEmergenciaNombre, &p.ContactoEmergenciaTelefono,
		&p.TelefonoPrincipal, &p.TelefonoSecundario,
		&p.TipoSangre, &p.Peso, &p.Estatura,
		&p.Padecimientos, &p.InformacionGeneral,
		&p.TipoPaciente, &p.CuartoAsignado, &p.FechaRegistro, &p.Activo,
	)
}

// pgxRow cubre pgx.Row y pgx.Rows para compartir el escaneo de pacientes
type pgxRow interface {
	Scan(dest ...any) error
}

// ObtenerPacientes obtiene todos los pacientes activos
func ObtenerPacientes(c *fiber.Ctx) error {
	rows, err := database.GetDB().Query(context.Background(),
		`SELECT `+pacienteColumns+` FROM pacientes
		 WHERE activo = true ORDER BY fecha_registro DESC`)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener pacientes",
		})
	}
	defer rows.Close()

	var pacientes []models.Paciente
	for rows.Next() {
		var paciente models.Paciente
		if err := scanPaciente(rows, &paciente); err != nil {
			continue
		}
		pacientes = append(pacientes, paciente)
	}
	if err := rows.Err(); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener pacientes",
		})
	}

	return c.JSON(fiber.Map{
		"pacientes": pacientes,
		"total":     len(pacientes),
	})
}

// CrearPaciente registra un nuevo paciente. El cuarto asignado solo se
// persiste para pacientes internos; para ambulatorios queda en NULL.
func CrearPaciente(c *fiber.Ctx) error {
	var paciente models.Paciente
	if err := c.BodyParser(&paciente); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if paciente.NumeroExpediente == "" || paciente.Nombre == "" || paciente.Apellidos == "" ||
		paciente.FechaNacimiento == "" || paciente.DocumentoIdentidad == "" ||
		paciente.Nacionalidad == "" || paciente.TipoSangre == "" || paciente.TipoPaciente == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Expediente, nombre, apellidos, fecha de nacimiento, documento, nacionalidad, tipo de sangre y tipo de paciente son requeridos",
		})
	}

	if paciente.TipoPaciente != models.TipoPacienteInterno && paciente.TipoPaciente != models.TipoPacienteAmbulatorio {
		return c.Status(400).JSON(fiber.Map{
			"error": "Tipo de paciente inválido",
		})
	}

	if _, err := ParseFecha(paciente.FechaNacimiento); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Fecha de nacimiento inválida, formato esperado YYYY-MM-DD",
		})
	}

	paciente.CuartoAsignado = CuartoAsignado(paciente.TipoPaciente, paciente.CuartoAsignado)

	// Verificar que el número de expediente no esté repetido
	var existe int
	err := database.GetDB().QueryRow(context.Background(),
		"SELECT COUNT(*) FROM pacientes WHERE numero_expediente = $1",
		paciente.NumeroExpediente).Scan(&existe)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error interno del servidor",
		})
	}
	if existe > 0 {
		return c.Status(409).JSON(fiber.Map{
			"error": "El número de expediente ya está registrado",
		})
	}

	query := `INSERT INTO pacientes (
			numero_expediente, nombre, apellidos, fecha_nacimiento, documento_identidad,
			nacionalidad, contacto_emergencia_nombre, contacto_emergencia_telefono,
			telefono_principal, telefono_secundario, tipo_sangre, peso, estatura,
			padecimientos, informacion_general, tipo_paciente, cuarto_asignado
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, fecha_registro, activo`

	err = database.GetDB().QueryRow(context.Background(), query,
		paciente.NumeroExpediente, paciente.Nombre, paciente.Apellidos,
		paciente.FechaNacimiento, paciente.DocumentoIdentidad, paciente.Nacionalidad,
		paciente.ContactoEmergenciaNombre, paciente.ContactoEmergenciaTelefono,
		paciente.TelefonoPrincipal, paciente.TelefonoSecundario,
		paciente.TipoSangre, paciente.Peso, paciente.Estatura,
		paciente.Padecimientos, paciente.InformacionGeneral,
		paciente.TipoPaciente, paciente.CuartoAsignado).Scan(
		&paciente.ID, &paciente.FechaRegistro, &paciente.Activo)

	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al registrar el paciente",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"paciente": paciente,
		"mensaje":  "Paciente registrado exitosamente",
	})
}

// ObtenerPacientePorID obtiene la ficha completa de un paciente: sus datos,
// sus notas de enfermería (fecha y hora descendentes) y sus medicamentos
// activos.
func ObtenerPacientePorID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	var paciente models.Paciente
	err = scanPaciente(database.GetDB().QueryRow(context.Background(),
		`SELECT `+pacienteColumns+` FROM pacientes WHERE id = $1`, id), &paciente)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "Paciente no encontrado",
		})
	}

	notas, err := consultarNotasPorPaciente(context.Background(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener las notas del paciente",
		})
	}

	medicamentos, err := consultarMedicamentosActivos(context.Background(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener los medicamentos del paciente",
		})
	}

	return c.JSON(models.PacienteDetalle{
		Paciente:     paciente,
		Notas:        notas,
		Medicamentos: medicamentos,
	})
}
