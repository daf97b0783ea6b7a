package models

import (
	"time"
)

// Paciente representa la tabla pacientes en la base de datos.
// Las fechas viajan como cadenas YYYY-MM-DD en la API.
type Paciente struct {
	ID                         int       `json:"id" db:"id"`
	NumeroExpediente           string    `json:"numero_expediente" db:"numero_expediente" validate:"required,max=20"`
	Nombre                     string    `json:"nombre" db:"nombre" validate:"required,max=100"`
	Apellidos                  string    `json:"apellidos" db:"apellidos" validate:"required,max=100"`
	FechaNacimiento            string    `json:"fecha_nacimiento" db:"fecha_nacimiento" validate:"required"`
	DocumentoIdentidad         string    `json:"documento_identidad" db:"documento_identidad" validate:"required,max=50"`
	Nacionalidad               string    `json:"nacionalidad" db:"nacionalidad" validate:"required,max=50"`
	ContactoEmergenciaNombre   string    `json:"contacto_emergencia_nombre" db:"contacto_emergencia_nombre"`
	ContactoEmergenciaTelefono string    `json:"contacto_emergencia_telefono" db:"contacto_emergencia_telefono"`
	TelefonoPrincipal          string    `json:"telefono_principal" db:"telefono_principal"`
	TelefonoSecundario         string    `json:"telefono_secundario" db:"telefono_secundario"`
	TipoSangre                 string    `json:"tipo_sangre" db:"tipo_sangre" validate:"required,max=5"`
	Peso                       *float64  `json:"peso" db:"peso"`
	Estatura                   *float64  `json:"estatura" db:"estatura"`
	Padecimientos              string    `json:"padecimientos" db:"padecimientos"`
	InformacionGeneral         string    `json:"informacion_general" db:"informacion_general"`
	TipoPaciente               string    `json:"tipo_paciente" db:"tipo_paciente" validate:"required,oneof=interno ambulatorio"`
	CuartoAsignado             *string   `json:"cuarto_asignado" db:"cuarto_asignado"`
	FechaRegistro              time.Time `json:"fecha_registro" db:"fecha_registro"`
	Activo                     bool      `json:"activo" db:"activo"`
}

// Tipos de paciente válidos
const (
	TipoPacienteInterno     = "interno"
	TipoPacienteAmbulatorio = "ambulatorio"
)

// PacienteDetalle agrupa la ficha completa: datos del paciente, sus notas de
// enfermería y sus medicamentos activos.
type PacienteDetalle struct {
	Paciente     Paciente                     `json:"paciente"`
	Notas        []NotaDetalle                `json:"notas"`
	Medicamentos []MedicamentoPacienteDetalle `json:"medicamentos"`
}
