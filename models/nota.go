package models

import (
	"time"
)

// NotaEnfermeria representa la tabla notas_enfermeria. Las notas son
// inmutables una vez registradas: no existen rutas de edición ni borrado.
type NotaEnfermeria struct {
	ID                        int       `json:"id" db:"id"`
	Fecha                     string    `json:"fecha" db:"fecha" validate:"required"`
	Hora                      string    `json:"hora" db:"hora" validate:"required"`
	PacienteID                int       `json:"paciente_id" db:"paciente_id" validate:"required"`
	EnfermeroID               int       `json:"enfermero_id" db:"enfermero_id"`
	Observaciones             string    `json:"observaciones" db:"observaciones" validate:"required"`
	MedicamentosAdministrados string    `json:"medicamentos_administrados" db:"medicamentos_administrados"`
	Tratamientos              string    `json:"tratamientos" db:"tratamientos"`
	FechaRegistro             time.Time `json:"fecha_registro" db:"fecha_registro"`
}

// NotaDetalle es una nota con los nombres del paciente y del enfermero
// que la registró.
type NotaDetalle struct {
	NotaEnfermeria
	PacienteNombre     string `json:"paciente_nombre,omitempty"`
	PacienteApellidos  string `json:"paciente_apellidos,omitempty"`
	NumeroExpediente   string `json:"numero_expediente,omitempty"`
	EnfermeroNombre    string `json:"enfermero_nombre"`
	EnfermeroApellidos string `json:"enfermero_apellidos"`
}
