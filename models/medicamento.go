package models

// Medicamento representa una entrada del catálogo de medicamentos
type Medicamento struct {
	ID           int    `json:"id" db:"id"`
	Nombre       string `json:"nombre" db:"nombre" validate:"required,max=100"`
	Descripcion  string `json:"descripcion" db:"descripcion"`
	UnidadMedida string `json:"unidad_medida" db:"unidad_medida" validate:"required,max=20"`
	Activo       bool   `json:"activo" db:"activo"`
}

// MedicamentoPaciente representa una asignación de medicamento a un paciente.
// FechaFin en nil significa tratamiento en curso sin fecha de término.
type MedicamentoPaciente struct {
	ID            int     `json:"id" db:"id"`
	PacienteID    int     `json:"paciente_id" db:"paciente_id"`
	MedicamentoID int     `json:"medicamento_id" db:"medicamento_id" validate:"required"`
	Dosis         string  `json:"dosis" db:"dosis" validate:"required,max=50"`
	Frecuencia    string  `json:"frecuencia" db:"frecuencia" validate:"required,max=100"`
	Horarios      string  `json:"horarios" db:"horarios"`
	Indicaciones  string  `json:"indicaciones" db:"indicaciones"`
	FechaInicio   string  `json:"fecha_inicio" db:"fecha_inicio" validate:"required"`
	FechaFin      *string `json:"fecha_fin" db:"fecha_fin"`
	Activo        bool    `json:"activo" db:"activo"`
}

// MedicamentoPacienteDetalle es una asignación con el nombre y la unidad
// del medicamento del catálogo.
type MedicamentoPacienteDetalle struct {
	MedicamentoPaciente
	MedicamentoNombre string `json:"medicamento_nombre"`
	UnidadMedida      string `json:"unidad_medida"`
}
