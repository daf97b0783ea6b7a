package models

// Enfermero representa la tabla enfermeros en la base de datos
type Enfermero struct {
	ID        int    `json:"id" db:"id"`
	Codigo    string `json:"codigo" db:"codigo" validate:"required,max=10"`
	Clave     string `json:"clave,omitempty" db:"clave"`
	Nombre    string `json:"nombre" db:"nombre" validate:"required,max=100"`
	Apellidos string `json:"apellidos" db:"apellidos" validate:"required,max=100"`
	Turno     string `json:"turno" db:"turno" validate:"required,max=20"`
	Activo    bool   `json:"activo" db:"activo"`
}

// EnfermeroResponse representa la respuesta sin la clave
type EnfermeroResponse struct {
	ID        int    `json:"id"`
	Codigo    string `json:"codigo"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Turno     string `json:"turno"`
	Activo    bool   `json:"activo"`
}

// LoginRequest representa la solicitud de login
type LoginRequest struct {
	Codigo string `json:"codigo" validate:"required"`
	Clave  string `json:"clave" validate:"required"`
}

// LoginResponse representa la respuesta del login con el token
type LoginResponse struct {
	Success   bool              `json:"success"`
	Token     string            `json:"token"`
	Enfermero EnfermeroResponse `json:"enfermero"`
}
