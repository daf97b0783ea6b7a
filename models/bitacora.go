package models

import (
	"time"
)

// Bitacora representa un registro de auditoría de peticiones HTTP
type Bitacora struct {
	ID              int       `json:"id" db:"id"`
	Method          string    `json:"method" db:"method"`
	Path            string    `json:"path" db:"path"`
	StatusCode      int       `json:"status_code" db:"status_code"`
	ResponseTime    *int      `json:"response_time" db:"response_time"`
	IP              string    `json:"ip" db:"ip"`
	UserAgent       *string   `json:"user_agent" db:"user_agent"`
	CodigoEnfermero *string   `json:"codigo_enfermero" db:"codigo_enfermero"`
	Body            *string   `json:"body" db:"body"`
	LogLevel        string    `json:"log_level" db:"log_level"`
	Timestamp       time.Time `json:"timestamp" db:"timestamp"`
}

// Niveles de log de la bitácora
const (
	LogLevelSuccess = "success"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)
