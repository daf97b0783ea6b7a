package handlers

import (
	"time"

	"github.com/santarosa/enfermeria-backend/models"
)

// Formatos fijos de fecha y hora usados en toda la API
const (
	FormatoFecha = "2006-01-02"
	FormatoHora  = "15:04"
)

// ParseFecha valida una fecha en formato YYYY-MM-DD
func ParseFecha(valor string) (time.Time, error) {
	return time.Parse(FormatoFecha, valor)
}

// ParseHora valida una hora en formato HH:MM
func ParseHora(valor string) (time.Time, error) {
	return time.Parse(FormatoHora, valor)
}

// CuartoAsignado aplica la regla de asignación de cuarto: solo los pacientes
// internos conservan el cuarto; para ambulatorios siempre queda en NULL sin
// importar lo que venga en la petición.
func CuartoAsignado(tipoPaciente string, cuarto *string) *string {
	if tipoPaciente != models.TipoPacienteInterno {
		return nil
	}
	return cuarto
}
