package handlers

import (
	"testing"

	"github.com/santarosa/enfermeria-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestParseFecha(t *testing.T) {
	fecha, err := ParseFecha("2024-01-02")
	assert.NoError(t, err)
	assert.Equal(t, 2024, fecha.Year())
	assert.Equal(t, 2, fecha.Day())

	_, err = ParseFecha("02/01/2024")
	assert.Error(t, err)

	_, err = ParseFecha("2024-13-40")
	assert.Error(t, err)

	_, err = ParseFecha("")
	assert.Error(t, err)
}

func TestParseHora(t *testing.T) {
	hora, err := ParseHora("18:30")
	assert.NoError(t, err)
	assert.Equal(t, 18, hora.Hour())
	assert.Equal(t, 30, hora.Minute())

	_, err = ParseHora("6:30 PM")
	assert.Error(t, err)

	_, err = ParseHora("25:00")
	assert.Error(t, err)
}

func TestCuartoAsignado(t *testing.T) {
	cuarto := "204B"

	// Interno conserva el cuarto
	resultado := CuartoAsignado(models.TipoPacienteInterno, &cuarto)
	assert.NotNil(t, resultado)
	assert.Equal(t, "204B", *resultado)

	// Ambulatorio pierde el cuarto aunque venga en la petición
	assert.Nil(t, CuartoAsignado(models.TipoPacienteAmbulatorio, &cuarto))

	// Cualquier tipo que no sea interno queda sin cuarto
	assert.Nil(t, CuartoAsignado("otro", &cuarto))

	// Interno sin cuarto sigue sin cuarto
	assert.Nil(t, CuartoAsignado(models.TipoPacienteInterno, nil))
}
