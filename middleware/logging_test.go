package middleware

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/santarosa/enfermeria-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterSensitiveData(t *testing.T) {
	filtrado := filterSensitiveData(`{"codigo":"ENF001","clave":"123456"}`)

	var datos map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(filtrado), &datos))
	assert.Equal(t, "ENF001", datos["codigo"])
	assert.Equal(t, "[FILTERED]", datos["clave"])
}

func TestFilterSensitiveDataNoJSON(t *testing.T) {
	// Un cuerpo que no es JSON se conserva, truncado si es muy largo
	assert.Equal(t, "texto plano", filterSensitiveData("texto plano"))

	largo := strings.Repeat("a", 2000)
	filtrado := filterSensitiveData(largo)
	assert.True(t, strings.HasSuffix(filtrado, "...[truncated]"))
	assert.Len(t, filtrado, 1000+len("...[truncated]"))
}

func TestDetermineLogLevel(t *testing.T) {
	assert.Equal(t, models.LogLevelSuccess, determineLogLevel(201))
	assert.Equal(t, models.LogLevelInfo, determineLogLevel(302))
	assert.Equal(t, models.LogLevelWarning, determineLogLevel(404))
	assert.Equal(t, models.LogLevelError, determineLogLevel(500))
}
