package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/models"
)

// BitacoraMiddleware captura cada petición HTTP y la registra en la tabla
// bitacora de forma asíncrona para no retrasar la respuesta.
func BitacoraMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		responseTime := int(time.Since(start).Milliseconds())

		entry := createBitacoraEntry(c, responseTime)
		go saveBitacora(entry)

		return err
	}
}

func createBitacoraEntry(c *fiber.Ctx, responseTime int) models.Bitacora {
	// IP real del cliente detrás de un proxy
	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = strings.Split(forwarded, ",")[0]
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		ip = realIP
	}

	var userAgentPtr *string
	if userAgent := c.Get("User-Agent"); userAgent != "" {
		userAgentPtr = &userAgent
	}

	// Código del enfermero autenticado, si hay sesión
	var codigoPtr *string
	if codigo := c.Locals("enfermero_codigo"); codigo != nil {
		if codigoStr, ok := codigo.(string); ok {
			codigoPtr = &codigoStr
		}
	}

	// Solo se registra el cuerpo en escrituras, con los campos sensibles filtrados
	var bodyPtr *string
	if c.Method() == "POST" || c.Method() == "PUT" {
		if body := string(c.Body()); body != "" {
			filtered := filterSensitiveData(body)
			bodyPtr = &filtered
		}
	}

	return models.Bitacora{
		Method:          c.Method(),
		Path:            c.Path(),
		StatusCode:      c.Response().StatusCode(),
		ResponseTime:    &responseTime,
		IP:              ip,
		UserAgent:       userAgentPtr,
		CodigoEnfermero: codigoPtr,
		Body:            bodyPtr,
		LogLevel:        determineLogLevel(c.Response().StatusCode()),
	}
}

// filterSensitiveData enmascara la clave antes de persistir el cuerpo
func filterSensitiveData(body string) string {
	sensitiveFields := []string{"clave", "token"}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		if len(body) > 1000 {
			return body[:1000] + "...[truncated]"
		}
		return body
	}

	for _, field := range sensitiveFields {
		if _, exists := data[field]; exists {
			data[field] = "[FILTERED]"
		}
	}

	filteredJSON, _ := json.Marshal(data)
	filteredBody := string(filteredJSON)

	if len(filteredBody) > 1000 {
		return filteredBody[:1000] + "...[truncated]"
	}

	return filteredBody
}

// determineLogLevel determina el nivel de log basado en el status code
func determineLogLevel(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return models.LogLevelSuccess
	case statusCode >= 300 && statusCode < 400:
		return models.LogLevelInfo
	case statusCode >= 400 && statusCode < 500:
		return models.LogLevelWarning
	default:
		return models.LogLevelError
	}
}

// saveBitacora guarda el registro en la base de datos
func saveBitacora(entry models.Bitacora) {
	db := database.GetDB()
	if db == nil {
		fmt.Println("Error: No se pudo obtener conexión a la base de datos para bitácora")
		return
	}

	query := `
		INSERT INTO bitacora (
			method, path, status_code, response_time, ip, user_agent,
			codigo_enfermero, body, log_level, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := db.Exec(context.Background(), query,
		entry.Method,
		entry.Path,
		entry.StatusCode,
		entry.ResponseTime,
		entry.IP,
		entry.UserAgent,
		entry.CodigoEnfermero,
		entry.Body,
		entry.LogLevel,
		time.Now(),
	)

	if err != nil {
		fmt.Printf("Error guardando registro en bitácora: %v\n", err)
	}
}
