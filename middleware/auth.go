package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// jwtSecret firma los tokens. Se toma de JWT_SECRET; el valor por defecto
// solo sirve para desarrollo local.
func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("clave_secreta_de_desarrollo")
}

// Claims personalizados para el JWT: identificador del enfermero autenticado,
// su código y su nombre para mostrar
type Claims struct {
	EnfermeroID     int    `json:"enfermero_id"`
	EnfermeroCodigo string `json:"enfermero_codigo"`
	EnfermeroNombre string `json:"enfermero_nombre"`
	jwt.RegisteredClaims
}

// GenerateJWT genera un token JWT para un enfermero
func GenerateJWT(enfermeroID int, codigo, nombre string) (string, error) {
	claims := Claims{
		EnfermeroID:     enfermeroID,
		EnfermeroCodigo: codigo,
		EnfermeroNombre: nombre,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// JWTMiddleware valida el token y deja el identificador del enfermero en el
// contexto. Toda ruta de recursos pasa por aquí: sin token válido no se toca
// ningún dato.
func JWTMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{
				"error": "No autenticado",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(401).JSON(fiber.Map{
				"error": "Formato de token inválido",
			})
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return jwtSecret(), nil
		})

		if err != nil || !token.Valid {
			return c.Status(401).JSON(fiber.Map{
				"error": "Token inválido",
			})
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			return c.Status(401).JSON(fiber.Map{
				"error": "Claims inválidos",
			})
		}

		// El enfermero_id del contexto es la única fuente de identidad:
		// los handlers nunca lo leen del cuerpo de la petición
		c.Locals("enfermero_id", claims.EnfermeroID)
		c.Locals("enfermero_codigo", claims.EnfermeroCodigo)
		c.Locals("enfermero_nombre", claims.EnfermeroNombre)

		return c.Next()
	}
}
