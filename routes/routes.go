package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/santarosa/enfermeria-backend/handlers"
	"github.com/santarosa/enfermeria-backend/middleware"
)

// SetupRoutes configura todas las rutas de la API
func SetupRoutes(app *fiber.App) {
	// Middleware global
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.BodySizeLimit(1024 * 1024))
	app.Use(middleware.DefaultRateLimiter())
	app.Use(middleware.BitacoraMiddleware())

	// Ruta de salud del sistema
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Sistema de Notas de Enfermería API",
			"version": "1.0.0",
		})
	})

	api := app.Group("/api")

	// === RUTAS PÚBLICAS (Sin autenticación) ===
	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), handlers.Login)
	auth.Post("/logout", handlers.Logout)

	// === RUTAS PROTEGIDAS (Requieren autenticación) ===
	protected := api.Group("/", middleware.JWTMiddleware())

	protected.Get("/auth/perfil", handlers.ObtenerPerfil)

	// --- RUTAS DE PACIENTES ---
	pacientes := protected.Group("/pacientes")
	pacientes.Get("/", handlers.ObtenerPacientes)
	pacientes.Post("/", handlers.CrearPaciente)
	pacientes.Get("/:id", handlers.ObtenerPacientePorID)
	pacientes.Post("/:paciente_id/medicamentos", handlers.AsignarMedicamento)

	// --- RUTAS DE NOTAS DE ENFERMERÍA ---
	notas := protected.Group("/notas")
	notas.Get("/", handlers.ObtenerNotas)
	notas.Post("/", handlers.CrearNota)

	// --- RUTAS DE MEDICAMENTOS ---
	medicamentos := protected.Group("/medicamentos")
	medicamentos.Get("/", handlers.ObtenerMedicamentos)
	medicamentos.Post("/", handlers.CrearMedicamento)

	// --- RUTAS DE ADMINISTRACIÓN ---
	admin := protected.Group("/admin", middleware.AdminMiddleware())
	admin.Get("/enfermeros", handlers.ObtenerEnfermeros)
	admin.Post("/enfermeros", handlers.CrearEnfermero)
	admin.Put("/enfermeros/:id", handlers.ActualizarEnfermero)
	admin.Delete("/enfermeros/:id", handlers.DesactivarEnfermero)
	admin.Get("/bitacora", handlers.ObtenerBitacora)
}
