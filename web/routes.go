package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/santarosa/enfermeria-backend/middleware"
)

// SetupRoutes configura las rutas de la variante de páginas
func SetupRoutes(app *fiber.App) {
	InitSessions()

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())

	// Login y logout quedan fuera de la puerta de sesión
	app.Get("/login", LoginPage)
	app.Post("/login", middleware.AuthRateLimiter(), LoginSubmit)
	app.Get("/logout", Logout)

	// Todo lo demás requiere enfermero en sesión
	app.Use(RequireSesion)

	app.Get("/", Index)

	app.Get("/pacientes", Pacientes)
	app.Get("/paciente/nuevo", NuevoPacientePage)
	app.Post("/paciente/nuevo", NuevoPacienteSubmit)
	app.Get("/paciente/:id<int>", VerPaciente)

	app.Get("/notas", Notas)
	app.Get("/nota/nueva", NuevaNotaPage)
	app.Post("/nota/nueva", NuevaNotaSubmit)

	app.Get("/medicamentos", Medicamentos)
	app.Get("/medicamento/nuevo", NuevoMedicamentoPage)
	app.Post("/medicamento/nuevo", NuevoMedicamentoSubmit)

	app.Get("/paciente/:paciente_id<int>/medicamento/nuevo", AsignarMedicamentoPage)
	app.Post("/paciente/:paciente_id<int>/medicamento/nuevo", AsignarMedicamentoSubmit)
}
