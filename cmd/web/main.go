package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"github.com/santarosa/enfermeria-backend/database"
	"github.com/santarosa/enfermeria-backend/web"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Println("Advertencia: No se pudo cargar el archivo .env")
	}
	// Conectar a la base de datos
	database.ConnectDB()
	defer database.CloseDB()
	log.Println("Conexión a la base de datos establecida")

	// Crear esquema y sembrar el enfermero de prueba
	if err := database.InitSchema(context.Background()); err != nil {
		log.Fatalf("Error al inicializar el esquema: %v", err)
	}

	// Motor de plantillas para las páginas
	engine := html.New("./web/views", ".html")

	app := fiber.New(fiber.Config{
		Views:   engine,
		AppName: "Sistema de Notas de Enfermería v1.0.0",
	})

	// Configurar rutas de páginas
	web.SetupRoutes(app)

	// Obtener puerto del entorno o usar 5000 por defecto
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("Servidor de páginas de enfermería iniciado en puerto %s", port)
	log.Fatal(app.Listen(":" + port))
}
