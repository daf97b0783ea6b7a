package database

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB es la instancia global del pool de conexiones
var DB *pgxpool.Pool

// NormalizeDatabaseURL reescribe el prefijo heredado postgres:// al esquema
// moderno postgresql://. Si la URL está vacía se usa la base local por defecto.
func NormalizeDatabaseURL(url string) string {
	if url == "" {
		return "postgresql://localhost/hospital_db"
	}
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

// ConnectDB establece la conexión con la base de datos usando un pool
func ConnectDB() {
	databaseURL := NormalizeDatabaseURL(os.Getenv("DATABASE_URL"))

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		log.Fatalf("❌ Error al parsear la URL de la base de datos: %v", err)
	}
	config.MaxConns = 30
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = time.Minute * 30
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	DB, err = pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatalf("❌ Error al crear el pool de conexiones: %v", err)
	}

	// Probar si la base de datos está viva haciendo una consulta rápida
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var version string
	err = DB.QueryRow(ctx, "SELECT version()").Scan(&version)
	if err != nil {
		log.Fatalf("❌ Error al probar la conexión: %v", err)
	}

	log.Println("✅ Conectado exitosamente a la base de datos:", version)
}

// CloseDB cierra el pool de conexiones
func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("Pool de conexiones cerrado")
	}
}

// GetDB retorna la instancia del pool de conexiones
func GetDB() *pgxpool.Pool {
	return DB
}
