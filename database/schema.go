package database

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Sentencias DDL para el esquema de cuidado de pacientes. Todas son
// idempotentes para poder ejecutarse en cada arranque.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS enfermeros (
		id SERIAL PRIMARY KEY,
		codigo VARCHAR(10) UNIQUE NOT NULL,
		clave VARCHAR(255) NOT NULL,
		nombre VARCHAR(100) NOT NULL,
		apellidos VARCHAR(100) NOT NULL,
		turno VARCHAR(20) NOT NULL,
		activo BOOLEAN DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS pacientes (
		id SERIAL PRIMARY KEY,
		numero_expediente VARCHAR(20) UNIQUE NOT NULL,
		nombre VARCHAR(100) NOT NULL,
		apellidos VARCHAR(100) NOT NULL,
		fecha_nacimiento DATE NOT NULL,
		documento_identidad VARCHAR(50) NOT NULL,
		nacionalidad VARCHAR(50) NOT NULL,
		contacto_emergencia_nombre VARCHAR(100),
		contacto_emergencia_telefono VARCHAR(20),
		telefono_principal VARCHAR(20),
		telefono_secundario VARCHAR(20),
		tipo_sangre VARCHAR(5) NOT NULL,
		peso DECIMAL(5,2),
		estatura DECIMAL(3,2),
		padecimientos TEXT,
		informacion_general TEXT,
		tipo_paciente VARCHAR(20) NOT NULL,
		cuarto_asignado VARCHAR(10),
		fecha_registro TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		activo BOOLEAN DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS notas_enfermeria (
		id SERIAL PRIMARY KEY,
		fecha DATE NOT NULL,
		hora TIME NOT NULL,
		paciente_id INTEGER REFERENCES pacientes(id),
		enfermero_id INTEGER REFERENCES enfermeros(id),
		observaciones TEXT NOT NULL,
		medicamentos_administrados TEXT,
		tratamientos TEXT,
		fecha_registro TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS medicamentos (
		id SERIAL PRIMARY KEY,
		nombre VARCHAR(100) NOT NULL,
		descripcion TEXT,
		unidad_medida VARCHAR(20),
		activo BOOLEAN DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS medicamentos_paciente (
		id SERIAL PRIMARY KEY,
		paciente_id INTEGER REFERENCES pacientes(id),
		medicamento_id INTEGER REFERENCES medicamentos(id),
		dosis VARCHAR(50) NOT NULL,
		frecuencia VARCHAR(100) NOT NULL,
		horarios VARCHAR(200),
		indicaciones TEXT,
		fecha_inicio DATE NOT NULL,
		fecha_fin DATE,
		activo BOOLEAN DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS bitacora (
		id SERIAL PRIMARY KEY,
		method VARCHAR(10) NOT NULL,
		path VARCHAR(500) NOT NULL,
		status_code INTEGER NOT NULL,
		response_time INTEGER,
		ip VARCHAR(45) NOT NULL,
		user_agent TEXT,
		codigo_enfermero VARCHAR(10),
		body TEXT,
		log_level VARCHAR(10),
		timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// InitSchema crea las tablas del sistema y siembra el enfermero de prueba
// si la tabla de enfermeros está vacía.
func InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	if err := seedEnfermeroDemo(ctx); err != nil {
		return err
	}

	log.Println("Esquema de base de datos inicializado")
	return nil
}

// seedEnfermeroDemo inserta los usuarios iniciales una sola vez: el enfermero
// de prueba y el administrador. Las claves se guardan como hash bcrypt, nunca
// en texto plano.
func seedEnfermeroDemo(ctx context.Context) error {
	var total int
	if err := DB.QueryRow(ctx, "SELECT COUNT(*) FROM enfermeros").Scan(&total); err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	adminClave := os.Getenv("ADMIN_CLAVE")
	if adminClave == "" {
		adminClave = "admin123"
	}

	seeds := []struct {
		codigo    string
		clave     string
		nombre    string
		apellidos string
		turno     string
	}{
		{"ENF001", "123456", "Enfermero", "De Prueba", "mañana"},
		{"admin", adminClave, "Admin", "Sistema", "todos"},
	}

	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.clave), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		_, err = DB.Exec(ctx,
			`INSERT INTO enfermeros (codigo, clave, nombre, apellidos, turno)
			 VALUES ($1, $2, $3, $4, $5)`,
			seed.codigo, string(hash), seed.nombre, seed.apellidos, seed.turno)
		if err != nil {
			return err
		}

		log.Printf("Enfermero inicial creado: %s", seed.codigo)
	}

	return nil
}
