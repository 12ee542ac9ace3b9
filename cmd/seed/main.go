// seed crea las tablas users e inventory si no existen y carga los datos de
// demostración (dos categorías de suministros y un usuario demo).
//
// Uso: go run ./cmd/seed
// Configuración vía env: DATABASE_URL o DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME,
// SEED_USERNAME y SEED_PASSWORD para el usuario demo (por defecto demo / demo123).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/inventario-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS inventory (
	id          TEXT NOT NULL,
	categoria   TEXT,
	suministros JSONB,
	salida      BOOLEAN,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "crear tablas: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()

	// Usuario demo (idempotente: se omite si el username ya existe)
	username := envOr("SEED_USERNAME", "demo")
	password := envOr("SEED_PASSWORD", "demo123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}
	tag, err := pool.Exec(ctx, `
		INSERT INTO users (id, name, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO NOTHING`,
		uuid.New().String(), username, username, string(hash), now, now,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar usuario demo: %v\n", err)
		os.Exit(1)
	}
	if tag.RowsAffected() > 0 {
		fmt.Printf("usuario demo creado: %s\n", username)
	}

	// Registros de inventario demo; solo si la tabla está vacía para no
	// desplazar la regla de asignación de IDs (conteo + 1).
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM inventory`).Scan(&count); err != nil {
		fmt.Fprintf(os.Stderr, "contar inventario: %v\n", err)
		os.Exit(1)
	}
	if count > 0 {
		fmt.Println("inventario ya tiene registros, nada que sembrar")
		return
	}

	items := []struct {
		id          string
		categoria   string
		suministros string
		salida      bool
	}{
		{
			id:        "1",
			categoria: "Papelería",
			suministros: `["Hojas de papel (A4, A3)","Carpetas","Sobres","Post-it",
				"Notas adhesivas","Clips","Grapas","Cartulinas"]`,
			salida: true,
		},
		{
			id:        "2",
			categoria: "Material de Oficina",
			suministros: `["Bolígrafo","Lápices","Marcadores","Corrector líquido",
				"Resaltadores","Pegamento","Tijeras","Cinta adhesiva","Punzón"]`,
			salida: false,
		},
	}
	for i, it := range items {
		// created_at escalonado para preservar el orden de inserción en los listados
		createdAt := now.Add(time.Duration(i) * time.Millisecond)
		if _, err := pool.Exec(ctx, `
			INSERT INTO inventory (id, categoria, suministros, salida, created_at, updated_at)
			VALUES ($1, $2, $3::jsonb, $4, $5, $5)`,
			it.id, it.categoria, it.suministros, it.salida, createdAt,
		); err != nil {
			fmt.Fprintf(os.Stderr, "insertar inventario %s: %v\n", it.id, err)
			os.Exit(1)
		}
	}
	fmt.Printf("inventario sembrado: %d registros\n", len(items))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
