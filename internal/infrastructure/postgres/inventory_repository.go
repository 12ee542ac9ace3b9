package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
// Tabla: inventory(id, categoria, suministros JSONB, salida BOOLEAN, created_at, updated_at).
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository construye el adaptador de persistencia de inventario.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

// Create asigna el ID como conteo actual + 1 (en string) y persiste.
// Tras un delete el ID calculado puede repetir uno existente; los lookups
// devuelven la fila más antigua con ese ID.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	ctx := context.Background()

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inventory`).Scan(&count); err != nil {
		return fmt.Errorf("count inventory: %w", err)
	}
	item.ID = strconv.Itoa(count + 1)

	sum, err := json.Marshal(item.Suministros)
	if err != nil {
		return fmt.Errorf("encode suministros: %w", err)
	}
	query := `
		INSERT INTO inventory (id, categoria, suministros, salida, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, $4, $5, $6)`
	_, err = r.pool.Exec(ctx, query,
		item.ID, item.Categoria, string(sum), item.Salida, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetAll devuelve todos los registros en orden de inserción.
func (r *InventoryRepo) GetAll() ([]*entity.InventoryItem, error) {
	query := `
		SELECT id, categoria, suministros::text, salida, created_at, updated_at
		FROM inventory ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// GetByID devuelve la fila más antigua con ese ID, o (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, categoria, suministros::text, salida, created_at, updated_at
		FROM inventory WHERE id = $1 ORDER BY created_at ASC LIMIT 1`
	it, err := scanItem(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return it, nil
}

// Update reemplaza categoria, suministros y salida de la fila con ese ID.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	sum, err := json.Marshal(item.Suministros)
	if err != nil {
		return fmt.Errorf("encode suministros: %w", err)
	}
	query := `
		UPDATE inventory SET categoria = $2, suministros = $3::jsonb, salida = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Categoria, string(sum), item.Salida, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la fila con ese ID.
func (r *InventoryRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindBySalida devuelve el primer registro con ese flag en orden de inserción, o (nil, nil).
func (r *InventoryRepo) FindBySalida(salida bool) (*entity.InventoryItem, error) {
	query := `
		SELECT id, categoria, suministros::text, salida, created_at, updated_at
		FROM inventory WHERE salida = $1 ORDER BY created_at ASC LIMIT 1`
	it, err := scanItem(r.pool.QueryRow(context.Background(), query, salida))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find inventory by salida: %w", err)
	}
	return it, nil
}

// scanItem escanea una fila de inventory decodificando suministros desde JSON.
func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	var sum string
	if err := row.Scan(&it.ID, &it.Categoria, &sum, &it.Salida, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(sum), &it.Suministros); err != nil {
		return nil, fmt.Errorf("decode suministros: %w", err)
	}
	return &it, nil
}
