package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wcondori/api-saltenas/internal/domain"
	"github.com/wcondori/api-saltenas/internal/domain/entity"
	"github.com/wcondori/api-saltenas/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El índice único sobre lower(nombre)
// respalda la unicidad case-insensitive aunque dos creaciones lleguen a la vez.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (id, nombre, stock_minimo, unidades_por_bandeja, unidades_por_bolsa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.MinStock,
		product.UnitsPerTray, product.UnitsPerBag,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, nombre, stock_minimo, unidades_por_bandeja, unidades_por_bolsa, created_at, updated_at
		FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByName obtiene un producto por nombre, case-insensitive (match exacto).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `
		SELECT id, nombre, stock_minimo, unidades_por_bandeja, unidades_por_bolsa, created_at, updated_at
		FROM productos WHERE lower(nombre) = lower($1)`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.MinStock, &p.UnitsPerTray, &p.UnitsPerBag, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update reemplaza la configuración del producto. No toca el nombre.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos SET stock_minimo = $2, unidades_por_bandeja = $3, unidades_por_bolsa = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.MinStock, product.UnitsPerTray, product.UnitsPerBag, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el catálogo en orden de creación (estable para la tabla del UI).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, nombre, stock_minimo, unidades_por_bandeja, unidades_por_bolsa, created_at, updated_at
		FROM productos ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.MinStock, &p.UnitsPerTray, &p.UnitsPerBag, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. La cascada sobre movimientos corre en la
// misma transacción (ver TxRunner); el FK ON DELETE CASCADE es la red de
// seguridad a nivel de esquema.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
