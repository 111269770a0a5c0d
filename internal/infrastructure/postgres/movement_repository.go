package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wcondori/api-saltenas/internal/domain/entity"
	"github.com/wcondori/api-saltenas/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: el libro es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create anota un asiento en el libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos (id, producto_id, cantidad, tipo, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Quantity,
		movement.Type, movement.Date, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListAll lista los movimientos del rango [from, to], fecha ascendente.
func (r *MovementRepo) ListAll(from, to *time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT id, producto_id, cantidad, tipo, fecha, created_at
		FROM movimientos WHERE 1=1`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND fecha >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND fecha <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " ORDER BY fecha ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.Type, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SumByProduct deriva el stock actual del producto: SUM sobre el historial
// completo, calculado por la base en cada lectura. 0 sin movimientos.
func (r *MovementRepo) SumByProduct(productID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cantidad), 0) FROM movimientos WHERE producto_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("sum movimientos: %w", err)
	}
	return total, nil
}

// SumAll deriva el stock de todos los productos en una sola consulta.
func (r *MovementRepo) SumAll() (map[string]int, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT producto_id, COALESCE(SUM(cantidad), 0) FROM movimientos GROUP BY producto_id`)
	if err != nil {
		return nil, fmt.Errorf("sum movimientos: %w", err)
	}
	defer rows.Close()
	sums := make(map[string]int)
	for rows.Next() {
		var productID string
		var total int
		if err := rows.Scan(&productID, &total); err != nil {
			return nil, fmt.Errorf("scan suma: %w", err)
		}
		sums[productID] = total
	}
	return sums, rows.Err()
}

// DeleteByProduct borra el historial del producto. Solo se llama desde la
// transacción de borrado de producto; no existe otro camino de borrado.
func (r *MovementRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM movimientos WHERE producto_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete movimientos: %w", err)
	}
	return nil
}
