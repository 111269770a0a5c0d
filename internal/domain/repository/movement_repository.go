package repository

import (
	"time"

	"github.com/wcondori/api-saltenas/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el libro de movimientos.
// El libro es append-only: no hay Update; DeleteByProduct existe solo para la
// cascada al borrar un producto y debe ejecutarse dentro de la misma transacción.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListAll devuelve los movimientos del rango [from, to] (nil = sin límite),
	// ordenados por fecha ascendente.
	ListAll(from, to *time.Time) ([]*entity.Movement, error)
	// SumByProduct deriva el stock actual: SUM(quantity) sobre todo el historial
	// del producto. 0 si no tiene movimientos.
	SumByProduct(productID string) (int, error)
	// SumAll deriva el stock de todos los productos en una sola pasada:
	// product_id -> SUM(quantity). Productos sin movimientos no aparecen.
	SumAll() (map[string]int, error)
	DeleteByProduct(productID string) error
}
