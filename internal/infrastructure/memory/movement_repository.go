package memory

import (
	"time"

	"github.com/wcondori/api-saltenas/internal/domain/entity"
	"github.com/wcondori/api-saltenas/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del libro de movimientos.
type MovementRepo struct {
	s *Store
}

// NewMovementRepository construye el adaptador sobre el Store compartido.
func NewMovementRepository(s *Store) *MovementRepo {
	return &MovementRepo{s: s}
}

// Create anota un asiento al final del libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.createMovement(movement)
	return nil
}

// ListAll devuelve los movimientos del rango, en fecha ascendente.
func (r *MovementRepo) ListAll(from, to *time.Time) ([]*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listMovements(from, to), nil
}

// SumByProduct recalcula el stock del producto desde el libro completo.
func (r *MovementRepo) SumByProduct(productID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.sumByProduct(productID), nil
}

// SumAll recalcula el stock de todos los productos en una pasada.
func (r *MovementRepo) SumAll() (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.sumAll(), nil
}

// DeleteByProduct borra el historial de un producto (solo cascada).
func (r *MovementRepo) DeleteByProduct(productID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deleteMovementsByProduct(productID)
	return nil
}
