// Package inventory contiene el motor de inventario: registro de movimientos
// por escaneo QR y derivación de stock desde el libro de movimientos.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wcondori/api-saltenas/internal/application/dto"
	"github.com/wcondori/api-saltenas/internal/domain"
	"github.com/wcondori/api-saltenas/internal/domain/entity"
	"github.com/wcondori/api-saltenas/internal/domain/repository"
)

// RecordMovementUseCase registra un movimiento de inventario a partir de un
// escaneo o de una acción manual: resuelve el nombre contra el catálogo,
// aplica la conversión bandeja/bolsa del producto y anota el asiento en el
// libro. Nunca modifica el producto.
type RecordMovementUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *RecordMovementUseCase {
	return &RecordMovementUseCase{productRepo: productRepo, movRepo: movRepo}
}

// Record registra scans piezas escaneadas del producto nombre.
//
// La multiplicación a unidades ocurre aquí, en el servidor, con los factores
// del catálogo:
//
//	PRODUCCION: delta = scans * UnitsPerTray
//	VENTA:      delta = -(scans * UnitsPerBag)
//
// Errores: ErrInvalidInput (tipo desconocido), ErrInvalidQuantity (scans <= 0),
// ErrNotFound (nombre sin coincidencia exacta case-insensitive; no hay fuzzy
// matching ni creación implícita). En cualquier rechazo el libro queda intacto.
//
// No hay deduplicación: dos escaneos del mismo código producen dos asientos.
func (uc *RecordMovementUseCase) Record(ctx context.Context, nombre, tipo string, scans int) (*entity.Movement, error) {
	if !entity.ValidMovementType(tipo) {
		return nil, domain.ErrInvalidInput
	}
	if scans <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := uc.productRepo.GetByName(nombre)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var delta int
	if tipo == entity.MovementTypePRODUCCION {
		delta = scans * product.UnitsPerTray
	} else {
		delta = -(scans * product.UnitsPerBag)
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Quantity:  delta,
		Type:      tipo,
		Date:      now,
		CreatedAt: now,
	}
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// RecordFromRequest adapta el cuerpo HTTP del escáner al caso de uso Record.
// El campo cantidad del wire llega con el signo (y a veces la multiplicación)
// que le puso el cliente; aquí manda el servidor: se toma |cantidad| como
// número de piezas escaneadas y la dirección sale de tipo.
func (uc *RecordMovementUseCase) RecordFromRequest(ctx context.Context, in dto.RegistrarMovimientoRequest) (*entity.Movement, error) {
	scans := in.Cantidad
	if scans < 0 {
		scans = -scans
	}
	return uc.Record(ctx, in.ProductoNombre, in.Tipo, scans)
}
