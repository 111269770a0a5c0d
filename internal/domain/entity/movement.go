package entity

import "time"

// Tipos de movimiento. El tipo clasifica para reportes; el signo de Quantity
// manda para el cálculo de stock.
const (
	MovementTypePRODUCCION = "PRODUCCION" // entra bandeja
	MovementTypeVENTA      = "VENTA"      // sale bolsa
)

// Movement es un asiento del libro de movimientos: un delta de unidades con
// signo (positivo = producción, negativo = venta). El libro es append-only;
// ningún movimiento se edita ni se borra, salvo la cascada al borrar el producto.
type Movement struct {
	ID        string
	ProductID string
	Quantity  int       // delta en unidades, con signo
	Type      string    // PRODUCCION | VENTA
	Date      time.Time // momento del registro; base del bucketing de reportes
	CreatedAt time.Time
}

// ValidMovementType indica si el tipo recibido por el API es uno de los soportados.
func ValidMovementType(t string) bool {
	return t == MovementTypePRODUCCION || t == MovementTypeVENTA
}
