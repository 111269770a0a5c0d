package dto

import "time"

// InventarioItem fila de GET /inventario: producto más su stock derivado del
// libro de movimientos. Alerta indica stock en o por debajo del mínimo.
type InventarioItem struct {
	ID                 string `json:"id"`
	Nombre             string `json:"nombre"`
	StockActual        int    `json:"stock_actual"`
	StockMinimo        int    `json:"stock_minimo"`
	UnidadesPorBandeja int    `json:"unidades_por_bandeja"`
	UnidadesPorBolsa   int    `json:"unidades_por_bolsa"`
	Alerta             bool   `json:"alerta"`
}

// RegistrarMovimientoRequest cuerpo de POST /registrar-movimiento, formato del
// escáner QR. Cantidad es el número de piezas físicas escaneadas (bandejas o
// bolsas) con el signo que le puso el cliente; el servidor toma su valor
// absoluto y deriva dirección y unidades desde Tipo y el catálogo.
type RegistrarMovimientoRequest struct {
	ProductoNombre string `json:"producto_nombre" validate:"required"`
	Cantidad       int    `json:"cantidad"`
	Tipo           string `json:"tipo" validate:"required"` // PRODUCCION | VENTA
}

// MovimientoResponse salida de un movimiento registrado.
type MovimientoResponse struct {
	ID         string    `json:"id"`
	ProductoID string    `json:"producto_id"`
	Cantidad   int       `json:"cantidad"` // delta en unidades, con signo
	Tipo       string    `json:"tipo"`
	Fecha      time.Time `json:"fecha"`
}
