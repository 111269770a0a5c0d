package dto

import "time"

// CreateProductoRequest entrada para crear un producto. Las conversiones en
// cero toman los valores por defecto del catálogo (30 por bandeja, 10 por bolsa).
type CreateProductoRequest struct {
	Nombre             string `json:"nombre" validate:"required,min=1,max=100"`
	StockMinimo        int    `json:"stock_minimo" validate:"min=0"`
	UnidadesPorBandeja int    `json:"unidades_por_bandeja" validate:"min=0"`
	UnidadesPorBolsa   int    `json:"unidades_por_bolsa" validate:"min=0"`
}

// UpdateProductoRequest entrada para actualizar la configuración de un producto.
// Campos nil conservan el valor guardado; nunca se resetea a los defaults
// (el Dashboard manda solo el campo que editó). El nombre no se modifica.
type UpdateProductoRequest struct {
	StockMinimo        *int `json:"stock_minimo"`
	UnidadesPorBandeja *int `json:"unidades_por_bandeja"`
	UnidadesPorBolsa   *int `json:"unidades_por_bolsa"`
}

// ProductoResponse salida de un producto (sin stock; ver InventarioItem).
type ProductoResponse struct {
	ID                 string    `json:"id"`
	Nombre             string    `json:"nombre"`
	StockMinimo        int       `json:"stock_minimo"`
	UnidadesPorBandeja int       `json:"unidades_por_bandeja"`
	UnidadesPorBolsa   int       `json:"unidades_por_bolsa"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
