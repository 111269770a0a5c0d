package analytics

import (
	"context"

	"github.com/wcondori/api-saltenas/internal/application/dto"
)

// InventarioLister provee las filas de inventario ya derivadas (lo implementa
// inventory.StockUseCase).
type InventarioLister interface {
	Inventario() ([]dto.InventarioItem, error)
}

// InventoryPDFUseCase arma el PDF del estado de inventario: las mismas filas
// que GET /inventario, en papel para el gerente.
type InventoryPDFUseCase struct {
	stock     InventarioLister
	generator InventoryPDFGenerator
}

// NewInventoryPDFUseCase construye el caso de uso.
func NewInventoryPDFUseCase(stock InventarioLister, generator InventoryPDFGenerator) *InventoryPDFUseCase {
	return &InventoryPDFUseCase{stock: stock, generator: generator}
}

// Generate devuelve los bytes del PDF.
func (uc *InventoryPDFUseCase) Generate(ctx context.Context) ([]byte, error) {
	items, err := uc.stock.Inventario()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInventoryPDF(ctx, items)
}
