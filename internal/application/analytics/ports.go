package analytics

import (
	"context"

	"github.com/wcondori/api-saltenas/internal/application/dto"
)

// InventoryPDFGenerator genera el reporte imprimible del estado de inventario.
// Implementado en infrastructure/pdf con Maroto.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, items []dto.InventarioItem) ([]byte, error)
}
