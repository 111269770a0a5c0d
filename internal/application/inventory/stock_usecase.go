package inventory

import (
	"github.com/wcondori/api-saltenas/internal/application/dto"
	"github.com/wcondori/api-saltenas/internal/domain"
	"github.com/wcondori/api-saltenas/internal/domain/entity"
	"github.com/wcondori/api-saltenas/internal/domain/repository"
)

// StockUseCase deriva el stock actual desde el libro de movimientos. No se
// mantiene ningún total materializado: cada lectura recalcula desde el libro,
// que es la única fuente de verdad.
type StockUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *StockUseCase {
	return &StockUseCase{productRepo: productRepo, movRepo: movRepo}
}

// CurrentStock devuelve SUM(quantity) del historial del producto; 0 si no
// tiene movimientos. ErrNotFound si el producto no existe (un producto
// borrado deja de tener stock consultable).
func (uc *StockUseCase) CurrentStock(productID string) (int, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	return uc.movRepo.SumByProduct(productID)
}

// IsLow indica stock bajo: en o por debajo del mínimo configurado. El borde
// es inclusivo (stock == mínimo ya alerta).
func IsLow(stock int, product *entity.Product) bool {
	return stock <= product.MinStock
}

// Inventario arma las filas de GET /inventario: catálogo completo con stock
// derivado y bandera de alerta, en orden de creación. Una sola pasada de
// agregación (SumAll) en vez de una consulta por producto.
func (uc *StockUseCase) Inventario() ([]dto.InventarioItem, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	sums, err := uc.movRepo.SumAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventarioItem, 0, len(products))
	for _, p := range products {
		stock := sums[p.ID]
		items = append(items, dto.InventarioItem{
			ID:                 p.ID,
			Nombre:             p.Name,
			StockActual:        stock,
			StockMinimo:        p.MinStock,
			UnidadesPorBandeja: p.UnitsPerTray,
			UnidadesPorBolsa:   p.UnitsPerBag,
			Alerta:             IsLow(stock, p),
		})
	}
	return items, nil
}
