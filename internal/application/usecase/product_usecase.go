package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wcondori/api-saltenas/internal/application/dto"
	"github.com/wcondori/api-saltenas/internal/domain"
	"github.com/wcondori/api-saltenas/internal/domain/entity"
	"github.com/wcondori/api-saltenas/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo de productos. El stock no se
// toca aquí: se deriva del libro de movimientos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto nuevo. Rechaza nombres que ya existen sin importar
// mayúsculas/minúsculas; aplica los defaults de conversión al momento de crear,
// no en cada lectura.
func (uc *ProductUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.StockMinimo < 0 || in.UnidadesPorBandeja < 0 || in.UnidadesPorBolsa < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.UnidadesPorBandeja == 0 {
		in.UnidadesPorBandeja = entity.DefaultUnitsPerTray
	}
	if in.UnidadesPorBolsa == 0 {
		in.UnidadesPorBolsa = entity.DefaultUnitsPerBag
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Nombre,
		MinStock:     in.StockMinimo,
		UnitsPerTray: in.UnidadesPorBandeja,
		UnitsPerBag:  in.UnidadesPorBolsa,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductoResponse(product), nil
}

// Update reemplaza la configuración de un producto. Campos nil del request
// conservan el valor guardado (el Dashboard manda solo lo que editó); el
// nombre nunca cambia.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.StockMinimo
	}
	if in.UnidadesPorBandeja != nil {
		if *in.UnidadesPorBandeja <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product.UnitsPerTray = *in.UnidadesPorBandeja
	}
	if in.UnidadesPorBolsa != nil {
		if *in.UnidadesPorBolsa <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product.UnitsPerBag = *in.UnidadesPorBolsa
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductoResponse(product), nil
}

// List lista el catálogo completo en orden de creación.
func (uc *ProductUseCase) List() ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Delete borra un producto y todo su historial de movimientos en una sola
// transacción: o desaparecen ambos o no desaparece nada.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := movRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

func toProductoResponse(p *entity.Product) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:                 p.ID,
		Nombre:             p.Name,
		StockMinimo:        p.MinStock,
		UnidadesPorBandeja: p.UnitsPerTray,
		UnidadesPorBolsa:   p.UnitsPerBag,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
