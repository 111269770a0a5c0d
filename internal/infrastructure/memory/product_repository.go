package memory

import (
	"github.com/wcondori/api-saltenas/internal/domain"
	"github.com/wcondori/api-saltenas/internal/domain/entity"
	"github.com/wcondori/api-saltenas/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el adaptador sobre el Store compartido.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create persiste un producto. ErrDuplicate si ya existe el nombre normalizado
// (mismo contrato que el índice único lower(nombre) en postgres).
func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.byName[entity.FoldName(product.Name)]; ok {
		return domain.ErrDuplicate
	}
	r.s.createProduct(product)
	return nil
}

// GetByID devuelve el producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.getProductByID(id), nil
}

// GetByName busca por nombre normalizado (case-insensitive, match exacto).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.getProductByName(name), nil
}

// Update reemplaza el producto guardado. ErrNotFound si no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.updateProduct(product) {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el catálogo en orden de creación.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listProducts(), nil
}

// Delete borra el producto (sin cascada; la cascada vive en el TxRunner).
func (r *ProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.deleteProduct(id) {
		return domain.ErrNotFound
	}
	return nil
}
