package repository

import "github.com/wcondori/api-saltenas/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las búsquedas por nombre son case-insensitive (entity.FoldName).
// Convención: GetByID/GetByName devuelven (nil, nil) si no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List devuelve todos los productos en orden de creación (estable entre llamadas).
	List() ([]*entity.Product, error)
	Delete(id string) error
}
